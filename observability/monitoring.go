// Package observability aggregates runtime counters for the server:
// request volume, federation outcomes, and Go memory figures.
package observability

import (
	"runtime"
	"sync/atomic"
	"time"
)

// Snapshot is the point-in-time view served on /stats.
type Snapshot struct {
	Requests      uint64 `json:"requests"`
	ClientErrors  uint64 `json:"client_errors"`
	ServerErrors  uint64 `json:"server_errors"`
	RemoteFetches uint64 `json:"remote_fetches"`
	RemoteFailed  uint64 `json:"remote_failed"`
	AllocMemMb    uint64 `json:"alloc_mem_mb"`
	NumGC         uint32 `json:"num_gc"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

// Stats is safe for concurrent use from every request goroutine; all
// counters are atomics, snapshots copy.
type Stats struct {
	requests      atomic.Uint64
	clientErrors  atomic.Uint64
	serverErrors  atomic.Uint64
	remoteFetches atomic.Uint64
	remoteFailed  atomic.Uint64
	started       time.Time
}

func NewStats() *Stats {
	return &Stats{started: time.Now()}
}

func (s *Stats) RecordRequest(status int) {
	s.requests.Add(1)
	switch {
	case status >= 500:
		s.serverErrors.Add(1)
	case status >= 400:
		s.clientErrors.Add(1)
	}
}

func (s *Stats) RecordRemoteFetch(failed bool) {
	s.remoteFetches.Add(1)
	if failed {
		s.remoteFailed.Add(1)
	}
}

func (s *Stats) Latest() Snapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return Snapshot{
		Requests:      s.requests.Load(),
		ClientErrors:  s.clientErrors.Load(),
		ServerErrors:  s.serverErrors.Load(),
		RemoteFetches: s.remoteFetches.Load(),
		RemoteFailed:  s.remoteFailed.Load(),
		AllocMemMb:    m.Alloc / 1024 / 1024,
		NumGC:         m.NumGC,
		UptimeSeconds: int64(time.Since(s.started).Seconds()),
	}
}
