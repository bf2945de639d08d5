package observability

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStats_RecordRequest(t *testing.T) {
	req := require.New(t)
	stats := NewStats()

	stats.RecordRequest(200)
	stats.RecordRequest(404)
	stats.RecordRequest(502)

	snap := stats.Latest()
	req.Equal(uint64(3), snap.Requests)
	req.Equal(uint64(1), snap.ClientErrors)
	req.Equal(uint64(1), snap.ServerErrors)
}

func TestStats_RecordRemoteFetch(t *testing.T) {
	req := require.New(t)
	stats := NewStats()

	stats.RecordRemoteFetch(false)
	stats.RecordRemoteFetch(true)

	snap := stats.Latest()
	req.Equal(uint64(2), snap.RemoteFetches)
	req.Equal(uint64(1), snap.RemoteFailed)
}

func TestStats_Concurrent(t *testing.T) {
	stats := NewStats()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			stats.RecordRequest(200)
			stats.RecordRemoteFetch(false)
		}()
	}
	wg.Wait()

	snap := stats.Latest()
	require.Equal(t, uint64(100), snap.Requests)
	require.Equal(t, uint64(100), snap.RemoteFetches)
}
