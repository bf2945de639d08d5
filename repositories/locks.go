package repositories

import (
	"hash/fnv"
	"sync"
)

const lockShards = 64

// stripedLocks hands out a mutex per owner key. Striping bounds memory
// while keeping unrelated users off each other's critical sections;
// only id allocation and tombstoning take the lock, reads never do.
type stripedLocks struct {
	shards [lockShards]sync.Mutex
}

func newStripedLocks() *stripedLocks {
	return &stripedLocks{}
}

func (s *stripedLocks) For(owner string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(owner))
	return &s.shards[h.Sum32()%lockShards]
}
