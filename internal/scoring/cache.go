package scoring

import (
	"hash/fnv"
	"sync"

	"github.com/jonathan/resume-scorer/internal/types"
)

// defaultCacheCapacity bounds the memo cache. Past the bound the cache
// simply stops admitting new entries; correctness never depends on a hit.
const defaultCacheCapacity = 32

// fingerprintPrefix is how much of each document participates in the
// cache key alongside its length.
const fingerprintPrefix = 64

// resultCache memoizes score breakdowns keyed by a fingerprint of the
// input pair.
type resultCache struct {
	mu      sync.RWMutex
	entries map[uint64]types.ScoreBreakdown
	cap     int
}

func newResultCache(capacity int) *resultCache {
	if capacity <= 0 {
		capacity = defaultCacheCapacity
	}
	return &resultCache{
		entries: make(map[uint64]types.ScoreBreakdown, capacity),
		cap:     capacity,
	}
}

func (c *resultCache) get(key uint64) (types.ScoreBreakdown, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

func (c *resultCache) put(key uint64, v types.ScoreBreakdown) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) >= c.cap {
		if _, exists := c.entries[key]; !exists {
			return
		}
	}
	c.entries[key] = v
}

// fingerprint derives a cache key from each document's length and prefix.
func fingerprint(candidateText, requirementText string) uint64 {
	h := fnv.New64a()
	writeDoc := func(s string) {
		var lenBytes [8]byte
		n := len(s)
		for i := 0; i < 8; i++ {
			lenBytes[i] = byte(n >> (8 * i))
		}
		h.Write(lenBytes[:])
		if len(s) > fingerprintPrefix {
			s = s[:fingerprintPrefix]
		}
		h.Write([]byte(s))
		h.Write([]byte{0})
	}
	writeDoc(candidateText)
	writeDoc(requirementText)
	return h.Sum64()
}
