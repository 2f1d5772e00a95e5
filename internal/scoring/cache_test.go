package scoring

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-scorer/internal/types"
)

func TestFingerprint(t *testing.T) {
	a := fingerprint("candidate text", "requirement text")
	assert.Equal(t, a, fingerprint("candidate text", "requirement text"))
	assert.NotEqual(t, a, fingerprint("candidate text!", "requirement text"))
	assert.NotEqual(t, a, fingerprint("requirement text", "candidate text"),
		"swapping documents must change the key")

	// Documents sharing a 64-byte prefix but differing in length must not
	// collide.
	long := string(make([]byte, 200))
	longer := string(make([]byte, 201))
	assert.NotEqual(t, fingerprint(long, "req"), fingerprint(longer, "req"))
}

func TestResultCacheBounded(t *testing.T) {
	c := newResultCache(2)

	c.put(1, types.ScoreBreakdown{OverallScore: 1})
	c.put(2, types.ScoreBreakdown{OverallScore: 2})
	// At capacity: new keys are rejected, existing keys still update.
	c.put(3, types.ScoreBreakdown{OverallScore: 3})
	c.put(1, types.ScoreBreakdown{OverallScore: 10})

	_, ok := c.get(3)
	assert.False(t, ok, "cache must stop admitting past its bound")

	v, ok := c.get(1)
	assert.True(t, ok)
	assert.Equal(t, 10.0, v.OverallScore)
}

func TestResultCacheDefaultCapacity(t *testing.T) {
	c := newResultCache(0)
	for i := 0; i < defaultCacheCapacity; i++ {
		c.put(uint64(i), types.ScoreBreakdown{OverallScore: float64(i)})
	}
	for i := 0; i < defaultCacheCapacity; i++ {
		_, ok := c.get(uint64(i))
		assert.True(t, ok, fmt.Sprintf("entry %d should be cached", i))
	}
}
