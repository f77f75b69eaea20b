package httpx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLimiterSetRefillsAndForgets(t *testing.T) {
	set := newLimiterSet(RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1})
	now := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	set.lastSweep = now

	require.Zero(t, set.reserve("a", now))
	wait := set.reserve("a", now)
	require.Greater(t, wait, 50*time.Second)
	require.LessOrEqual(t, wait, time.Minute)

	// A refused request does not consume the next token
	require.Zero(t, set.reserve("a", now.Add(time.Minute)))

	require.Zero(t, set.reserve("b", now.Add(time.Minute)))
	require.Len(t, set.buckets, 2)

	later := now.Add(time.Minute + set.ttl)
	require.Zero(t, set.reserve("c", later))
	require.Len(t, set.buckets, 1)
	require.Contains(t, set.buckets, "c")
}
