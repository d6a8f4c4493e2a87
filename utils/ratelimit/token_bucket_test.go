package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func newFakeBucket(rate float64, capacity int64) (*TokenBucket, *fakeClock) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	tb := NewTokenBucket(rate, capacity)
	tb.now = clock.Now
	tb.lastUpdate = clock.Now()
	return tb, clock
}

func TestAllow(t *testing.T) {
	t.Parallel()
	tb, clock := newFakeBucket(2, 3)

	for i := 0; i < 3; i++ {
		assert.True(t, tb.Allow(), "token %d", i)
	}
	assert.False(t, tb.Allow())

	clock.Advance(500 * time.Millisecond)
	assert.True(t, tb.Allow())
	assert.False(t, tb.Allow())

	clock.Advance(time.Hour)
	assert.InDelta(t, 3.0, tb.Tokens(), 1e-9, "refill stops at capacity")
	assert.False(t, tb.AllowN(4))
	assert.True(t, tb.AllowN(3))
}

func TestDisabled(t *testing.T) {
	t.Parallel()
	tb := NewTokenBucket(0, 0)
	for i := 0; i < 100; i++ {
		assert.True(t, tb.Allow())
	}
	require.NoError(t, tb.Wait(context.Background()))
}

func TestWait(t *testing.T) {
	t.Parallel()
	tb := NewTokenBucket(1000, 1)
	require.True(t, tb.Allow())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, tb.Wait(ctx))
}

func TestWaitCanceled(t *testing.T) {
	t.Parallel()
	tb := NewTokenBucket(0.001, 1)
	require.True(t, tb.Allow())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, tb.Wait(ctx), context.DeadlineExceeded)
}
