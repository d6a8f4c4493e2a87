// Package ratelimit guards the tool server against bursts of segmentation
// requests, each of which may enumerate many paths.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// TokenBucket refills rate tokens per second up to capacity.
type TokenBucket struct {
	mu         sync.Mutex
	rate       float64
	capacity   int64
	tokens     float64
	lastUpdate time.Time
	now        func() time.Time
}

// NewTokenBucket returns a full bucket. A rate <= 0 disables limiting.
func NewTokenBucket(rate float64, capacity int64) *TokenBucket {
	tb := &TokenBucket{
		rate:     rate,
		capacity: capacity,
		tokens:   float64(capacity),
		now:      time.Now,
	}
	tb.lastUpdate = tb.now()
	return tb
}

func (tb *TokenBucket) Allow() bool {
	return tb.AllowN(1)
}

func (tb *TokenBucket) AllowN(n int64) bool {
	if tb.rate <= 0 {
		return true
	}
	tb.mu.Lock()
	defer tb.mu.Unlock()
	tb.refill()
	if tb.tokens < float64(n) {
		return false
	}
	tb.tokens -= float64(n)
	return true
}

func (tb *TokenBucket) Wait(ctx context.Context) error {
	return tb.WaitN(ctx, 1)
}

// WaitN blocks until n tokens are taken or ctx is done.
func (tb *TokenBucket) WaitN(ctx context.Context, n int64) error {
	if tb.rate <= 0 {
		return ctx.Err()
	}
	for {
		tb.mu.Lock()
		tb.refill()
		if tb.tokens >= float64(n) {
			tb.tokens -= float64(n)
			tb.mu.Unlock()
			return nil
		}
		wait := time.Duration((float64(n) - tb.tokens) / tb.rate * float64(time.Second))
		tb.mu.Unlock()

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// Tokens reports the tokens currently available.
func (tb *TokenBucket) Tokens() float64 {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	tb.refill()
	return tb.tokens
}

// refill must be called with mu held.
func (tb *TokenBucket) refill() {
	now := tb.now()
	elapsed := now.Sub(tb.lastUpdate).Seconds()
	tb.tokens = min(float64(tb.capacity), tb.tokens+elapsed*tb.rate)
	tb.lastUpdate = now
}
