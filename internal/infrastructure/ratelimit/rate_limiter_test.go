package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_SubmitReviewBudget(t *testing.T) {
	limiter := NewRateLimiter()

	for i := 0; i < 3; i++ {
		allowed, _ := limiter.Allow("10.0.0.1", "submit_review")
		assert.True(t, allowed, "request %d should pass", i+1)
	}

	allowed, retryAfter := limiter.Allow("10.0.0.1", "submit_review")
	assert.False(t, allowed)
	assert.Greater(t, retryAfter, time.Duration(0))
}

func TestRateLimiter_KeyedPerClientAndAction(t *testing.T) {
	limiter := NewRateLimiter()

	for i := 0; i < 3; i++ {
		limiter.Allow("10.0.0.1", "submit_review")
	}

	// Another client is unaffected
	allowed, _ := limiter.Allow("10.0.0.2", "submit_review")
	assert.True(t, allowed)

	// Same client, different action has its own bucket
	allowed, _ = limiter.Allow("10.0.0.1", "submit_complaint")
	assert.True(t, allowed)
}

func TestTokenBucket_Refill(t *testing.T) {
	bucket := NewTokenBucket(1, 1, 10*time.Millisecond)

	allowed, _ := bucket.Allow()
	assert.True(t, allowed)

	allowed, _ = bucket.Allow()
	assert.False(t, allowed)

	time.Sleep(15 * time.Millisecond)

	allowed, _ = bucket.Allow()
	assert.True(t, allowed)
}
