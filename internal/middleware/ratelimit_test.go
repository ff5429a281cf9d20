package middleware_test

import (
	"testing"
	"time"

	"shorelux/internal/middleware"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterCapsPerKey(t *testing.T) {
	l := middleware.NewInMemoryRateLimiter(2, time.Minute)

	assert.True(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))

	// Other clients are counted separately.
	assert.True(t, l.Allow("10.0.0.2"))
}

func TestRateLimiterWindowSlides(t *testing.T) {
	l := middleware.NewInMemoryRateLimiter(1, 20*time.Millisecond)

	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))

	time.Sleep(30 * time.Millisecond)
	assert.True(t, l.Allow("10.0.0.1"))
}
