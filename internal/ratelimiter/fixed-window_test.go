package ratelimiter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedWindowLimiter(t *testing.T) {
	current := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := NewFixedWindowLimiter(2, 5*time.Second)
	rl.now = func() time.Time { return current }

	ok, _ := rl.Allow("1.1.1.1")
	assert.True(t, ok)
	ok, _ = rl.Allow("1.1.1.1")
	assert.True(t, ok)

	ok, retryAfter := rl.Allow("1.1.1.1")
	assert.False(t, ok)
	assert.Equal(t, 5*time.Second, retryAfter)

	// other clients have their own window
	ok, _ = rl.Allow("2.2.2.2")
	assert.True(t, ok)

	current = current.Add(5 * time.Second)
	ok, _ = rl.Allow("1.1.1.1")
	assert.True(t, ok)
}
