package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetters(t *testing.T) {
	t.Setenv("TEST_STR", "value")
	t.Setenv("TEST_INT", "42")
	t.Setenv("TEST_BAD_INT", "forty-two")
	t.Setenv("TEST_BOOL", "true")
	t.Setenv("TEST_FLOAT", "0.05")
	t.Setenv("TEST_DURATION", "168h")

	assert.Equal(t, "value", GetString("TEST_STR", "fallback"))
	assert.Equal(t, "fallback", GetString("TEST_MISSING", "fallback"))

	assert.Equal(t, 42, GetInt("TEST_INT", 1))
	assert.Equal(t, 1, GetInt("TEST_BAD_INT", 1))
	assert.Equal(t, 1, GetInt("TEST_MISSING", 1))

	assert.True(t, GetBool("TEST_BOOL", false))
	assert.False(t, GetBool("TEST_MISSING", false))

	assert.InDelta(t, 0.05, GetFloat("TEST_FLOAT", 0.01), 1e-9)
	assert.Equal(t, 7*24*time.Hour, GetDuration("TEST_DURATION", time.Hour))
	assert.Equal(t, time.Hour, GetDuration("TEST_MISSING", time.Hour))
}
