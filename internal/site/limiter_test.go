package site

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormLimiter(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	l := NewFormLimiter(6, 2) // one every 10s
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("demo", "10.0.0.1"))
	assert.True(t, l.Allow("demo", "10.0.0.1"))
	assert.False(t, l.Allow("demo", "10.0.0.1"))
	assert.True(t, l.Allow("demo", "10.0.0.2"), "clients are limited separately")
	assert.True(t, l.Allow("newsletter", "10.0.0.1"), "forms are limited separately")

	now = now.Add(10 * time.Second)
	assert.True(t, l.Allow("demo", "10.0.0.1"))
	assert.False(t, l.Allow("demo", "10.0.0.1"))
}

func TestFormLimiter_sweepsIdleClients(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	l := NewFormLimiter(6, 1)
	l.now = func() time.Time { return now }

	l.Allow("demo", "10.0.0.1")
	l.Allow("demo", "10.0.0.2")
	assert.Len(t, l.clients, 2)

	now = now.Add(limiterIdle + time.Minute)
	l.Allow("demo", "10.0.0.3")
	assert.Len(t, l.clients, 1)
}

func TestClientKey(t *testing.T) {
	r := httptest.NewRequest("POST", "/newsletter", nil)
	r.RemoteAddr = "192.0.2.7:51234"
	assert.Equal(t, "192.0.2.7", clientKey(r))

	r.RemoteAddr = "192.0.2.7"
	assert.Equal(t, "192.0.2.7", clientKey(r))
}
