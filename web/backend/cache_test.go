package backend_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"mediarec/web/backend"
)

func TestQueryCacheHit(t *testing.T) {
	c := backend.NewQueryCache(time.Minute)
	c.Set("search|true|superman", []byte(`{"results":[]}`))

	data, ok := c.Get("search|true|superman")
	assert.True(t, ok)
	assert.JSONEq(t, `{"results":[]}`, string(data))

	_, ok = c.Get("search|false|superman")
	assert.False(t, ok, "content mode is part of the key")
}

func TestQueryCacheExpiry(t *testing.T) {
	c := backend.NewQueryCache(10 * time.Millisecond)
	c.Set("k", []byte("v"))

	time.Sleep(20 * time.Millisecond)

	_, ok := c.Get("k")
	assert.False(t, ok)
	assert.Zero(t, c.Len(), "expired entries are dropped on read")
}

func TestQueryCacheSweep(t *testing.T) {
	c := backend.NewQueryCache(10 * time.Millisecond)
	c.Set("a", []byte("1"))
	c.Set("b", []byte("2"))

	time.Sleep(20 * time.Millisecond)
	c.Sweep()

	assert.Zero(t, c.Len())
}
