package cache_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"payments-service/pkg/cache"
)

func TestLRUCache_SetGet(t *testing.T) {
	c := cache.NewLRUCache(2, time.Minute)

	c.Set("a", []byte("1"))

	got, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, []byte("1"), got)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestLRUCache_Eviction(t *testing.T) {
	c := cache.NewLRUCache(2, time.Minute)

	c.Set("a", []byte("1"))
	c.Set("b", []byte("2"))

	// "a" становится самым свежим
	c.Get("a")
	c.Set("c", []byte("3"))

	_, ok := c.Get("b")
	assert.False(t, ok, "least recently used entry should be evicted")

	_, ok = c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 2, c.Size())
}

func TestLRUCache_TTL(t *testing.T) {
	c := cache.NewLRUCache(10, 10*time.Millisecond)

	c.Set("a", []byte("1"))
	time.Sleep(20 * time.Millisecond)

	_, ok := c.Get("a")
	assert.False(t, ok, "expired entry should not be returned")
}

func TestLRUCache_Del(t *testing.T) {
	c := cache.NewLRUCache(10, time.Minute)

	c.Set("a", []byte("1"))
	c.Del("a")

	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Size())

	// удаление несуществующего ключа — no-op
	c.Del("missing")
}

func TestLRUCache_Overwrite(t *testing.T) {
	c := cache.NewLRUCache(10, time.Minute)

	c.Set("a", []byte("1"))
	c.Set("a", []byte("2"))

	got, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, []byte("2"), got)
	assert.Equal(t, 1, c.Size())
}
