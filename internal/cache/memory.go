package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Memory is an in-process cache backed by go-cache. Entries expire after
// their TTL and are swept periodically; nothing survives the process.
type Memory struct {
	cache *gocache.Cache
}

// NewMemory creates a memory cache with the given default TTL
func NewMemory(defaultTTL time.Duration) *Memory {
	return &Memory{
		cache: gocache.New(defaultTTL, 2*defaultTTL),
	}
}

// Get retrieves a value from the cache
func (m *Memory) Get(key string) ([]byte, bool) {
	if val, found := m.cache.Get(key); found {
		return val.([]byte), true
	}
	return nil, false
}

// Set stores a value with the given TTL
func (m *Memory) Set(key string, value []byte, ttl time.Duration) {
	m.cache.Set(key, value, ttl)
}

// Clear removes all entries
func (m *Memory) Clear() {
	m.cache.Flush()
}
