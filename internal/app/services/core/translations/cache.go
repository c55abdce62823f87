package translations

import (
	"caremarket-service/internal/app/contracts"
	"sync"
	"time"
)

type cacheEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryCache keeps translations per process. A zero ttl never expires.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryCache(ttl time.Duration) contracts.TranslationCache {
	return newMemoryCache(ttl, time.Now)
}

func newMemoryCache(ttl time.Duration, now func() time.Time) *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     now,
	}
}

func (c *MemoryCache) Get(locale, key string) (string, bool) {
	c.mu.RLock()
	entry, ok := c.entries[cacheKey(locale, key)]
	c.mu.RUnlock()
	if !ok {
		return "", false
	}
	if c.expired(entry) {
		c.evict(cacheKey(locale, key))
		return "", false
	}
	return entry.value, true
}

// evict removes key unless a concurrent Set refreshed it after the read.
func (c *MemoryCache) evict(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, ok := c.entries[key]; ok && c.expired(entry) {
		delete(c.entries, key)
	}
}

func (c *MemoryCache) expired(entry cacheEntry) bool {
	return !entry.expiresAt.IsZero() && c.now().After(entry.expiresAt)
}

func (c *MemoryCache) Set(locale, key, value string) {
	entry := cacheEntry{value: value}
	if c.ttl > 0 {
		entry.expiresAt = c.now().Add(c.ttl)
	}
	c.mu.Lock()
	c.entries[cacheKey(locale, key)] = entry
	c.mu.Unlock()
}

func cacheKey(locale, key string) string {
	return locale + "\x00" + key
}
