// Package cache holds the short-lived month cache that backs the calendar
// view. Entries live for the process session only; stale entries are ignored,
// never evicted.
package cache

import (
	"fmt"
	"sync"
	"time"

	"club-calendar-service/internal/category"
	"club-calendar-service/internal/domain"
)

// DefaultTTL matches the five-minute staleness window of the original site.
const DefaultTTL = 5 * time.Minute

type entry struct {
	matches   []domain.Match
	timestamp time.Time
}

// Cache is a thread-safe TTL cache keyed by (year, month, bucket). Concurrent
// fetches for the same key are not deduplicated; both results are stored
// sequentially and the last write wins.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

// New constructs a Cache. A non-positive ttl falls back to DefaultTTL.
func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Key builds the cache key: year, zero-padded month, bucket.
func Key(year int, month time.Month, bucket category.Bucket) string {
	return fmt.Sprintf("%d-%02d-%s", year, int(month), bucket)
}

// Get returns the cached matches for the key while the entry is younger than
// the TTL. A stale or absent entry reports a miss; the caller refetches.
func (c *Cache) Get(year int, month time.Month, bucket category.Bucket) ([]domain.Match, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[Key(year, month, bucket)]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.timestamp) >= c.ttl {
		return nil, false
	}

	matches := make([]domain.Match, len(e.matches))
	copy(matches, e.matches)
	return matches, true
}

// Put stores matches under the key, stamped with the current time.
func (c *Cache) Put(year int, month time.Month, bucket category.Bucket, matches []domain.Match) {
	stored := make([]domain.Match, len(matches))
	copy(stored, matches)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[Key(year, month, bucket)] = entry{matches: stored, timestamp: c.now()}
}

// Len reports how many entries are held, fresh or stale.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
