package cache

import (
	"context"
	"sync"
	"time"

	"github.com/rangipos/terminal/internal/infrastructure/erpclient"
)

const profilesKey = "pos_profiles"

// entry wraps a cached value with its expiration time
type entry struct {
	value     any
	expiresAt time.Time
}

func (e *entry) isExpired() bool {
	return time.Now().After(e.expiresAt)
}

// MemorySummaryCache implements SummaryCache with in-process storage.
// Expired entries are dropped lazily on read; the working set is a handful
// of keys, so no background sweeper is needed.
type MemorySummaryCache struct {
	mu      sync.RWMutex
	entries map[string]*entry
	ttl     time.Duration
}

// NewMemorySummaryCache creates an in-memory cache with the given TTL
func NewMemorySummaryCache(ttl time.Duration) *MemorySummaryCache {
	return &MemorySummaryCache{
		entries: make(map[string]*entry),
		ttl:     ttl,
	}
}

func (c *MemorySummaryCache) get(key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if e.isExpired() {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false
	}
	return e.value, true
}

func (c *MemorySummaryCache) set(key string, value any) {
	c.mu.Lock()
	c.entries[key] = &entry{value: value, expiresAt: time.Now().Add(c.ttl)}
	c.mu.Unlock()
}

// GetSummary implements SummaryCache
func (c *MemorySummaryCache) GetSummary(_ context.Context, date string) (*erpclient.DailySummary, bool) {
	v, ok := c.get("summary:" + date)
	if !ok {
		return nil, false
	}
	summary, ok := v.(*erpclient.DailySummary)
	return summary, ok
}

// SetSummary implements SummaryCache
func (c *MemorySummaryCache) SetSummary(_ context.Context, date string, summary *erpclient.DailySummary) {
	c.set("summary:"+date, summary)
}

// GetProfiles implements SummaryCache
func (c *MemorySummaryCache) GetProfiles(_ context.Context) ([]erpclient.POSProfile, bool) {
	v, ok := c.get(profilesKey)
	if !ok {
		return nil, false
	}
	profiles, ok := v.([]erpclient.POSProfile)
	return profiles, ok
}

// SetProfiles implements SummaryCache
func (c *MemorySummaryCache) SetProfiles(_ context.Context, profiles []erpclient.POSProfile) {
	c.set(profilesKey, profiles)
}

// InvalidateSummary implements SummaryCache
func (c *MemorySummaryCache) InvalidateSummary(_ context.Context, date string) {
	c.mu.Lock()
	delete(c.entries, "summary:"+date)
	c.mu.Unlock()
}
