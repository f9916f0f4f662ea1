package summarycache

import (
	"context"
	"sync"
	"time"

	"github.com/yanqian/news-summarizer/internal/domain/summarizer"
)

type cachedResponse struct {
	payload   summarizer.Response
	expiresAt time.Time
}

// MemoryCache is an in-memory implementation of the summary cache for tests/dev.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]cachedResponse
	now     func() time.Time
}

// NewMemoryCache constructs a cache backed by process memory.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]cachedResponse),
		now:     time.Now,
	}
}

// Get implements summarizer.Cache.
func (c *MemoryCache) Get(_ context.Context, digest string) (summarizer.Response, bool, error) {
	if digest == "" {
		return summarizer.Response{}, false, nil
	}
	c.mu.RLock()
	entry, ok := c.entries[digest]
	c.mu.RUnlock()
	if !ok {
		return summarizer.Response{}, false, nil
	}
	if c.expired(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, digest)
		c.mu.Unlock()
		return summarizer.Response{}, false, nil
	}
	return entry.payload, true, nil
}

// Set caches the response with optional TTL.
func (c *MemoryCache) Set(_ context.Context, digest string, resp summarizer.Response, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	exp := time.Time{}
	if ttl > 0 {
		exp = c.now().Add(ttl)
	}
	c.entries[digest] = cachedResponse{payload: resp, expiresAt: exp}
	return nil
}

func (c *MemoryCache) expired(ts time.Time) bool {
	if ts.IsZero() {
		return false
	}
	return ts.Before(c.now())
}

var _ summarizer.Cache = (*MemoryCache)(nil)
