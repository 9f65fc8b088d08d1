// Package viewcache keeps rendered read views in memory until an action marks
// their route stale.
package viewcache

import (
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/GabrielVilchis-215460/nextjs-practice/internal/core/ports"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultSize is the number of rendered views kept when no size is configured.
const DefaultSize = 128

// Recorder observes cache traffic.
type Recorder interface {
	RecordCacheLookup(hit bool)
	RecordCacheInvalidation(path string)
}

// LRUViewCache is a ports.ViewCache backed by a fixed-size LRU.
// Keys are "path" or "path?encoded-query".
type LRUViewCache struct {
	cache    *lru.Cache[string, any]
	recorder Recorder

	// mu orders Put against Invalidate; generations counts invalidations per path.
	mu          sync.Mutex
	generations map[string]uint64
}

// Option configures an LRUViewCache.
type Option func(*LRUViewCache)

// WithRecorder reports hits, misses and invalidations to r.
func WithRecorder(r Recorder) Option {
	return func(c *LRUViewCache) {
		c.recorder = r
	}
}

// New creates a view cache holding at most size entries.
func New(size int, opts ...Option) (*LRUViewCache, error) {
	if size <= 0 {
		size = DefaultSize
	}
	cache, err := lru.New[string, any](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create view cache: %w", err)
	}
	c := &LRUViewCache{cache: cache, generations: map[string]uint64{}}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

var _ ports.ViewCache = (*LRUViewCache)(nil)

// Key builds the cache key of a rendered view.
func Key(path string, query url.Values) string {
	if len(query) == 0 {
		return path
	}
	return path + "?" + query.Encode()
}

func pathOf(key string) string {
	path, _, _ := strings.Cut(key, "?")
	return path
}

// Get returns the cached view for key.
func (c *LRUViewCache) Get(key string) (any, bool) {
	view, ok := c.cache.Get(key)
	if c.recorder != nil {
		c.recorder.RecordCacheLookup(ok)
	}
	return view, ok
}

// Generation returns the invalidation count of path. Readers take it before
// rendering and pass it to Put.
func (c *LRUViewCache) Generation(path string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generations[path]
}

// Put caches a view rendered at generation. The view is dropped when its path
// was invalidated after that generation was taken.
func (c *LRUViewCache) Put(key string, generation uint64, view any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generations[pathOf(key)] != generation {
		return
	}
	c.cache.Add(key, view)
}

// Invalidate drops every cached render of path, whatever its query string,
// and rejects renders started before this call.
func (c *LRUViewCache) Invalidate(path string) {
	c.mu.Lock()
	c.generations[path]++
	for _, key := range c.cache.Keys() {
		if pathOf(key) == path {
			c.cache.Remove(key)
		}
	}
	c.mu.Unlock()

	if c.recorder != nil {
		c.recorder.RecordCacheInvalidation(path)
	}
}

// Len reports the number of cached views.
func (c *LRUViewCache) Len() int {
	return c.cache.Len()
}
