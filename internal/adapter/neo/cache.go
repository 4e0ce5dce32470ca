package neo

import (
	"context"
	"sync"

	"github.com/couchcryptid/impact-effects-service/internal/domain"
	"github.com/couchcryptid/impact-effects-service/internal/observability"
)

// CachedCatalog wraps a NeoCatalog with an in-memory LRU cache. Catalog
// records are immutable upstream, so entries never expire; only failures go
// uncached so transient errors can be retried on the next request.
type CachedCatalog struct {
	inner   domain.NeoCatalog
	cache   *lruCache
	metrics *observability.Metrics
}

// NewCachedCatalog creates a cache decorator around a catalog.
func NewCachedCatalog(inner domain.NeoCatalog, maxEntries int, metrics *observability.Metrics) *CachedCatalog {
	return &CachedCatalog{
		inner:   inner,
		cache:   newLRUCache(maxEntries),
		metrics: metrics,
	}
}

func (c *CachedCatalog) Lookup(ctx context.Context, id string) (domain.NeoObject, error) {
	if obj, ok := c.cache.get(id); ok {
		c.metrics.NeoCache.WithLabelValues("hit").Inc()
		return obj, nil
	}
	c.metrics.NeoCache.WithLabelValues("miss").Inc()

	obj, err := c.inner.Lookup(ctx, id)
	if err != nil {
		return obj, err
	}
	c.cache.put(id, obj)
	return obj, nil
}

// lruCache is a simple thread-safe LRU cache keyed by NEO identifier.
type lruCache struct {
	maxEntries int
	mu         sync.Mutex
	entries    map[string]*entry
	head       *entry // most recently used
	tail       *entry // least recently used
}

type entry struct {
	key   string
	value domain.NeoObject
	prev  *entry
	next  *entry
}

func newLRUCache(maxEntries int) *lruCache {
	return &lruCache{
		maxEntries: maxEntries,
		entries:    make(map[string]*entry),
	}
}

func (c *lruCache) get(key string) (domain.NeoObject, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return domain.NeoObject{}, false
	}
	c.moveToFront(e)
	return e.value, true
}

func (c *lruCache) put(key string, value domain.NeoObject) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, value: value}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *lruCache) moveToFront(e *entry) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *lruCache) addToFront(e *entry) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *lruCache) remove(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *lruCache) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}
