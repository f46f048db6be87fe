package mapbox

import (
	"context"
	"fmt"
	"sync"

	"github.com/cloudbread0714/tayo-taxi-user/internal/domain"
	"github.com/cloudbread0714/tayo-taxi-user/internal/observability"
)

// CachedGeocoder wraps a Geocoder with in-memory LRU caches.
type CachedGeocoder struct {
	inner   domain.Geocoder
	reverse *lruCache[[]domain.AddressCandidate]
	forward *lruCache[[]domain.GeoPoint]
	metrics *observability.Metrics
}

// NewCachedGeocoder creates a cache decorator around a geocoder.
func NewCachedGeocoder(inner domain.Geocoder, maxEntries int, metrics *observability.Metrics) *CachedGeocoder {
	return &CachedGeocoder{
		inner:   inner,
		reverse: newLRUCache[[]domain.AddressCandidate](maxEntries),
		forward: newLRUCache[[]domain.GeoPoint](maxEntries),
		metrics: metrics,
	}
}

func (c *CachedGeocoder) Forward(ctx context.Context, text string) ([]domain.GeoPoint, error) {
	key := "fwd:" + text
	if result, ok := c.forward.get(key); ok {
		c.metrics.GeocodeCache.WithLabelValues("forward", "hit").Inc()
		return result, nil
	}
	c.metrics.GeocodeCache.WithLabelValues("forward", "miss").Inc()

	result, err := c.inner.Forward(ctx, text)
	if err != nil {
		return nil, err
	}
	// Only cache non-empty results so transient "not found" responses can be retried.
	if len(result) > 0 {
		c.forward.put(key, result)
	}
	return result, nil
}

func (c *CachedGeocoder) Reverse(ctx context.Context, point domain.GeoPoint) ([]domain.AddressCandidate, error) {
	key := fmt.Sprintf("rev:%.6f,%.6f", point.Latitude, point.Longitude)
	if result, ok := c.reverse.get(key); ok {
		c.metrics.GeocodeCache.WithLabelValues("reverse", "hit").Inc()
		return result, nil
	}
	c.metrics.GeocodeCache.WithLabelValues("reverse", "miss").Inc()

	result, err := c.inner.Reverse(ctx, point)
	if err != nil {
		return nil, err
	}
	if len(result) > 0 {
		c.reverse.put(key, result)
	}
	return result, nil
}

// lruCache is a simple thread-safe LRU cache.
type lruCache[V any] struct {
	maxEntries int
	mu         sync.Mutex
	entries    map[string]*entry[V]
	head       *entry[V] // most recently used
	tail       *entry[V] // least recently used
}

type entry[V any] struct {
	key   string
	value V
	prev  *entry[V]
	next  *entry[V]
}

func newLRUCache[V any](maxEntries int) *lruCache[V] {
	return &lruCache[V]{
		maxEntries: maxEntries,
		entries:    make(map[string]*entry[V]),
	}
}

func (c *lruCache[V]) get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.moveToFront(e)
	return e.value, true
}

func (c *lruCache[V]) put(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		c.moveToFront(e)
		return
	}

	e := &entry[V]{key: key, value: value}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *lruCache[V]) moveToFront(e *entry[V]) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *lruCache[V]) addToFront(e *entry[V]) {
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

func (c *lruCache[V]) remove(e *entry[V]) {
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

func (c *lruCache[V]) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}
