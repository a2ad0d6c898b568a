package syntax

import (
	"container/list"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// CacheKey uniquely identifies a highlighting result: the language rule
// table the line was tokenized under plus a fingerprint of its content.
type CacheKey struct {
	Lang string
	Sum  uint64
}

// Fingerprint derives the cache key for a (language, content) pair.
func Fingerprint(lang, content string) CacheKey {
	return CacheKey{Lang: lang, Sum: xxhash.Sum64String(content)}
}

// CacheMetrics tracks cache performance statistics.
type CacheMetrics struct {
	Hits      uint64 // Number of cache hits
	Misses    uint64 // Number of cache misses
	Evictions uint64 // Number of entries evicted
}

// HitRate returns the cache hit rate as a percentage (0-100).
// Returns 0 if no requests have been made.
func (m CacheMetrics) HitRate() float64 {
	total := m.Hits + m.Misses
	if total == 0 {
		return 0
	}
	return float64(m.Hits) / float64(total) * 100
}

// DefaultCacheCapacity bounds the highlight cache entry count.
const DefaultCacheCapacity = 1000

// Cache is a bounded LRU cache of span sequences keyed by (language,
// content fingerprint). Entries live for the process lifetime; there is no
// explicit invalidation. When the bound is reached the least recently used
// entry is evicted before the insert.
type Cache struct {
	capacity int
	entries  map[CacheKey]*list.Element
	lru      *list.List
	mu       sync.Mutex

	metrics CacheMetrics
}

type cacheEntry struct {
	key   CacheKey
	spans []Span
}

// NewCache creates a span cache bounded to the given entry capacity.
// Non-positive capacities fall back to DefaultCacheCapacity.
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	return &Cache{
		capacity: capacity,
		entries:  make(map[CacheKey]*list.Element),
		lru:      list.New(),
	}
}

// Get retrieves a cached span sequence, returning (nil, false) on a miss.
func (c *Cache) Get(key CacheKey) ([]Span, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		c.lru.MoveToFront(elem)
		c.metrics.Hits++
		return elem.Value.(*cacheEntry).spans, true
	}
	c.metrics.Misses++
	return nil, false
}

// Put stores a span sequence, evicting the least recently used entries
// until the insert fits within the capacity bound.
func (c *Cache) Put(key CacheKey, spans []Span) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		c.lru.MoveToFront(elem)
		elem.Value.(*cacheEntry).spans = spans
		return
	}

	for c.lru.Len() >= c.capacity {
		oldest := c.lru.Back()
		if oldest == nil {
			break
		}
		entry := oldest.Value.(*cacheEntry)
		delete(c.entries, entry.key)
		c.lru.Remove(oldest)
		c.metrics.Evictions++
	}

	elem := c.lru.PushFront(&cacheEntry{key: key, spans: spans})
	c.entries[key] = elem
}

// Len returns the current number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

// Metrics returns a copy of the current cache metrics.
func (c *Cache) Metrics() CacheMetrics {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.metrics
}

// Highlighter is the cache-checked tokenization entry point used by the
// render loop: fingerprint, probe, tokenize on miss, store, return.
type Highlighter struct {
	tok   *Tokenizer
	cache *Cache
}

// NewHighlighter wires a tokenizer to a span cache of the given capacity.
func NewHighlighter(capacity int) *Highlighter {
	return &Highlighter{
		tok:   NewTokenizer(),
		cache: NewCache(capacity),
	}
}

// Highlight returns the styled span sequence for a line, consulting the
// cache first. On a hit the cached sequence is returned unchanged; callers
// must treat it as immutable.
func (h *Highlighter) Highlight(lang, line string) []Span {
	key := Fingerprint(lang, line)
	if spans, ok := h.cache.Get(key); ok {
		return spans
	}
	spans := h.tok.Tokenize(lang, line)
	h.cache.Put(key, spans)
	return spans
}

// Cache exposes the underlying span cache for metrics reporting.
func (h *Highlighter) Cache() *Cache {
	return h.cache
}

// Tokenizer exposes the underlying tokenizer, mainly so user rule
// registration can invalidate compiled tables.
func (h *Highlighter) Tokenizer() *Tokenizer {
	return h.tok
}
