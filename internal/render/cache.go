package render

import (
	"container/list"
	"sync"
)

// Key uniquely identifies a rendered row. Width, view mode, and intra-line
// mode are part of the key so mode or resize changes never serve stale
// renders; the path + hunk + line triple identifies the source row.
type Key struct {
	Path      string
	HunkIndex int
	LineIndex int
	Width     int
	View      ViewMode
	Intra     IntraMode
}

// Metrics tracks render cache performance statistics.
type Metrics struct {
	Hits       uint64
	Misses     uint64
	Evictions  uint64
	SizeEvicts uint64 // Evictions forced by the byte limit
}

// HitRate returns the cache hit rate as a percentage (0-100).
// Returns 0 if no requests have been made.
func (m Metrics) HitRate() float64 {
	total := m.Hits + m.Misses
	if total == 0 {
		return 0
	}
	return float64(m.Hits) / float64(total) * 100
}

// DefaultMaxCacheBytes is the default memory limit for the cache (~10MB).
const DefaultMaxCacheBytes = 10 * 1024 * 1024

// DefaultCacheCapacity is the default rendered-row entry limit.
const DefaultCacheCapacity = 1000

// Cache is an LRU cache of rendered row strings with both entry-count and
// byte limits; eviction occurs when either limit would be exceeded.
type Cache struct {
	capacity    int
	maxBytes    int64
	currentSize int64
	entries     map[Key]*list.Element
	lru         *list.List
	mu          sync.Mutex

	metrics Metrics
}

type cacheEntry struct {
	key   Key
	value string
	size  int64
}

// entrySize estimates the memory usage of a cache entry: the rendered
// string, the key's path string, and a rough constant for the fixed fields.
func entrySize(key Key, value string) int64 {
	return int64(len(value)) + int64(len(key.Path)) + 50
}

// NewCache creates a render cache with the given entry capacity and
// DefaultMaxCacheBytes for the memory limit.
func NewCache(capacity int) *Cache {
	return NewCacheWithLimits(capacity, DefaultMaxCacheBytes)
}

// NewCacheWithLimits creates a render cache with explicit entry and byte
// limits. Non-positive values fall back to the defaults.
func NewCacheWithLimits(capacity int, maxBytes int64) *Cache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxCacheBytes
	}
	return &Cache{
		capacity: capacity,
		maxBytes: maxBytes,
		entries:  make(map[Key]*list.Element),
		lru:      list.New(),
	}
}

// Get retrieves a cached rendered row, returning ("", false) on a miss.
func (c *Cache) Get(key Key) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		c.lru.MoveToFront(elem)
		c.metrics.Hits++
		return elem.Value.(*cacheEntry).value, true
	}
	c.metrics.Misses++
	return "", false
}

// Put stores a rendered row, evicting least recently used entries until
// both the count and byte limits hold.
func (c *Cache) Put(key Key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	size := entrySize(key, value)

	if elem, ok := c.entries[key]; ok {
		c.lru.MoveToFront(elem)
		entry := elem.Value.(*cacheEntry)
		c.currentSize -= entry.size
		entry.value = value
		entry.size = size
		c.currentSize += size
		return
	}

	for c.lru.Len() >= c.capacity || c.currentSize+size > c.maxBytes {
		oldest := c.lru.Back()
		if oldest == nil {
			break
		}
		entry := oldest.Value.(*cacheEntry)
		delete(c.entries, entry.key)
		c.lru.Remove(oldest)
		c.currentSize -= entry.size
		c.metrics.Evictions++
		if c.currentSize+size > c.maxBytes {
			c.metrics.SizeEvicts++
		}
	}

	elem := c.lru.PushFront(&cacheEntry{key: key, value: value, size: size})
	c.entries[key] = elem
	c.currentSize += size
}

// Clear empties the cache but preserves metrics.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[Key]*list.Element)
	c.lru.Init()
	c.currentSize = 0
}

// Len returns the current number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

// ByteSize returns the current estimated memory usage in bytes.
func (c *Cache) ByteSize() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentSize
}

// Metrics returns a copy of the current cache metrics.
func (c *Cache) Metrics() Metrics {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.metrics
}
