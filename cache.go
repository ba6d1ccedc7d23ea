package mixedtext

import "sync"

// Cache memoizes the lines computed for a text, keyed by the complete input
// string. It holds at most a fixed number of entries. Whenever storing a new
// entry would exceed this bound, a batch of the oldest entries (in order of
// insertion) is dropped. This is not an LRU scheme: reading an entry does
// not refresh it.
//
// Cache is safe for concurrent use. Entries live until they are evicted or
// Clear is called; there is no automatic expiry.
type Cache struct {
	mx         sync.Mutex
	entries    map[string][]TextLine
	order      []string // keys in order of insertion
	maxEntries int
	evictBatch int
}

// CacheStats reports the number and keys of cached entries.
type CacheStats struct {
	Size int
	Keys []string
}

// NewCache creates an empty cache for at most maxEntries texts. If full, the
// cache drops evictBatch entries at once. Non-positive arguments are replaced
// by defaults.
func NewCache(maxEntries, evictBatch int) *Cache {
	c := Config{MaxCacheEntries: maxEntries, EvictBatch: evictBatch}.withDefaults()
	if c.EvictBatch > c.MaxCacheEntries {
		c.EvictBatch = c.MaxCacheEntries
	}
	return &Cache{
		entries:    make(map[string][]TextLine),
		maxEntries: c.MaxCacheEntries,
		evictBatch: c.EvictBatch,
	}
}

// Lookup returns the lines cached for text, if present.
func (c *Cache) Lookup(text string) ([]TextLine, bool) {
	c.mx.Lock()
	defer c.mx.Unlock()
	lines, ok := c.entries[text]
	return lines, ok
}

// Store puts lines for text into the cache, evicting old entries if necessary.
// Storing a text already present replaces its lines without changing its age.
func (c *Cache) Store(text string, lines []TextLine) {
	c.mx.Lock()
	defer c.mx.Unlock()
	c.store(text, lines)
}

func (c *Cache) store(text string, lines []TextLine) {
	if _, ok := c.entries[text]; ok {
		c.entries[text] = lines
		return
	}
	if len(c.entries) >= c.maxEntries {
		c.evict()
	}
	c.entries[text] = lines
	c.order = append(c.order, text)
}

func (c *Cache) evict() {
	n := c.evictBatch
	if n > len(c.order) {
		n = len(c.order)
	}
	for _, key := range c.order[:n] {
		delete(c.entries, key)
	}
	tracer().Debugf("parse cache: evicted %d entries", n)
	c.order = append(c.order[:0:0], c.order[n:]...)
}

// GetOrCompute returns the lines for text, computing and storing them on a
// cache miss.
func (c *Cache) GetOrCompute(text string) []TextLine {
	if lines, ok := c.Lookup(text); ok {
		tracer().Debugf("parse cache hit for text of length %d", len(text))
		return lines
	}
	// Segmentation runs outside of the lock; concurrent misses for the same
	// text compute identical results.
	lines := Lines(text)
	c.Store(text, lines)
	return lines
}

// Clear drops all entries.
func (c *Cache) Clear() {
	c.mx.Lock()
	defer c.mx.Unlock()
	c.entries = make(map[string][]TextLine)
	c.order = nil
	tracer().Debugf("parse cache cleared")
}

// Stats returns the current size and the cached keys, oldest first.
func (c *Cache) Stats() CacheStats {
	c.mx.Lock()
	defer c.mx.Unlock()
	keys := make([]string, len(c.order))
	copy(keys, c.order)
	return CacheStats{Size: len(c.entries), Keys: keys}
}
