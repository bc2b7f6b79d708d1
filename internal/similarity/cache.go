package similarity

import (
	"crypto/sha256"
	"sync"
)

// Cache memoises embeddings by the SHA-256 of their text. It is safe for concurrent use;
// a nil *Cache is a valid, always-empty cache.
type Cache struct {
	mu      sync.RWMutex
	entries map[[sha256.Size]byte][]float32
	limit   int
}

// NewCache creates a Cache holding at most limit vectors (0 means unbounded).
func NewCache(limit int) *Cache {
	return &Cache{
		entries: make(map[[sha256.Size]byte][]float32),
		limit:   limit,
	}
}

// Get returns the cached vector for text
func (c *Cache) Get(text string) ([]float32, bool) {
	if c == nil {
		return nil, false
	}
	key := sha256.Sum256([]byte(text))

	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

// Put stores the vector for text. Once the cache is full new vectors are not stored.
func (c *Cache) Put(text string, v []float32) {
	if c == nil {
		return
	}
	key := sha256.Sum256([]byte(text))

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.entries[key]; !exists && c.limit > 0 && len(c.entries) >= c.limit {
		return
	}
	c.entries[key] = v
}

// Len returns the number of cached vectors
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
