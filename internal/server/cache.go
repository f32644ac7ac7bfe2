package server

import (
	"crypto/sha256"
	"encoding/hex"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// ResultCache memoises generated output by the SHA-256 of the source text.
// A cache built with size 0 is disabled and never stores anything.
type ResultCache struct {
	items  *lru.Cache[string, string]
	hits   atomic.Uint64
	misses atomic.Uint64
}

// CacheStats provides cache statistics
type CacheStats struct {
	Size    int
	Hits    uint64
	Misses  uint64
	Enabled bool
}

// NewResultCache creates a cache holding at most size entries
func NewResultCache(size int) (*ResultCache, error) {
	if size <= 0 {
		return &ResultCache{}, nil
	}
	items, err := lru.New[string, string](size)
	if err != nil {
		return nil, err
	}
	return &ResultCache{items: items}, nil
}

// Key returns the cache key for source
func Key(source []byte) string {
	sum := sha256.Sum256(source)
	return hex.EncodeToString(sum[:])
}

// Get retrieves the output cached for source
func (c *ResultCache) Get(source []byte) (string, bool) {
	if c == nil || c.items == nil {
		return "", false
	}
	out, ok := c.items.Get(Key(source))
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return out, ok
}

// Set stores the output generated for source
func (c *ResultCache) Set(source []byte, output string) {
	if c == nil || c.items == nil {
		return
	}
	c.items.Add(Key(source), output)
}

// Purge removes all entries
func (c *ResultCache) Purge() {
	if c == nil || c.items == nil {
		return
	}
	c.items.Purge()
}

// Stats returns cache statistics
func (c *ResultCache) Stats() CacheStats {
	if c == nil || c.items == nil {
		return CacheStats{}
	}
	return CacheStats{
		Size:    c.items.Len(),
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
		Enabled: true,
	}
}
