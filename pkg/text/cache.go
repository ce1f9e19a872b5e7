package text

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/go-drift/sway/pkg/graphics"
)

// DefaultCacheSize is the number of layouts a CachedShaper keeps.
const DefaultCacheSize = 256

type cacheKey struct {
	text   string
	family string
	size   float64
	wrap   float64
	scale  float64
}

// CachedShaper memoizes layouts from another Shaper.
//
// The transform scale is part of the key, so text drawn at a new scale is
// shaped again.
type CachedShaper struct {
	inner  Shaper
	cache  *lru.Cache[cacheKey, *graphics.TextLayout]
	hits   int
	misses int
}

// NewCachedShaper wraps inner with an LRU cache of the given size.
func NewCachedShaper(inner Shaper, size int) (*CachedShaper, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[cacheKey, *graphics.TextLayout](size)
	if err != nil {
		return nil, err
	}
	return &CachedShaper{inner: inner, cache: cache}, nil
}

// Shape implements Shaper.
func (c *CachedShaper) Shape(s string, f Font, wrapWidth, scale float64) *graphics.TextLayout {
	key := cacheKey{text: s, family: f.Family, size: f.size(), wrap: wrapWidth, scale: scale}
	if layout, ok := c.cache.Get(key); ok {
		c.hits++
		return layout
	}
	c.misses++
	layout := c.inner.Shape(s, f, wrapWidth, scale)
	c.cache.Add(key, layout)
	return layout
}

// Stats returns the number of cache hits and misses so far.
func (c *CachedShaper) Stats() (hits, misses int) {
	return c.hits, c.misses
}

// Len returns the number of cached layouts.
func (c *CachedShaper) Len() int {
	return c.cache.Len()
}

// Purge empties the cache.
func (c *CachedShaper) Purge() {
	c.cache.Purge()
}
