// Package adjacency: translation-construction cache.
// Constructing a translation-subgroup representation is expensive in a real
// group-theory engine (coset enumeration per quotient), so Build funnels
// every handle through a cache keyed by the handle's stable Key(). Within a
// session the cache only grows; flushing invalidates all previously
// returned cached handles, which callers must treat as stale.
package adjacency

import "github.com/marcelolooser/HyperCells/triangle"

// Cache memoizes translation-subgroup handles by their stable identity.
// It is not safe for concurrent use; HyperCells runs single-threaded.
type Cache struct {
	handles map[string]triangle.Subgroup
}

// DefaultCache is the shared process-wide translation cache used by Build
// when no explicit cache is given. Flush it with FlushCache.
var DefaultCache = NewCache()

// NewCache returns an empty translation cache.
func NewCache() *Cache {
	return &Cache{handles: make(map[string]triangle.Subgroup)}
}

// Canonical returns the cached handle with s's identity, storing s as the
// canonical representative on first sight. Identical subgroups therefore
// resolve to one handle across repeated builds.
func (c *Cache) Canonical(s triangle.Subgroup) triangle.Subgroup {
	if s == nil {
		return nil
	}
	key := s.Key()
	if cached, ok := c.handles[key]; ok {
		return cached
	}
	c.handles[key] = s

	return s
}

// Len reports the number of cached handles.
func (c *Cache) Len() int { return len(c.handles) }

// Flush discards every cached handle. Handles returned before the flush
// remain usable values but are no longer canonical.
func (c *Cache) Flush() {
	c.handles = make(map[string]triangle.Subgroup)
}

// FlushCache flushes the shared process-wide translation cache.
func FlushCache() { DefaultCache.Flush() }
