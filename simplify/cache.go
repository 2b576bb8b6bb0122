package simplify

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"

	"github.com/marcelolooser/HyperCells/word"
)

// Cache stores completed rewrite systems keyed by the presentation content
// hash, so the expensive completion runs once per group. Hash collisions
// between distinct presentations return the wrong system; the risk is
// accepted, see Presentation.Hash. Not safe for concurrent use.
type Cache struct {
	systems *treemap.Map
}

// DefaultCache backs every Simplify call that does not bring its own.
var DefaultCache = NewCache()

// NewCache returns an empty rewrite-system cache.
func NewCache() *Cache {
	return &Cache{systems: treemap.NewWith(utils.UInt64Comparator)}
}

// get looks up the system completed for p.
func (c *Cache) get(p word.Presentation) (*RewriteSystem, bool) {
	v, ok := c.systems.Get(p.Hash())
	if !ok {
		return nil, false
	}

	return v.(*RewriteSystem), true
}

// put stores the system completed for p.
func (c *Cache) put(p word.Presentation, rs *RewriteSystem) {
	c.systems.Put(p.Hash(), rs)
}

// Len reports the number of cached systems.
func (c *Cache) Len() int { return c.systems.Size() }

// Flush drops every cached system.
func (c *Cache) Flush() { c.systems.Clear() }

// FlushCache drops every system from the package default cache.
func FlushCache() { DefaultCache.Flush() }
