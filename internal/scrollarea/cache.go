package scrollarea

import (
	"github.com/rs/zerolog/log"

	"github.com/xonecas/vscroll/internal/geom"
	"github.com/xonecas/vscroll/internal/widget"
)

// Builder produces the content for a visible rectangle of a virtual
// container, in content coordinates.
type Builder func(visible geom.Rectangle) widget.Content

// CacheStats counts how often the cached content was reused.
type CacheStats struct {
	Hits   uint64
	Misses uint64
}

// Cache holds the content built for the last visible rectangle. An entry is
// reused while the rectangle stays within epsilon of the cached one and the
// data version is unchanged.
type Cache struct {
	epsilon float64

	valid   bool
	rect    geom.Rectangle
	key     uint64
	content widget.Content
	node    widget.Node

	stats CacheStats
}

// NewCache returns an empty cache comparing rectangles with epsilon.
func NewCache(epsilon float64) *Cache {
	return &Cache{epsilon: epsilon}
}

// Resolve returns the content for rect, calling build and laying the result
// out against limits only when the cached entry cannot be reused.
func (c *Cache) Resolve(rect geom.Rectangle, key uint64, limits widget.Limits, build Builder) (widget.Content, widget.Node) {
	if c.valid && c.key == key && c.rect.ApproxEqual(rect, c.epsilon) {
		c.stats.Hits++
		return c.content, c.node
	}

	c.stats.Misses++
	content := build(rect)
	node := content.Layout(limits)

	if c.valid && c.key != key {
		log.Debug().Uint64("from", c.key).Uint64("to", key).Msg("virtual content invalidated")
	}
	c.valid = true
	c.rect = rect
	c.key = key
	c.content = content
	c.node = node
	return content, node
}

// Invalidate drops the cached entry.
func (c *Cache) Invalidate() {
	c.valid = false
	c.content = nil
	c.node = widget.Node{}
}

// Rect returns the rectangle of the cached entry.
func (c *Cache) Rect() (geom.Rectangle, bool) { return c.rect, c.valid }

func (c *Cache) Stats() CacheStats { return c.stats }
