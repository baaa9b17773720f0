// Package renderer batches images into z-indexed layers, culls them against
// a viewport and draws them back to front onto a Target.
package renderer

import (
	"image"
	"maps"
	"slices"

	"github.com/Matiiss/plasma-engine/config"
	"github.com/Matiiss/plasma-engine/shared/gamemath"
)

// Item is one queued draw: an image and the screen rect it occupies.
// The image is borrowed and must stay valid while the item is queued.
type Item struct {
	Image image.Image
	Rect  gamemath.Rect
}

// Renderer owns a stack of layers keyed by z-index. The stack persists
// across Render calls until filtered or cleared.
type Renderer struct {
	target   Target
	viewport gamemath.Rect
	defaultZ int
	stack    map[int][]Item
}

type Option func(*Renderer)

// WithViewport overrides the culling rect, which otherwise covers the
// target's bounds.
func WithViewport(r gamemath.Rect) Option {
	return func(rr *Renderer) {
		rr.viewport = r
	}
}

// WithDefaultZIndex sets the layer Append uses.
func WithDefaultZIndex(z int) Option {
	return func(rr *Renderer) {
		rr.defaultZ = z
	}
}

// New creates a renderer drawing onto target.
func New(target Target, opts ...Option) *Renderer {
	b := target.Bounds()
	r := &Renderer{
		target:   target,
		viewport: gamemath.NewRect(float64(b.Min.X), float64(b.Min.Y), float64(b.Dx()), float64(b.Dy())),
		defaultZ: config.Renderer.DefaultZIndex,
		stack:    make(map[int][]Item),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Renderer) Viewport() gamemath.Rect {
	return r.viewport
}

func (r *Renderer) SetViewport(v gamemath.Rect) {
	r.viewport = v
}

// Append queues img at rect on the default layer.
func (r *Renderer) Append(img image.Image, rect gamemath.Rect) {
	r.AppendAt(img, rect, r.defaultZ)
}

// AppendAt queues img at rect on layer z, after anything already there.
func (r *Renderer) AppendAt(img image.Image, rect gamemath.Rect, z int) {
	r.stack[z] = append(r.stack[z], Item{Image: img, Rect: rect})
}

// FilterViewport drops every item whose rect does not overlap the viewport.
// Layers emptied this way stay in the stack.
func (r *Renderer) FilterViewport() {
	for z, items := range r.stack {
		r.stack[z] = slices.DeleteFunc(items, func(it Item) bool {
			return !it.Rect.Intersects(r.viewport)
		})
	}
}

// SortStack stably sorts each layer with cmp. Items never change layers.
// A nil cmp keeps the current order.
func (r *Renderer) SortStack(cmp func(a, b gamemath.Rect) int) {
	if cmp == nil {
		return
	}
	for _, items := range r.stack {
		slices.SortStableFunc(items, func(a, b Item) int {
			return cmp(a.Rect, b.Rect)
		})
	}
}

// Render blits every queued item at its rect's top-left, lowest z-index
// first and in list order within a layer.
func (r *Renderer) Render() {
	for _, z := range r.ZIndices() {
		for _, it := range r.stack[z] {
			r.target.Blit(it.Image, it.Rect.TopLeft())
		}
	}
}

// ZIndices returns the populated layer keys in ascending order.
func (r *Renderer) ZIndices() []int {
	return slices.Sorted(maps.Keys(r.stack))
}

// Layer returns the items queued on z. The slice aliases the stack.
func (r *Renderer) Layer(z int) []Item {
	return r.stack[z]
}

// Len counts queued items across all layers.
func (r *Renderer) Len() int {
	n := 0
	for _, items := range r.stack {
		n += len(items)
	}
	return n
}

// Clear empties the stack.
func (r *Renderer) Clear() {
	clear(r.stack)
}
