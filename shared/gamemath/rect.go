package gamemath

import "github.com/yohamta/donburi/features/math"

// Rect is an axis-aligned float rectangle. Width and height are stored as
// given; negative or zero sizes are kept and simply never intersect anything.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect builds a rect from its top-left corner and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAt builds a rect of the given size whose top-left corner is at p.
func RectAt(p math.Vec2, size math.Vec2) Rect {
	return Rect{X: p.X, Y: p.Y, W: size.X, H: size.Y}
}

func (r Rect) Left() float64 { return r.X }
func (r Rect) Top() float64 { return r.Y }
func (r Rect) Right() float64 { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

func (r Rect) TopLeft() math.Vec2 {
	return math.Vec2{X: r.X, Y: r.Y}
}

func (r Rect) Size() math.Vec2 {
	return math.Vec2{X: r.W, Y: r.H}
}

func (r Rect) Center() math.Vec2 {
	return math.Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// WithCenter returns a copy of r moved so its center sits at c.
func (r Rect) WithCenter(c math.Vec2) Rect {
	r.X = c.X - r.W/2
	r.Y = c.Y - r.H/2
	return r
}

// Moved returns a copy of r offset by d.
func (r Rect) Moved(d math.Vec2) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// Intersects reports whether r and o overlap with a positive area.
// Rects that only touch along an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	if r.W <= 0 || r.H <= 0 || o.W <= 0 || o.H <= 0 {
		return false
	}
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// ContainsPoint reports whether p lies inside r. The left and top edges are
// inclusive, the right and bottom edges exclusive.
func (r Rect) ContainsPoint(p math.Vec2) bool {
	return p.X >= r.X && p.X < r.Right() &&
		p.Y >= r.Y && p.Y < r.Bottom()
}
