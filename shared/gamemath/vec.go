package gamemath

import (
	stdmath "math"

	"github.com/yohamta/donburi/features/math"
)

// Vec is shorthand for building a math.Vec2.
func Vec(x, y float64) math.Vec2 {
	return math.Vec2{X: x, Y: y}
}

// Sub returns a - b.
func Sub(a, b math.Vec2) math.Vec2 {
	return math.Vec2{X: a.X - b.X, Y: a.Y - b.Y}
}

// Scale multiplies both components by s.
func Scale(v math.Vec2, s float64) math.Vec2 {
	return math.Vec2{X: v.X * s, Y: v.Y * s}
}

// Lerp moves from a toward b by fraction t, per component.
// t is not clamped.
func Lerp(a, b math.Vec2, t float64) math.Vec2 {
	return math.Vec2{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

// Round rounds each component to the nearest integer, halves away from zero.
func Round(v math.Vec2) math.Vec2 {
	return math.Vec2{X: stdmath.Round(v.X), Y: stdmath.Round(v.Y)}
}

// NearestEdgeDistance returns the signed distance from v to whichever of
// lo and hi is closer. Ties go to lo.
func NearestEdgeDistance(v, lo, hi float64) float64 {
	toLo := v - lo
	toHi := v - hi
	if stdmath.Abs(toHi) < stdmath.Abs(toLo) {
		return toHi
	}
	return toLo
}
