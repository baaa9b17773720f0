package renderer

import (
	"cmp"

	"github.com/Matiiss/plasma-engine/shared/gamemath"
)

// ByTopLeft orders rects by left edge, then top edge.
func ByTopLeft(a, b gamemath.Rect) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}
	return cmp.Compare(a.Y, b.Y)
}

// ByBottom orders rects by bottom edge so things lower on screen draw over
// things behind them.
func ByBottom(a, b gamemath.Rect) int {
	return cmp.Compare(a.Bottom(), b.Bottom())
}
