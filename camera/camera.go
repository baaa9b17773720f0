// Package camera maps world coordinates to screen space and tracks a target
// with optional dead-zone gating.
package camera

import (
	"errors"
	"fmt"

	"github.com/Matiiss/plasma-engine/config"
	"github.com/Matiiss/plasma-engine/shared/gamemath"
	"github.com/yohamta/donburi/features/math"
)

// ErrInvalidCoordinate is returned when a coordinate does not have exactly
// two components.
var ErrInvalidCoordinate = errors.New("coordinate must have exactly 2 components")

// Camera2D holds a world-space position (the world point drawn at the
// screen's top-left), a viewport anchored at the screen origin, and a zoom
// factor applied to translated distances.
type Camera2D struct {
	position math.Vec2
	viewport gamemath.Rect

	// Zoom scales translated distances. It is not applied to the viewport.
	Zoom float64
}

// New creates a camera at position with a viewport of the given size.
// Zoom starts at config.Camera.DefaultZoom.
func New(position, viewportSize math.Vec2) *Camera2D {
	c := &Camera2D{Zoom: config.Camera.DefaultZoom}
	c.SetPosition(position)
	c.SetViewport(viewportSize)
	return c
}

// NewFromCoords is New for untyped coordinate slices, e.g. values decoded
// from a level file. Both slices must have exactly two components.
func NewFromCoords(position, viewportSize []float64) (*Camera2D, error) {
	pos, err := vecFromCoords(position)
	if err != nil {
		return nil, fmt.Errorf("camera position: %w", err)
	}
	size, err := vecFromCoords(viewportSize)
	if err != nil {
		return nil, fmt.Errorf("camera viewport: %w", err)
	}
	return New(pos, size), nil
}

func vecFromCoords(xy []float64) (math.Vec2, error) {
	if len(xy) != 2 {
		return math.Vec2{}, fmt.Errorf("%w, got %d", ErrInvalidCoordinate, len(xy))
	}
	return gamemath.Vec(xy[0], xy[1]), nil
}

func (c *Camera2D) Position() math.Vec2 {
	return c.position
}

func (c *Camera2D) SetPosition(p math.Vec2) {
	c.position = math.Vec2{X: p.X, Y: p.Y}
}

// SetPositionCoords sets the position from a two-component slice.
// The position is left unchanged on error.
func (c *Camera2D) SetPositionCoords(xy ...float64) error {
	p, err := vecFromCoords(xy)
	if err != nil {
		return err
	}
	c.SetPosition(p)
	return nil
}

// Viewport returns the screen-space viewport, always anchored at (0, 0).
func (c *Camera2D) Viewport() gamemath.Rect {
	return c.viewport
}

func (c *Camera2D) SetViewport(size math.Vec2) {
	c.viewport = gamemath.NewRect(0, 0, size.X, size.Y)
}

// SetViewportCoords sets the viewport size from a two-component slice.
func (c *Camera2D) SetViewportCoords(wh ...float64) error {
	size, err := vecFromCoords(wh)
	if err != nil {
		return err
	}
	c.SetViewport(size)
	return nil
}

// Translate converts a world position into a screen-space offset.
func (c *Camera2D) Translate(world math.Vec2) math.Vec2 {
	return gamemath.Scale(gamemath.Sub(world, c.position), c.Zoom)
}

// TranslateRect converts a world-space rect into screen space. The size is
// scaled by zoom along with the position.
func (c *Camera2D) TranslateRect(r gamemath.Rect) gamemath.Rect {
	return gamemath.RectAt(c.Translate(r.TopLeft()), gamemath.Scale(r.Size(), c.Zoom))
}

// Follow moves the camera one step toward centering target in the viewport.
//
// lerpSpeed is the fraction of the remaining distance covered this call:
// 0 does not move, 1 snaps. The result is rounded to whole pixels.
//
// freedomBox, when non-nil, is a camera-relative dead zone. While
// target - position lies inside it the camera stays put. Once the target
// leaves it, the centering goal is pulled back by the target's signed
// screen distance to the nearest box edge on each axis rather than fully
// centering it.
func (c *Camera2D) Follow(target math.Vec2, lerpSpeed float64, freedomBox *gamemath.Rect) {
	goal := gamemath.Sub(target, c.viewport.Center())

	if freedomBox != nil {
		if freedomBox.ContainsPoint(gamemath.Sub(target, c.position)) {
			return
		}
		screen := c.Translate(target)
		correction := gamemath.Vec(
			gamemath.NearestEdgeDistance(screen.X, freedomBox.Left(), freedomBox.Right()),
			gamemath.NearestEdgeDistance(screen.Y, freedomBox.Top(), freedomBox.Bottom()),
		)
		goal = gamemath.Sub(goal, correction)
	}

	c.position = gamemath.Round(gamemath.Lerp(c.position, goal, lerpSpeed))
}

// Snap centers target in the viewport immediately.
func (c *Camera2D) Snap(target math.Vec2) {
	c.Follow(target, 1, nil)
}
