package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ScreenShakeData tracks active screen shake effect on the camera
type ScreenShakeData struct {
	Intensity float64   // max offset in pixels
	Duration  int       // total frames
	Elapsed   int       // frames elapsed (for oscillation)
	Offset    math.Vec2 // current screen-space offset applied when drawing
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// ZoomData drives a tweened zoom change on the camera
type ZoomData struct {
	*gween.Tween
}

var Zoom = donburi.NewComponentType[ZoomData]()
