package components

import (
	"github.com/Matiiss/plasma-engine/camera"
	"github.com/Matiiss/plasma-engine/shared/gamemath"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	*camera.Camera2D
	FollowSpeed float64        // Lerp fraction per update (0.0-1.0)
	FreedomBox  *gamemath.Rect // Camera-relative dead zone, nil to always follow

	// CenterFreedomBox re-centers FreedomBox in the viewport every update,
	// so it tracks viewport size changes.
	CenterFreedomBox bool
}

var Camera = donburi.NewComponentType[CameraData]()
