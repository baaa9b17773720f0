package factory

import (
	"github.com/Matiiss/plasma-engine/archetypes"
	"github.com/Matiiss/plasma-engine/camera"
	"github.com/Matiiss/plasma-engine/components"
	"github.com/Matiiss/plasma-engine/config"
	"github.com/Matiiss/plasma-engine/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns a camera sized to the configured screen. The freedom
// box is kept centered in the viewport unless configured with a zero size.
func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	cam := camera.New(
		gamemath.Vec(0, 0),
		gamemath.Vec(float64(config.C.Width), float64(config.C.Height)),
	)

	data := &components.CameraData{
		Camera2D:    cam,
		FollowSpeed: config.Camera.FollowSpeed,
	}
	if config.Camera.FreedomBoxWidth > 0 && config.Camera.FreedomBoxHeight > 0 {
		box := gamemath.NewRect(0, 0, config.Camera.FreedomBoxWidth, config.Camera.FreedomBoxHeight).
			WithCenter(cam.Viewport().Center())
		data.FreedomBox = &box
		data.CenterFreedomBox = true
	}

	entry := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(entry, data)
	return entry
}
