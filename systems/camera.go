package systems

import (
	"log"
	"math"

	"github.com/Matiiss/plasma-engine/components"
	"github.com/Matiiss/plasma-engine/config"
	"github.com/Matiiss/plasma-engine/shared/gamemath"
	"github.com/Matiiss/plasma-engine/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera advances zoom and shake effects, then moves the camera
// toward the center of the Target-tagged sprite.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return // no camera yet
	}
	camera := components.Camera.Get(cameraEntry)

	updateZoom(cameraEntry, camera)
	updateScreenShake(cameraEntry)

	targetEntry, ok := tags.Target.First(e.World)
	if !ok {
		return // nothing to follow
	}
	if !targetEntry.HasComponent(components.Sprite) {
		log.Printf("Warning: camera target %v has no sprite, not following", targetEntry.Entity())
		return
	}
	sprite := components.Sprite.Get(targetEntry)

	if camera.CenterFreedomBox && camera.FreedomBox != nil {
		box := camera.FreedomBox.WithCenter(camera.Viewport().Center())
		camera.FreedomBox = &box
	}
	camera.Follow(sprite.Rect.Center(), camera.FollowSpeed, camera.FreedomBox)
}

// updateZoom steps an active zoom tween by one frame
func updateZoom(cameraEntry *donburi.Entry, camera *components.CameraData) {
	if !cameraEntry.HasComponent(components.Zoom) {
		return
	}

	zoom := components.Zoom.Get(cameraEntry)
	current, finished := zoom.Update(1)
	camera.Zoom = float64(current)

	if finished {
		cameraEntry.RemoveComponent(components.Zoom)
	}
}

// updateScreenShake recomputes the shake offset and decrements duration
func updateScreenShake(cameraEntry *donburi.Entry) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	// Calculate decaying intensity
	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	currentIntensity := shake.Intensity * progress

	shake.Offset = gamemath.Vec(
		math.Sin(float64(shake.Elapsed)*config.ScreenShake.FrequencyX)*currentIntensity,
		math.Cos(float64(shake.Elapsed)*config.ScreenShake.FrequencyY)*currentIntensity,
	)

	// Remove component when shake is complete
	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(ecs *ecs.ECS, intensity float64, duration int) {
	if duration <= 0 {
		return
	}
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}

	// Add or update screen shake component
	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		// Only override if new shake is stronger
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
	} else {
		cameraEntry.AddComponent(components.ScreenShake)
		components.ScreenShake.Set(cameraEntry, &components.ScreenShakeData{
			Intensity: intensity,
			Duration:  duration,
		})
	}
}

// TriggerZoom eases the camera zoom to `to` over config.Camera.ZoomTweenFrames
// updates. A new zoom replaces one already in progress.
func TriggerZoom(ecs *ecs.ECS, to float64) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	frames := config.Camera.ZoomTweenFrames
	if frames <= 0 {
		camera.Zoom = to
		if cameraEntry.HasComponent(components.Zoom) {
			cameraEntry.RemoveComponent(components.Zoom)
		}
		return
	}

	tween := gween.New(float32(camera.Zoom), float32(to), frames, ease.OutQuad)
	if !cameraEntry.HasComponent(components.Zoom) {
		cameraEntry.AddComponent(components.Zoom)
	}
	components.Zoom.Set(cameraEntry, &components.ZoomData{Tween: tween})
}
