package systems

import (
	"github.com/Matiiss/plasma-engine/components"
	"github.com/Matiiss/plasma-engine/config"
	"github.com/Matiiss/plasma-engine/renderer"
	"github.com/Matiiss/plasma-engine/renderer/ebitentarget"
	"github.com/Matiiss/plasma-engine/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

var (
	screenTarget *ebitentarget.Target
)

// DrawSprites draws every sprite onto the ebiten screen through the camera.
func DrawSprites(e *ecs.ECS, screen *ebiten.Image) {
	if screenTarget == nil {
		screenTarget = ebitentarget.New(screen)
	} else {
		screenTarget.Reset(screen)
	}
	DrawSpritesTo(e, screenTarget)
}

// drawnRect is the screen area a sprite's blit covers. Targets draw images
// unscaled, so the size comes from the image rather than the zoomed rect.
func drawnRect(camera *components.CameraData, sprite *components.SpriteData) gamemath.Rect {
	b := sprite.Image.Bounds()
	size := gamemath.Vec(float64(b.Dx()), float64(b.Dy()))
	return gamemath.RectAt(camera.Translate(sprite.Rect.TopLeft()), size)
}

// DrawSpritesTo rebuilds the layer stack from every sprite, culls it to the
// camera viewport and draws it. Sprites keep their world z-index; within a
// layer they are y-sorted when config.Renderer.YSort is set.
func DrawSpritesTo(e *ecs.ECS, target renderer.Target) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)

	var shake math.Vec2
	if cameraEntry.HasComponent(components.ScreenShake) {
		shake = components.ScreenShake.Get(cameraEntry).Offset
	}

	stack := renderer.New(target, renderer.WithViewport(camera.Viewport()))
	components.Sprite.Each(e.World, func(entry *donburi.Entry) {
		sprite := components.Sprite.Get(entry)
		if sprite.Image == nil {
			return
		}
		stack.AppendAt(sprite.Image, drawnRect(camera, sprite).Moved(shake), sprite.ZIndex)
	})

	stack.FilterViewport()
	if config.Renderer.YSort {
		stack.SortStack(renderer.ByBottom)
	}
	stack.Render()
}
