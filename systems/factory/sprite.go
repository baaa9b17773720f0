package factory

import (
	"image"

	"github.com/Matiiss/plasma-engine/archetypes"
	"github.com/Matiiss/plasma-engine/components"
	"github.com/Matiiss/plasma-engine/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSprite places img in the world at rect on layer z.
func CreateSprite(ecs *ecs.ECS, img image.Image, rect gamemath.Rect, z int) *donburi.Entry {
	sprite := archetypes.Sprite.Spawn(ecs)
	components.Sprite.SetValue(sprite, components.SpriteData{
		Image:  img,
		Rect:   rect,
		ZIndex: z,
	})
	return sprite
}

// CreateTarget is CreateSprite for the sprite the camera should follow.
func CreateTarget(ecs *ecs.ECS, img image.Image, rect gamemath.Rect, z int) *donburi.Entry {
	target := archetypes.Target.Spawn(ecs)
	components.Sprite.SetValue(target, components.SpriteData{
		Image:  img,
		Rect:   rect,
		ZIndex: z,
	})
	return target
}
