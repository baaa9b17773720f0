package archetypes

import (
	"github.com/Matiiss/plasma-engine/components"
	"github.com/Matiiss/plasma-engine/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Default is the single ECS layer everything is created on and drawn from.
const Default ecs.LayerID = iota

var (
	Camera = newArchetype(
		components.Camera,
	)
	Sprite = newArchetype(
		components.Sprite,
	)
	Target = newArchetype(
		tags.Target,
		components.Sprite,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		Default,
		append(a.components, cs...)...,
	))
	return e
}
