package archetypes

import (
	"github.com/automoto/wideworld/components"
	cfg "github.com/automoto/wideworld/config"
	"github.com/automoto/wideworld/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Camera = newArchetype(
		tags.Camera,
		components.Camera,
		components.Fling,
	)
	Level = newArchetype(
		tags.Level,
		components.Level,
		components.Render,
	)
	Gesture = newArchetype(
		tags.Gesture,
		components.Gesture,
		components.Input,
	)
	Selection = newArchetype(
		tags.Selection,
		components.Selection,
	)
	HUD = newArchetype(
		tags.HUD,
		components.HUD,
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
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
