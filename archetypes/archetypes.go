package archetypes

import (
	"github.com/automoto/voidrunner/components"
	cfg "github.com/automoto/voidrunner/config"
	"github.com/automoto/voidrunner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Ship = newArchetype(
		tags.Ship,
		components.Ship,
	)
	Starfield = newArchetype(
		tags.Starfield,
		components.Starfield,
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
