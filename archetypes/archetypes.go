package archetypes

import (
	"github.com/tidegap/floatplane/components"
	cfg "github.com/tidegap/floatplane/config"
	"github.com/tidegap/floatplane/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Plane = newArchetype(
		tags.Plane,
		components.Plane,
		components.Pose,
		components.Body,
		components.Control,
		components.Object,
	)
	Island = newArchetype(
		tags.Island,
		components.Island,
		components.Object,
	)
	Cloud = newArchetype(
		tags.Cloud,
		components.Cloud,
	)
	Ripple = newArchetype(
		tags.Ripple,
		components.Ripple,
		components.Tween,
	)
	Camera = newArchetype(
		tags.Camera,
		components.Camera,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		tags.Level,
		components.Level,
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
