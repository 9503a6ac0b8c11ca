package factory

import (
	"github.com/tidegap/floatplane/archetypes"
	"github.com/tidegap/floatplane/assets"
	"github.com/tidegap/floatplane/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevel(ecs *ecs.ECS) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	levelData := &components.LevelData{
		Level: assets.MustLoadWorld(assets.WorldMap),
	}
	components.Level.Set(level, levelData)

	return level
}
