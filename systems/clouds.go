package systems

import (
	"github.com/tidegap/floatplane/components"
	cfg "github.com/tidegap/floatplane/config"
	"github.com/tidegap/floatplane/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClouds drifts every cloud along the wind and wraps it back to the
// far edge of the water once it leaves the play area.
func UpdateClouds(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	half := components.Level.Get(levelEntry).Level.WorldSize / 2

	wind := gamemath.Vec3{X: cfg.Clouds.WindX, Z: cfg.Clouds.WindZ}.Normalize()
	dt := tickDelta()

	components.Cloud.Each(ecs.World, func(e *donburi.Entry) {
		cloud := components.Cloud.Get(e)
		cloud.Position = cloud.Position.Add(wind.Scale(cloud.Speed * dt))

		// The wind blows toward +X/+Z, so clouds re-enter from the west edge.
		if cloud.Position.X > half {
			cloud.Position.X = -half
		}
		if cloud.Position.Z > half {
			cloud.Position.Z = -half
		}
	})
}
