package factory

import (
	"math/rand"

	"github.com/tidegap/floatplane/archetypes"
	"github.com/tidegap/floatplane/components"
	cfg "github.com/tidegap/floatplane/config"
	"github.com/tidegap/floatplane/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

var rng = rand.New(rand.NewSource(7))

// CreateClouds scatters the drifting cloud field across the play area.
func CreateClouds(ecs *ecs.ECS, worldSize float64) {
	half := worldSize / 2
	for i := 0; i < cfg.World.CloudCount; i++ {
		cloud := archetypes.Cloud.Spawn(ecs)
		components.Cloud.SetValue(cloud, components.CloudData{
			Position: gamemath.Vec3{
				X: rng.Float64()*worldSize - half,
				Y: cfg.World.CloudMinY + rng.Float64()*(cfg.World.CloudMaxY-cfg.World.CloudMinY),
				Z: rng.Float64()*worldSize - half,
			},
			Size:  cfg.Clouds.MinSize + rng.Float64()*(cfg.Clouds.MaxSize-cfg.Clouds.MinSize),
			Speed: cfg.Clouds.MinSpeed + rng.Float64()*(cfg.Clouds.MaxSpeed-cfg.Clouds.MinSpeed),
		})
	}
}
