package factory

import (
	"github.com/tidegap/floatplane/archetypes"
	"github.com/tidegap/floatplane/components"
	cfg "github.com/tidegap/floatplane/config"
	"github.com/tidegap/floatplane/shared/flightsim"
	"github.com/tidegap/floatplane/shared/gamemath"
	"github.com/tidegap/floatplane/shared/leveldata"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera places the chase camera at its resting point behind the
// spawn pose so the first frames do not sweep across the world.
func CreateCamera(ecs *ecs.ECS, lvl *leveldata.Level) {
	camera := archetypes.Camera.Spawn(ecs)

	spawn := lvl.Spawn
	pose := flightsim.Pose{
		Position: gamemath.Vec3{X: spawn.X, Y: spawn.Altitude, Z: spawn.Z},
		Yaw:      spawn.Heading,
	}
	position := pose.Position.
		Add(pose.Back().Scale(cfg.Camera.FollowDistance)).
		Add(gamemath.Vec3{Y: cfg.Camera.Height})

	components.Camera.Set(camera, &components.CameraData{
		Position:   position,
		LookTarget: pose.Position.Add(pose.Forward().Scale(cfg.Camera.LookAhead)),
	})
}
