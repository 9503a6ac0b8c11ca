package factory

import (
	"github.com/solarlune/resolv"
	"github.com/tidegap/floatplane/archetypes"
	"github.com/tidegap/floatplane/components"
	cfg "github.com/tidegap/floatplane/config"
	"github.com/tidegap/floatplane/shared/flightsim"
	"github.com/tidegap/floatplane/shared/gamemath"
	"github.com/tidegap/floatplane/shared/leveldata"
	"github.com/tidegap/floatplane/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlaneFootprint is the side of the plane's collision square in meters.
const PlaneFootprint = 4.0

func CreatePlane(ecs *ecs.ECS, lvl *leveldata.Level) *donburi.Entry {
	plane := archetypes.Plane.Spawn(ecs)

	spawn := lvl.Spawn
	half := lvl.WorldSize / 2

	obj := resolv.NewObject(
		spawn.X+half-PlaneFootprint/2,
		spawn.Z+half-PlaneFootprint/2,
		PlaneFootprint, PlaneFootprint,
		tags.ResolvPlane,
	)
	obj.SetShape(resolv.NewRectangle(0, 0, PlaneFootprint, PlaneFootprint))
	obj.Data = plane // Link for O(1) lookup
	components.Object.SetValue(plane, components.ObjectData{Object: obj})

	pose := flightsim.Pose{
		Position: gamemath.Vec3{X: spawn.X, Y: spawn.Altitude, Z: spawn.Z},
		Yaw:      spawn.Heading,
	}
	forward := pose.Forward()

	components.Pose.SetValue(plane, components.PoseData{Pose: pose})
	components.Plane.SetValue(plane, components.PlaneData{
		PlaneState: flightsim.PlaneState{
			Speed:    spawn.Speed,
			Throttle: gamemath.Clamp(spawn.Speed/cfg.Flight.MaxSpeed, 0, 1),
			Momentum: forward.Scale(spawn.Speed),
		},
	})
	components.Body.SetValue(plane, components.BodyData{
		Body: flightsim.Body{Velocity: forward.Scale(spawn.Speed)},
	})
	components.Control.SetValue(plane, components.ControlData{})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return plane
}
