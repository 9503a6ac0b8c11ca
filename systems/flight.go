package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tidegap/floatplane/components"
	cfg "github.com/tidegap/floatplane/config"
	"github.com/tidegap/floatplane/shared/flightsim"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// tickDelta is the fixed simulation step in seconds. Ebitengine calls Update
// at a fixed TPS, so the step is constant for a given run.
func tickDelta() float64 {
	return 1.0 / float64(ebiten.TPS())
}

// UpdateFlight advances the aerodynamic state of every plane by one tick.
// Water contact response and position integration happen in UpdateWater.
func UpdateFlight(ecs *ecs.ECS) {
	dt := tickDelta()

	components.Plane.Each(ecs.World, func(e *donburi.Entry) {
		plane := components.Plane.Get(e)
		pose := components.Pose.Get(e)
		control := components.Control.Get(e)
		body := components.Body.Get(e)

		out := flightsim.UpdateFlight(&plane.PlaneState, &pose.Pose, control.Input, dt, &cfg.Flight)
		body.Velocity = out.Velocity
		body.AngularVelocity = out.AngularVelocity
	})
}
