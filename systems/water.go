package systems

import (
	"github.com/tidegap/floatplane/components"
	cfg "github.com/tidegap/floatplane/config"
	"github.com/tidegap/floatplane/shared/flightsim"
	"github.com/tidegap/floatplane/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateWater resolves water contact for every plane, spawns the matching
// surface effects and integrates velocities into the pose. Runs after
// UpdateFlight so contact forces act on this tick's velocity.
func UpdateWater(ecs *ecs.ECS) {
	dt := tickDelta()

	components.Plane.Each(ecs.World, func(e *donburi.Entry) {
		plane := components.Plane.Get(e)
		pose := components.Pose.Get(e)
		body := components.Body.Get(e)

		contact := pose.Position.Y <= cfg.Water.ContactHeight
		ev := flightsim.ResolveWater(&plane.PlaneState, &pose.Pose, &body.Body, contact, dt, &cfg.Water, cfg.Flight.MaxSpeed)

		if ev.Entered {
			radius := cfg.Ripple.EntryRadius
			if ev.HardImpact {
				radius *= 1.5
				TriggerScreenShake(ecs, cfg.ScreenShake.ImpactIntensity, cfg.ScreenShake.ImpactDuration)
			}
			factory.CreateRipple(ecs, pose.Position, radius, cfg.Ripple.EntryDuration)
		}
		if ev.Takeoff {
			factory.CreateRipple(ecs, pose.Position, cfg.Ripple.WakeRadius, cfg.Ripple.WakeDuration)
		}

		flightsim.Integrate(&pose.Pose, &body.Body, dt, &cfg.Flight)

		updateWake(ecs, plane, pose)
	})
}

// updateWake leaves a trail of small rings behind a plane sailing the surface.
func updateWake(ecs *ecs.ECS, plane *components.PlaneData, pose *components.PoseData) {
	if !plane.OnWater || plane.Speed < 1.0 {
		plane.WakeTimer = 0
		return
	}

	plane.WakeTimer--
	if plane.WakeTimer > 0 {
		return
	}
	plane.WakeTimer = cfg.Ripple.WakeInterval
	factory.CreateRipple(ecs, pose.Position, cfg.Ripple.WakeRadius, cfg.Ripple.WakeDuration)
}
