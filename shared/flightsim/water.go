package flightsim

import (
	"math"

	"github.com/tidegap/floatplane/shared/gamemath"
	"github.com/tidegap/floatplane/shared/simconfig"
)

// ResolveWater applies the surface-contact state machine for one step.
// contact is the sensor signal for this step; an absent signal means
// airborne. maxSpeed resolves the takeoff threshold fraction.
//
// All continuous terms are exp-decayed from per-second rates, so resolving
// twice with dt=0 and unchanged inputs leaves the state untouched: entry
// damping runs only on the Airborne->OnWater edge and the takeoff impulse
// is latched per water episode.
func ResolveWater(st *PlaneState, pose *Pose, body *Body, contact bool, dt float64, tun *simconfig.WaterTuning, maxSpeed float64) WaterEvents {
	var ev WaterEvents

	if !contact {
		st.OnWater = false
		return ev
	}

	entered := !st.OnWater
	if entered {
		st.OnWater = true
		st.TookOff = false
		ev.Entered = true

		impactSpeed := math.Abs(body.Velocity.Y)

		// One-shot entry damping: touching down always costs speed
		// and angular motion.
		st.Speed *= tun.Damping
		st.Momentum = st.Momentum.Scale(tun.Damping)
		body.Velocity = body.Velocity.Scale(tun.Damping)
		body.AngularVelocity = body.AngularVelocity.Scale(tun.RotationDamping)
		st.TurnMomentum = st.TurnMomentum.Scale(tun.RotationDamping)

		if impactSpeed > tun.ImpactThreshold {
			ev.HardImpact = true
			ev.ImpactSpeed = impactSpeed
			st.ImpactBounce = impactSpeed * tun.BounceFactor

			st.Speed *= tun.ImpactSlowdown
			st.Momentum = st.Momentum.Scale(tun.ImpactSlowdown)
			body.Velocity = body.Velocity.Scale(tun.ImpactSlowdown)

			// The bounce kick is applied once, reflected upward.
			st.Momentum.Y += st.ImpactBounce
			body.Velocity.Y += st.ImpactBounce
		}
	}

	// Keep the hull at the waterline and never sinking.
	if pose.Position.Y < tun.FloatHeight {
		pose.Position.Y = tun.FloatHeight
		if body.Velocity.Y < 0 {
			body.Velocity.Y = 0
		}
		if st.Momentum.Y < 0 {
			st.Momentum.Y = 0
		}
	}

	if st.ImpactBounce > 0 {
		st.ImpactBounce *= gamemath.Decay(tun.BounceDecayRate, dt)
		if st.ImpactBounce < 0.1 {
			st.ImpactBounce = 0
		}
	}

	// Continuous friction on this step's integration velocity. The flight
	// updater rebuilds the velocity from momentum next step, so this reads
	// as a steady drag on the water run, not a compounding decay.
	friction := gamemath.Decay(tun.FrictionRate, dt)
	stabilize := gamemath.Decay(tun.StabilizeRate, dt)
	body.Velocity = body.Velocity.Scale(friction)
	body.Velocity.X *= stabilize
	body.Velocity.Z *= stabilize

	// Pull the attitude level while afloat.
	if math.Abs(pose.Pitch) > 0.01 || math.Abs(pose.Roll) > 0.01 {
		level := gamemath.Decay(tun.LevelPoseRate, dt)
		pose.Pitch *= level
		pose.Roll *= level
		body.AngularVelocity = gamemath.Vec3{}
	}

	// Speed decays toward zero only when the throttle is low; an open
	// throttle fights through the drag so a takeoff run can build. The
	// entry step is skipped, its cost was the one-shot damping above.
	if !entered {
		gate := 1 - st.Throttle
		st.Speed *= gamemath.Decay(tun.StopDecayRate*gate, dt)
		if st.Speed < tun.StopThreshold {
			st.Speed *= gamemath.Decay(tun.StopDecayRate*gate, dt)
			if st.Speed < 1 && st.Throttle > tun.SailThrottle {
				// Sailing: taxi along at a gentle floor.
				st.Speed = tun.SailSpeed
				st.Momentum = pose.HorizontalForward().Scale(tun.SailSpeed)
				body.Velocity = st.Momentum
			}
		}
	}

	if !st.TookOff && st.Speed >= tun.TakeoffSpeedThreshold*maxSpeed {
		kick := tun.TakeoffForce * st.Speed / maxSpeed
		st.Momentum.Y += kick
		body.Velocity.Y += kick
		st.TookOff = true
		ev.Takeoff = true
	}

	return ev
}
