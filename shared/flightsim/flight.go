package flightsim

import (
	"github.com/tidegap/floatplane/shared/gamemath"
	"github.com/tidegap/floatplane/shared/simconfig"
)

// UpdateFlight advances throttle, speed, bank angle, and the two momentum
// vectors for one step, and derives the velocity and angular velocity the
// integrator consumes. Deterministic for fixed inputs and dt; every field
// is clamped, so there are no failure outcomes.
func UpdateFlight(st *PlaneState, pose *Pose, in ControlInput, dt float64, tun *simconfig.FlightTuning) FlightOutput {
	st.Throttle = gamemath.Clamp(st.Throttle+in.ThrottleDelta*dt, 0, 1)
	st.Speed = gamemath.Clamp(
		gamemath.MoveToward(st.Speed, st.Throttle*tun.MaxSpeed, tun.Acceleration*dt),
		0, tun.MaxSpeed)

	st.BankAngle = gamemath.Clamp(st.BankAngle+in.RollRate*dt,
		-tun.MaxBankAngle, tun.MaxBankAngle)
	if in.LevelRate > 0 {
		// Multiplicative decay converges on level without ever
		// crossing zero, at any frame rate.
		st.BankAngle *= gamemath.Decay(in.LevelRate, dt)
	}

	turn := in.YawRate + st.BankAngle*tun.BankTurnRatio
	targetTurn := gamemath.Vec3{X: in.PitchRate, Y: turn * tun.TurnSpeed}
	st.TurnMomentum = st.TurnMomentum.Lerp(targetTurn,
		gamemath.DampFactor(tun.TurnSmoothingRate, dt))

	targetMomentum := pose.Forward().Scale(st.Speed)
	st.Momentum = st.Momentum.Lerp(targetMomentum,
		gamemath.DampFactor(tun.MomentumRate, dt))

	return FlightOutput{
		Velocity: st.Momentum,
		AngularVelocity: gamemath.Vec3{
			X: st.TurnMomentum.X * tun.AttitudeRate,
			Y: st.TurnMomentum.Y * tun.AttitudeRate,
			// Roll tracks the bank angle instead of integrating a
			// raw rate, so the visual roll cannot drift past it.
			Z: (st.BankAngle - pose.Roll) * tun.AttitudeRate,
		},
	}
}

// Integrate stands in for the external rigid-body solver: it applies
// gravity and advances the pose from the body's velocities. Velocity is
// rewritten from momentum every step by UpdateFlight, so gravity shows up
// as a slight sag rather than ballistic fall.
func Integrate(pose *Pose, body *Body, dt float64, tun *simconfig.FlightTuning) {
	body.Velocity.Y -= tun.Gravity * dt
	pose.Position = pose.Position.Add(body.Velocity.Scale(dt))

	pose.Pitch = gamemath.Clamp(pose.Pitch+body.AngularVelocity.X*dt,
		-tun.MaxPitch, tun.MaxPitch)
	pose.Yaw = gamemath.WrapAngle(pose.Yaw + body.AngularVelocity.Y*dt)
	pose.Roll = gamemath.Clamp(pose.Roll+body.AngularVelocity.Z*dt,
		-tun.MaxBankAngle*2, tun.MaxBankAngle*2)
}
