// Package flightsim implements the seaplane's control mapping, flight
// physics, and water interaction. It is engine-free: every function takes
// the state it mutates explicitly, rates are per second, and one simulation
// step always runs mapper, flight update, water resolution, integration in
// that order (see Simulator).
package flightsim

import (
	"math"

	"github.com/tidegap/floatplane/shared/gamemath"
)

// PlaneState is the mutable flight record for one plane. It is created at
// world setup and mutated in place by UpdateFlight and ResolveWater; nothing
// else writes to it.
type PlaneState struct {
	Speed        float64       // scalar forward speed, m/s, in [0, MaxSpeed]
	Throttle     float64       // normalized [0,1] target-speed fraction
	Momentum     gamemath.Vec3 // smoothed velocity used for motion blending
	TurnMomentum gamemath.Vec3 // smoothed angular intent (pitch, turn, 0)
	BankAngle    float64       // roll radians, |bank| <= MaxBankAngle

	// OnWater is true only while the surface-contact signal is active.
	// It clears the moment the signal goes inactive; there is no
	// hysteresis and no stale state.
	OnWater bool

	// ImpactBounce is the decaying bounce magnitude left over from a hard
	// landing. The kick itself is applied once on entry; this field only
	// feeds splash effects and hull bob afterwards.
	ImpactBounce float64

	// TookOff latches the takeoff impulse so it fires at most once per
	// water episode. Reset when a new episode begins.
	TookOff bool
}

// Pose is the plane's transform as the integrator maintains it.
// Yaw 0 faces +Z, positive pitch is nose up, Y is altitude in meters.
type Pose struct {
	Position gamemath.Vec3
	Pitch    float64
	Yaw      float64
	Roll     float64
}

// Forward returns the unit vector the nose points along.
func (p *Pose) Forward() gamemath.Vec3 {
	cp := math.Cos(p.Pitch)
	return gamemath.Vec3{
		X: math.Sin(p.Yaw) * cp,
		Y: math.Sin(p.Pitch),
		Z: math.Cos(p.Yaw) * cp,
	}
}

// Back returns the unit vector opposite the nose.
func (p *Pose) Back() gamemath.Vec3 {
	return p.Forward().Scale(-1)
}

// HorizontalForward returns the forward direction flattened onto the water
// plane. Valid for any pitch the integrator allows.
func (p *Pose) HorizontalForward() gamemath.Vec3 {
	return gamemath.Vec3{X: math.Sin(p.Yaw), Z: math.Cos(p.Yaw)}
}

// Body is the rigid-body state the integrator advances.
type Body struct {
	Velocity        gamemath.Vec3 // m/s
	AngularVelocity gamemath.Vec3 // rad/s: (pitch, yaw, roll) rates
}

// ControlSignals are the raw per-step inputs, each axis in [-1,1].
// Keyboard keys contribute full deflection, gamepad sticks analog values.
type ControlSignals struct {
	Pitch    float64 // positive = nose up
	Roll     float64 // positive = bank right
	Yaw      float64 // positive = yaw right
	Throttle float64 // positive = open throttle
}

// ControlInput is the mapper's output: desired rates for one step.
// Rates are already scaled by speed sensitivity and the water multiplier.
type ControlInput struct {
	PitchRate     float64 // rad/s of angular intent
	RollRate      float64 // rad/s applied directly to bank angle
	YawRate       float64 // rad/s of angular intent
	ThrottleDelta float64 // throttle units per second
	LevelRate     float64 // per-second auto-level rate, 0 when disengaged
}

// FlightOutput is what the flight updater hands to the integrator.
type FlightOutput struct {
	Velocity        gamemath.Vec3
	AngularVelocity gamemath.Vec3
}

// WaterEvents reports what the resolver decided this step.
type WaterEvents struct {
	Entered     bool    // Airborne -> OnWater transition happened
	Takeoff     bool    // the one-shot takeoff impulse was applied
	HardImpact  bool    // entry exceeded the impact threshold
	ImpactSpeed float64 // vertical speed at entry when HardImpact
}
