// Package simconfig defines the flight and water tuning shared between the
// game systems and the headless simulation core. It must have zero
// dependencies on ebiten or any graphics library so the core stays testable
// without a display.
package simconfig

import "math"

// FlightTuning holds every rate the control mapper and flight updater use.
// Rates are per second; per-step factors are derived from dt at use sites.
type FlightTuning struct {
	MaxSpeed     float64 // m/s, hard ceiling for scalar speed
	Acceleration float64 // m/s^2, speed approach toward throttle target
	ThrottleRate float64 // throttle axis sweep per second

	// Control sensitivity. Authority is full at or below the reference
	// speed and attenuates toward the floor as speed rises.
	SensitivityRefSpeed float64
	SensitivityFloor    float64
	WaterControlFactor  float64 // multiplier while on water

	PitchSensitivity    float64
	BaseRollSensitivity float64
	YawSensitivity      float64
	RollResistance      float64 // exponent scale for bank resistance
	CounterRollBoost    float64 // gain when rolling against the bank

	TurnSpeed     float64 // scales total turn into yaw intent
	BankTurnRatio float64 // how strongly bank feeds turn rate
	MaxBankAngle  float64 // radians

	AutoLevelRate      float64 // per second, airborne
	WaterAutoLevelRate float64 // per second, while on water
	AutoLevelThreshold float64 // radians below which leveling disengages

	MomentumRate      float64 // velocity blend rate toward forward*speed
	TurnSmoothingRate float64 // angular intent blend rate
	AttitudeRate      float64 // angular velocity scale handed to the solver
	MaxPitch          float64 // radians, Euler integrator guard

	Gravity float64 // m/s^2
}

// WaterTuning holds the surface-interaction rates and thresholds.
type WaterTuning struct {
	Damping         float64 // one-shot speed/momentum factor on entry
	RotationDamping float64 // one-shot angular factor on entry

	FrictionRate  float64 // per second, momentum decay while on water
	StabilizeRate float64 // per second, extra lateral decay
	StopDecayRate float64 // per second, throttle-gated speed decay
	StopThreshold float64 // m/s, below this the decay doubles
	SailSpeed     float64 // m/s, taxi floor while throttle is held
	SailThrottle  float64 // minimum throttle for sailing

	LevelPoseRate float64 // per second, pitch/roll attitude leveling

	TakeoffSpeedThreshold float64 // fraction of MaxSpeed
	TakeoffForce          float64 // impulse scale, m/s at full speed

	ImpactThreshold float64 // m/s vertical speed for a hard impact
	BounceFactor    float64 // bounce kick per m/s of impact speed
	ImpactSlowdown  float64 // extra one-shot factor on hard impact
	BounceDecayRate float64 // per second, bounce magnitude decay

	FloatHeight   float64 // m, hull rest height on the surface
	ContactHeight float64 // m, below this the contact sensor reports overlap
}

// WorldTuning describes the play area. The water sheet size and spawn pose
// come from the level file; only the derived rules live here.
type WorldTuning struct {
	BoundsFraction float64 // multiple of the water size at which flights reset
	CloudCount     int
	CloudMinY      float64
	CloudMaxY      float64
}

// DefaultFlight returns the flight tuning. Blend rates correspond to the
// original per-frame factors at 60 fps (rate = -60*ln(factor)).
func DefaultFlight() FlightTuning {
	return FlightTuning{
		MaxSpeed:     80,
		Acceleration: 10,
		ThrottleRate: 0.5,

		SensitivityRefSpeed: 25,
		SensitivityFloor:    0.3,
		WaterControlFactor:  0.5,

		PitchSensitivity:    0.8,
		BaseRollSensitivity: 0.2,
		YawSensitivity:      0.3,
		RollResistance:      16,
		CounterRollBoost:    16,

		TurnSpeed:     0.5,
		BankTurnRatio: 0.5,
		MaxBankAngle:  math.Pi / 9,

		AutoLevelRate:      0.9,
		WaterAutoLevelRate: 15.3,
		AutoLevelThreshold: 0.01,

		MomentumRate:      1.2,
		TurnSmoothingRate: 0.6,
		AttitudeRate:      5.0,
		MaxPitch:          1.2,

		Gravity: 9.81,
	}
}

// DefaultWater returns the water tuning.
func DefaultWater() WaterTuning {
	return WaterTuning{
		Damping:         0.8,
		RotationDamping: 0.6,

		FrictionRate:  13.4,
		StabilizeRate: 6.3,
		StopDecayRate: 3.1,
		StopThreshold: 5.0,
		SailSpeed:     5.0,
		SailThrottle:  0.05,

		LevelPoseRate: 10.5,

		TakeoffSpeedThreshold: 0.7,
		TakeoffForce:          2.0,

		ImpactThreshold: 4.0,
		BounceFactor:    0.4,
		ImpactSlowdown:  0.6,
		BounceDecayRate: 13.4,

		FloatHeight:   0.1,
		ContactHeight: 0.6,
	}
}

// DefaultWorld returns the world tuning.
func DefaultWorld() WorldTuning {
	return WorldTuning{
		BoundsFraction: 0.8,
		CloudCount:     160,
		CloudMinY:      30,
		CloudMaxY:      80,
	}
}
