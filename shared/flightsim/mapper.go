package flightsim

import (
	"math"

	"github.com/tidegap/floatplane/shared/gamemath"
	"github.com/tidegap/floatplane/shared/simconfig"
)

// MapControls converts raw control signals into desired rates. Pure: it
// reads PlaneState but never mutates it.
//
// Sensitivity scales inversely with speed down to a floor, so the plane is
// most responsive at or below the reference speed, and is halved while on
// water. Roll fights an exponential resistance as the bank grows, while
// rolling against the current bank is boosted, which makes extreme banking
// hard to reach and easy to leave.
func MapControls(sig ControlSignals, st *PlaneState, tun *simconfig.FlightTuning) ControlInput {
	speedFactor := gamemath.Clamp(
		tun.SensitivityRefSpeed/math.Max(st.Speed, tun.SensitivityRefSpeed),
		tun.SensitivityFloor, 1)
	mult := speedFactor
	if st.OnWater {
		mult *= tun.WaterControlFactor
	}

	rollSens := tun.BaseRollSensitivity
	if sig.Roll != 0 {
		if st.BankAngle != 0 && sig.Roll*st.BankAngle < 0 {
			rollSens *= tun.CounterRollBoost
		} else {
			resistance := math.Exp(math.Abs(st.BankAngle) * tun.RollResistance)
			r2 := resistance * resistance
			rollSens /= r2 * r2
		}
	}

	in := ControlInput{
		PitchRate:     sig.Pitch * tun.PitchSensitivity * mult,
		RollRate:      sig.Roll * rollSens * mult,
		YawRate:       sig.Yaw * tun.YawSensitivity * mult,
		ThrottleDelta: sig.Throttle * tun.ThrottleRate,
	}

	if (sig.Roll == 0 || st.OnWater) && math.Abs(st.BankAngle) > tun.AutoLevelThreshold {
		if st.OnWater {
			in.LevelRate = tun.WaterAutoLevelRate
		} else {
			levelFactor := math.Abs(st.BankAngle) / (math.Pi / 3)
			in.LevelRate = tun.AutoLevelRate * (0.8 + 0.8*levelFactor)
		}
	}

	return in
}
