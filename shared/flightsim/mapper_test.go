package flightsim

import (
	"math"
	"testing"

	"github.com/tidegap/floatplane/shared/simconfig"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMapControls_SpeedSensitivity(t *testing.T) {
	tun := simconfig.DefaultFlight()

	tests := []struct {
		name     string
		speed    float64
		expected float64 // pitch rate for full deflection
	}{
		{name: "Below reference", speed: 10, expected: tun.PitchSensitivity},
		{name: "At reference", speed: tun.SensitivityRefSpeed, expected: tun.PitchSensitivity},
		{name: "Double reference", speed: 2 * tun.SensitivityRefSpeed, expected: tun.PitchSensitivity * 0.5},
		{name: "Floored", speed: 200, expected: tun.PitchSensitivity * tun.SensitivityFloor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := PlaneState{Speed: tt.speed}
			in := MapControls(ControlSignals{Pitch: 1}, &st, &tun)
			if !almostEqual(in.PitchRate, tt.expected) {
				t.Errorf("Expected %f, got %f", tt.expected, in.PitchRate)
			}
		})
	}
}

func TestMapControls_WaterHalvesAuthority(t *testing.T) {
	tun := simconfig.DefaultFlight()

	air := PlaneState{Speed: 20}
	water := PlaneState{Speed: 20, OnWater: true}

	airIn := MapControls(ControlSignals{Pitch: 1, Yaw: 1}, &air, &tun)
	waterIn := MapControls(ControlSignals{Pitch: 1, Yaw: 1}, &water, &tun)

	if !almostEqual(waterIn.PitchRate, airIn.PitchRate*tun.WaterControlFactor) {
		t.Errorf("Expected %f, got %f", airIn.PitchRate*tun.WaterControlFactor, waterIn.PitchRate)
	}
	if !almostEqual(waterIn.YawRate, airIn.YawRate*tun.WaterControlFactor) {
		t.Errorf("Expected %f, got %f", airIn.YawRate*tun.WaterControlFactor, waterIn.YawRate)
	}
}

func TestMapControls_ThrottleUnscaled(t *testing.T) {
	// Throttle is a target change, not a control surface, so neither speed
	// nor water contact attenuates it.
	tun := simconfig.DefaultFlight()
	st := PlaneState{Speed: 200, OnWater: true}

	in := MapControls(ControlSignals{Throttle: -1}, &st, &tun)
	if !almostEqual(in.ThrottleDelta, -tun.ThrottleRate) {
		t.Errorf("Expected %f, got %f", -tun.ThrottleRate, in.ThrottleDelta)
	}
}

func TestMapControls_CounterRollBoost(t *testing.T) {
	tun := simconfig.DefaultFlight()
	st := PlaneState{BankAngle: 0.2}

	counter := MapControls(ControlSignals{Roll: -1}, &st, &tun)
	deeper := MapControls(ControlSignals{Roll: 1}, &st, &tun)

	if math.Abs(counter.RollRate) <= math.Abs(deeper.RollRate) {
		t.Errorf("Expected counter-roll %f to beat deepening roll %f",
			counter.RollRate, deeper.RollRate)
	}
}

func TestMapControls_AutoLevelEngagement(t *testing.T) {
	tun := simconfig.DefaultFlight()

	tests := []struct {
		name    string
		state   PlaneState
		sig     ControlSignals
		engaged bool
	}{
		{name: "Banked, stick released", state: PlaneState{BankAngle: 0.2}, sig: ControlSignals{}, engaged: true},
		{name: "Banked, stick held", state: PlaneState{BankAngle: 0.2}, sig: ControlSignals{Roll: 1}, engaged: false},
		{name: "Already level", state: PlaneState{BankAngle: 0.005}, sig: ControlSignals{}, engaged: false},
		{name: "On water overrides stick", state: PlaneState{BankAngle: 0.2, OnWater: true}, sig: ControlSignals{Roll: 1}, engaged: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := MapControls(tt.sig, &tt.state, &tun)
			if got := in.LevelRate > 0; got != tt.engaged {
				t.Errorf("Expected engaged=%v, got level rate %f", tt.engaged, in.LevelRate)
			}
		})
	}
}

func TestMapControls_WaterLevelRate(t *testing.T) {
	tun := simconfig.DefaultFlight()
	st := PlaneState{BankAngle: 0.3, OnWater: true}

	in := MapControls(ControlSignals{}, &st, &tun)
	if !almostEqual(in.LevelRate, tun.WaterAutoLevelRate) {
		t.Errorf("Expected %f, got %f", tun.WaterAutoLevelRate, in.LevelRate)
	}
}

func TestMapControls_Pure(t *testing.T) {
	tun := simconfig.DefaultFlight()
	st := PlaneState{Speed: 42, BankAngle: 0.2, Throttle: 0.7, OnWater: true}
	before := st

	MapControls(ControlSignals{Pitch: 1, Roll: -1, Yaw: 0.5, Throttle: 1}, &st, &tun)

	if st != before {
		t.Errorf("Expected state unchanged, got %+v", st)
	}
}
