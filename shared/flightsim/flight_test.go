package flightsim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/tidegap/floatplane/shared/gamemath"
	"github.com/tidegap/floatplane/shared/simconfig"
)

func TestUpdateFlight_FullThrottleRamp(t *testing.T) {
	tun := simconfig.DefaultFlight()
	var st PlaneState
	var pose Pose
	dt := 1.0 / 60.0

	for i := 0; i < 60; i++ {
		in := MapControls(ControlSignals{Throttle: 1}, &st, &tun)
		UpdateFlight(&st, &pose, in, dt, &tun)
	}

	// Throttle sweeps at ThrottleRate, speed chases the target at
	// Acceleration and stays behind the rising target for the whole second.
	if !almostEqual(st.Throttle, tun.ThrottleRate) {
		t.Errorf("Expected throttle %f, got %f", tun.ThrottleRate, st.Throttle)
	}
	if !almostEqual(st.Speed, tun.Acceleration) {
		t.Errorf("Expected speed %f, got %f", tun.Acceleration, st.Speed)
	}
}

func TestUpdateFlight_SoakClamps(t *testing.T) {
	tun := simconfig.DefaultFlight()
	rng := rand.New(rand.NewSource(42))
	var st PlaneState
	var pose Pose

	for i := 0; i < 2000; i++ {
		sig := ControlSignals{
			Pitch:    2*rng.Float64() - 1,
			Roll:     2*rng.Float64() - 1,
			Yaw:      2*rng.Float64() - 1,
			Throttle: 2*rng.Float64() - 1,
		}
		st.OnWater = rng.Float64() < 0.3
		dt := (1 + rng.Float64()) / 60

		in := MapControls(sig, &st, &tun)
		UpdateFlight(&st, &pose, in, dt, &tun)

		if st.Throttle < 0 || st.Throttle > 1 {
			t.Fatalf("Expected throttle in [0,1], got %f at step %d", st.Throttle, i)
		}
		if st.Speed < 0 || st.Speed > tun.MaxSpeed {
			t.Fatalf("Expected speed in [0,%f], got %f at step %d", tun.MaxSpeed, st.Speed, i)
		}
		if math.Abs(st.BankAngle) > tun.MaxBankAngle {
			t.Fatalf("Expected |bank| <= %f, got %f at step %d", tun.MaxBankAngle, st.BankAngle, i)
		}
	}
}

func TestUpdateFlight_BankAutoLevelDecay(t *testing.T) {
	tun := simconfig.DefaultFlight()

	tests := []struct {
		name string
		bank float64
	}{
		{name: "Right bank", bank: 0.3},
		{name: "Left bank", bank: -0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := PlaneState{BankAngle: tt.bank}
			var pose Pose
			in := ControlInput{LevelRate: tun.AutoLevelRate}
			dt := 1.0 / 60.0

			prev := math.Abs(st.BankAngle)
			for i := 0; i < 200; i++ {
				UpdateFlight(&st, &pose, in, dt, &tun)
				mag := math.Abs(st.BankAngle)
				if mag >= prev {
					t.Fatalf("Expected |bank| to shrink, got %f after %f at step %d", mag, prev, i)
				}
				if st.BankAngle*tt.bank <= 0 {
					t.Fatalf("Expected bank to keep sign of %f, got %f at step %d", tt.bank, st.BankAngle, i)
				}
				prev = mag
			}
		})
	}
}

func TestUpdateFlight_RollRateTracksBank(t *testing.T) {
	tun := simconfig.DefaultFlight()
	st := PlaneState{BankAngle: 0.3}
	pose := Pose{Roll: 0.1}

	out := UpdateFlight(&st, &pose, ControlInput{}, 1.0/60.0, &tun)

	expected := (st.BankAngle - pose.Roll) * tun.AttitudeRate
	if !almostEqual(out.AngularVelocity.Z, expected) {
		t.Errorf("Expected roll rate %f, got %f", expected, out.AngularVelocity.Z)
	}
}

func TestUpdateFlight_VelocityConvergesToForward(t *testing.T) {
	tun := simconfig.DefaultFlight()
	st := PlaneState{Speed: 30, Throttle: 0.375}
	pose := Pose{Yaw: 0.7, Pitch: 0.1}
	dt := 1.0 / 60.0

	var out FlightOutput
	for i := 0; i < 600; i++ {
		out = UpdateFlight(&st, &pose, ControlInput{}, dt, &tun)
	}

	want := pose.Forward().Scale(st.Speed)
	if math.Abs(out.Velocity.X-want.X) > 0.01 ||
		math.Abs(out.Velocity.Y-want.Y) > 0.01 ||
		math.Abs(out.Velocity.Z-want.Z) > 0.01 {
		t.Errorf("Expected velocity near %+v, got %+v", want, out.Velocity)
	}
}

func TestIntegrate_Clamps(t *testing.T) {
	tun := simconfig.DefaultFlight()
	var pose Pose
	body := Body{AngularVelocity: gamemath.Vec3{X: 10, Y: 10, Z: 10}}
	dt := 1.0 / 60.0

	for i := 0; i < 100; i++ {
		Integrate(&pose, &body, dt, &tun)
	}

	if math.Abs(pose.Pitch) > tun.MaxPitch {
		t.Errorf("Expected |pitch| <= %f, got %f", tun.MaxPitch, pose.Pitch)
	}
	if pose.Yaw < -math.Pi || pose.Yaw >= math.Pi {
		t.Errorf("Expected yaw in [-pi,pi), got %f", pose.Yaw)
	}
	if math.Abs(pose.Roll) > 2*tun.MaxBankAngle {
		t.Errorf("Expected |roll| <= %f, got %f", 2*tun.MaxBankAngle, pose.Roll)
	}
}

func TestIntegrate_GravitySag(t *testing.T) {
	tun := simconfig.DefaultFlight()
	pose := Pose{}
	body := Body{}
	dt := 1.0 / 60.0

	Integrate(&pose, &body, dt, &tun)

	if !almostEqual(body.Velocity.Y, -tun.Gravity*dt) {
		t.Errorf("Expected vertical velocity %f, got %f", -tun.Gravity*dt, body.Velocity.Y)
	}
	if pose.Position.Y >= 0 {
		t.Errorf("Expected altitude to sag below zero, got %f", pose.Position.Y)
	}
}
