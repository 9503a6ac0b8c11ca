package flightsim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/tidegap/floatplane/shared/gamemath"
)

func TestSimulator_ContactSensor(t *testing.T) {
	tests := []struct {
		name    string
		y       float64
		contact bool
	}{
		{name: "Below threshold", y: 0.59, contact: true},
		{name: "At threshold", y: 0.6, contact: true},
		{name: "Above threshold", y: 0.61, contact: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSimulator()
			s.Pose.Position.Y = tt.y
			if got := s.Contact(); got != tt.contact {
				t.Errorf("Expected contact=%v at height %f, got %v", tt.contact, tt.y, got)
			}
		})
	}
}

func TestSimulator_AutoLevelConvergence(t *testing.T) {
	tests := []struct {
		name string
		dt   float64
	}{
		{name: "60 fps", dt: 1.0 / 60.0},
		{name: "30 fps", dt: 1.0 / 30.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSimulator()
			s.State.BankAngle = 0.3
			s.State.Speed = 25
			s.State.Throttle = 25.0 / s.Flight.MaxSpeed
			s.Pose.Position.Y = 200

			threshold := s.Flight.AutoLevelThreshold
			prev := s.State.BankAngle
			steps := 0
			for math.Abs(s.State.BankAngle) > threshold && steps < 2000 {
				s.Step(ControlSignals{}, tt.dt)
				bank := s.State.BankAngle
				if bank < 0 {
					t.Fatalf("Expected bank to never cross zero, got %f at step %d", bank, steps)
				}
				if bank > prev {
					t.Fatalf("Expected bank to never grow, got %f after %f at step %d", bank, prev, steps)
				}
				prev = bank
				steps++
			}

			if math.Abs(s.State.BankAngle) > threshold {
				t.Errorf("Expected bank within %f, got %f after %d steps", threshold, s.State.BankAngle, steps)
			}
			if s.Pose.Position.Y <= s.Water.ContactHeight {
				t.Errorf("Expected the plane to stay airborne, got height %f", s.Pose.Position.Y)
			}
		})
	}
}

func TestSimulator_TakeoffRun(t *testing.T) {
	s := NewSimulator()
	s.Pose.Position.Y = s.Water.FloatHeight

	sig := ControlSignals{Throttle: 1, Pitch: 1}
	dt := 1.0 / 60.0

	takeoffs := 0
	for i := 0; i < 1200; i++ {
		if ev := s.Step(sig, dt); ev.Takeoff {
			takeoffs++
		}
	}

	if takeoffs != 1 {
		t.Errorf("Expected exactly one takeoff impulse, got %d", takeoffs)
	}
	if !s.State.TookOff {
		t.Error("Expected the takeoff latch to remain set")
	}
	if s.Contact() {
		t.Errorf("Expected the plane airborne after the run, got height %f", s.Pose.Position.Y)
	}
	if s.State.OnWater {
		t.Error("Expected OnWater to clear after liftoff")
	}
}

func TestSimulator_RollReleaseRecovery(t *testing.T) {
	s := NewSimulator()
	s.State.Speed = 20
	s.State.Throttle = 0.25
	s.Pose.Position.Y = 200
	dt := 1.0 / 60.0

	s.Run(ControlSignals{Roll: 1}, dt, 300)

	held := s.State.BankAngle
	if held < 0.05 {
		t.Fatalf("Expected a held bank beyond 0.05, got %f", held)
	}

	steps := 0
	for math.Abs(s.State.BankAngle) > s.Flight.AutoLevelThreshold && steps < 2000 {
		s.Step(ControlSignals{}, dt)
		steps++
	}
	if math.Abs(s.State.BankAngle) > s.Flight.AutoLevelThreshold {
		t.Errorf("Expected level flight after release, got bank %f", s.State.BankAngle)
	}
}

func TestSimulator_RandomSignalSoak(t *testing.T) {
	s := NewSimulator()
	s.Pose.Position.Y = 100
	rng := rand.New(rand.NewSource(99))
	dt := 1.0 / 60.0

	for i := 0; i < 3000; i++ {
		sig := ControlSignals{
			Pitch:    2*rng.Float64() - 1,
			Roll:     2*rng.Float64() - 1,
			Yaw:      2*rng.Float64() - 1,
			Throttle: 2*rng.Float64() - 1,
		}
		s.Step(sig, dt)

		if s.State.Throttle < 0 || s.State.Throttle > 1 {
			t.Fatalf("Expected throttle in [0,1], got %f at step %d", s.State.Throttle, i)
		}
		if s.State.Speed < 0 || s.State.Speed > s.Flight.MaxSpeed {
			t.Fatalf("Expected speed in bounds, got %f at step %d", s.State.Speed, i)
		}
		if math.Abs(s.State.BankAngle) > s.Flight.MaxBankAngle {
			t.Fatalf("Expected bank in bounds, got %f at step %d", s.State.BankAngle, i)
		}
		if math.Abs(s.Pose.Pitch) > s.Flight.MaxPitch {
			t.Fatalf("Expected pitch in bounds, got %f at step %d", s.Pose.Pitch, i)
		}
		for _, v := range []float64{
			s.Pose.Position.X, s.Pose.Position.Y, s.Pose.Position.Z,
			s.Body.Velocity.X, s.Body.Velocity.Y, s.Body.Velocity.Z,
			s.State.Momentum.X, s.State.Momentum.Y, s.State.Momentum.Z,
		} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("Expected finite state, got %f at step %d", v, i)
			}
		}
	}

	if s.Steps != 3000 {
		t.Errorf("Expected 3000 steps recorded, got %d", s.Steps)
	}
}

func TestSimulator_ZeroDtStep(t *testing.T) {
	s := NewSimulator()
	s.State = PlaneState{
		Speed:     30,
		Throttle:  0.5,
		BankAngle: 0.1,
		Momentum:  gamemath.Vec3{X: 1, Y: 2, Z: 3},
	}
	s.Pose = Pose{Position: gamemath.Vec3{X: 5, Y: 50, Z: -4}, Pitch: 0.2, Yaw: 1, Roll: 0.05}

	before := *s
	s.Step(ControlSignals{Pitch: 1, Roll: -1, Yaw: 1, Throttle: 1}, 0)

	// Body velocity is derived from momentum every step; plane state and
	// pose must come through a zero-length step untouched.
	if s.State != before.State {
		t.Errorf("Expected state unchanged, got %+v", s.State)
	}
	if s.Pose != before.Pose {
		t.Errorf("Expected pose unchanged, got %+v", s.Pose)
	}
	if s.Body.Velocity != s.State.Momentum {
		t.Errorf("Expected velocity rebuilt from momentum, got %+v", s.Body.Velocity)
	}
}
