package flightsim

import "github.com/tidegap/floatplane/shared/simconfig"

// Simulator runs the whole step pipeline headless: mapper, flight update,
// water resolution, integration, in that fixed order. The flight scene runs
// the same pieces through its systems; scenario tests run them here,
// without an engine.
type Simulator struct {
	State PlaneState
	Pose  Pose
	Body  Body

	Flight simconfig.FlightTuning
	Water  simconfig.WaterTuning

	Steps uint64
}

// NewSimulator returns a simulator with default tuning and zeroed state.
func NewSimulator() *Simulator {
	return &Simulator{
		Flight: simconfig.DefaultFlight(),
		Water:  simconfig.DefaultWater(),
	}
}

// Contact reports the surface-contact sensor: active while the hull is at
// or below the contact height.
func (s *Simulator) Contact() bool {
	return s.Pose.Position.Y <= s.Water.ContactHeight
}

// Step advances the simulation by dt with the given raw signals and
// reports the resolver's events.
func (s *Simulator) Step(sig ControlSignals, dt float64) WaterEvents {
	in := MapControls(sig, &s.State, &s.Flight)
	out := UpdateFlight(&s.State, &s.Pose, in, dt, &s.Flight)
	s.Body.Velocity = out.Velocity
	s.Body.AngularVelocity = out.AngularVelocity

	ev := ResolveWater(&s.State, &s.Pose, &s.Body, s.Contact(), dt, &s.Water, s.Flight.MaxSpeed)
	Integrate(&s.Pose, &s.Body, dt, &s.Flight)
	s.Steps++
	return ev
}

// Run advances the simulation n steps with the same signals, returning the
// accumulated events. Convenient for scenario tests and soak checks.
func (s *Simulator) Run(sig ControlSignals, dt float64, n int) WaterEvents {
	var total WaterEvents
	for i := 0; i < n; i++ {
		ev := s.Step(sig, dt)
		total.Entered = total.Entered || ev.Entered
		total.Takeoff = total.Takeoff || ev.Takeoff
		total.HardImpact = total.HardImpact || ev.HardImpact
		if ev.ImpactSpeed > total.ImpactSpeed {
			total.ImpactSpeed = ev.ImpactSpeed
		}
	}
	return total
}
