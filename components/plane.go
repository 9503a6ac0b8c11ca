package components

import (
	"github.com/tidegap/floatplane/shared/flightsim"
	"github.com/yohamta/donburi"
)

// PlaneData holds the flight state of the player seaplane
type PlaneData struct {
	flightsim.PlaneState

	// WakeTimer counts down frames until the next wake ring while sailing
	WakeTimer int
}

var Plane = donburi.NewComponentType[PlaneData]()

// PoseData holds world position and attitude
type PoseData struct {
	flightsim.Pose
}

var Pose = donburi.NewComponentType[PoseData]()

// BodyData holds linear and angular velocity, integrated every tick
type BodyData struct {
	flightsim.Body
}

var Body = donburi.NewComponentType[BodyData]()

// ControlData carries input through the control pipeline.
// Signals are the raw [-1,1] axes read from input, Input is the
// sensitivity-scaled result consumed by the flight update.
type ControlData struct {
	Signals flightsim.ControlSignals
	Input   flightsim.ControlInput
}

var Control = donburi.NewComponentType[ControlData]()
