package components

import (
	cfg "github.com/tidegap/floatplane/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// FlightAxes holds the merged analog control channels in [-1,1].
// Keyboard action pairs and gamepad sticks both feed these, whichever
// produced the larger deflection this frame wins.
type FlightAxes struct {
	Pitch    float64 // positive is nose up
	Roll     float64 // positive banks right
	Yaw      float64 // positive turns right
	Throttle float64 // rate input, positive opens the throttle
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	Axes            FlightAxes            // Merged analog channels
	LastInputMethod InputMethod           // Most recently used input method
}

var Input = donburi.NewComponentType[InputData]()
