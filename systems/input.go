package systems

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tidegap/floatplane/components"
	cfg "github.com/tidegap/floatplane/config"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the input singleton.
// Must run BEFORE UpdateControls in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	// Get connected gamepads
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	// Track which input method was used this frame
	var keyboardUsed, gamepadUsed bool

	// Poll all actions - only set Pressed state
	for actionID, binding := range cfg.Input.Bindings {
		// Check keyboard keys
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		// Check gamepad buttons
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	// Key pairs give full deflection on their channel
	axes := components.FlightAxes{
		Pitch:    axisFromActions(input, cfg.ActionPitchUp, cfg.ActionPitchDown),
		Roll:     axisFromActions(input, cfg.ActionRollRight, cfg.ActionRollLeft),
		Yaw:      axisFromActions(input, cfg.ActionYawRight, cfg.ActionYawLeft),
		Throttle: axisFromActions(input, cfg.ActionThrottleUp, cfg.ActionThrottleDown),
	}

	// Analog sticks win a channel when deflected further than the keys
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		gamepadUsed = mergeAxis(&axes.Pitch, readAxis(gpID, cfg.Input.PitchAxis)) || gamepadUsed
		gamepadUsed = mergeAxis(&axes.Roll, readAxis(gpID, cfg.Input.RollAxis)) || gamepadUsed
		gamepadUsed = mergeAxis(&axes.Yaw, readAxis(gpID, cfg.Input.YawAxis)) || gamepadUsed
		gamepadUsed = mergeAxis(&axes.Throttle, readAxis(gpID, cfg.Input.ThrottleAxis)) || gamepadUsed

		// Left stick doubles as menu navigation
		deadzone := cfg.Input.AnalogDeadzone
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if horizontal < -deadzone {
			input.Current[cfg.ActionMenuLeft] = true
			gamepadUsed = true
		}
		if horizontal > deadzone {
			input.Current[cfg.ActionMenuRight] = true
			gamepadUsed = true
		}
		if vertical < -deadzone {
			input.Current[cfg.ActionMenuUp] = true
			gamepadUsed = true
		}
		if vertical > deadzone {
			input.Current[cfg.ActionMenuDown] = true
			gamepadUsed = true
		}
	}
	input.Axes = axes

	// Update last input method - gamepad takes priority if both used
	if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// axisFromActions folds a held action pair into one axis value.
func axisFromActions(input *components.InputData, positive, negative cfg.ActionID) float64 {
	var v float64
	if input.Current[positive] {
		v += 1
	}
	if input.Current[negative] {
		v -= 1
	}
	return v
}

// readAxis samples a standard gamepad axis with the deadzone applied.
func readAxis(gpID ebiten.GamepadID, binding cfg.AxisBinding) float64 {
	v := ebiten.StandardGamepadAxisValue(gpID, binding.Axis)
	if math.Abs(v) < cfg.Input.AnalogDeadzone {
		return 0
	}
	if binding.Inverted {
		v = -v
	}
	return v
}

// mergeAxis keeps the larger deflection and reports whether v contributed.
func mergeAxis(dst *float64, v float64) bool {
	if v == 0 {
		return false
	}
	if math.Abs(v) > math.Abs(*dst) {
		*dst = v
	}
	return true
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
