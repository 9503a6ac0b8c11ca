package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionPitchUp
	ActionPitchDown
	ActionRollLeft
	ActionRollRight
	ActionYawLeft
	ActionYawRight
	ActionThrottleUp
	ActionThrottleDown
	ActionPause
	ActionToggleDebug
	ActionMenuUp
	ActionMenuDown
	ActionMenuLeft
	ActionMenuRight
	ActionMenuSelect
	ActionMenuBack
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// AxisBinding assigns a standard gamepad axis to a control channel
type AxisBinding struct {
	Axis     ebiten.StandardGamepadAxis
	Inverted bool
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding

	// Analog stick assignments
	PitchAxis    AxisBinding
	RollAxis     AxisBinding
	YawAxis      AxisBinding
	ThrottleAxis AxisBinding

	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,

		// Left stick: pitch and roll. Stick forward is nose down.
		PitchAxis: AxisBinding{Axis: ebiten.StandardGamepadAxisLeftStickVertical},
		RollAxis:  AxisBinding{Axis: ebiten.StandardGamepadAxisLeftStickHorizontal},
		// Right stick: yaw and throttle. Stick up raises throttle.
		YawAxis:      AxisBinding{Axis: ebiten.StandardGamepadAxisRightStickHorizontal},
		ThrottleAxis: AxisBinding{Axis: ebiten.StandardGamepadAxisRightStickVertical, Inverted: true},

		Bindings: map[ActionID]InputBinding{
			ActionPitchUp: {
				Keys: []ebiten.Key{ebiten.KeyW},
				// Analog stick handled separately
			},
			ActionPitchDown: {
				Keys: []ebiten.Key{ebiten.KeyS},
			},
			ActionRollLeft: {
				Keys: []ebiten.Key{ebiten.KeyA},
			},
			ActionRollRight: {
				Keys: []ebiten.Key{ebiten.KeyD},
			},
			ActionYawLeft: {
				Keys: []ebiten.Key{ebiten.KeyQ},
				// Left bumper
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopLeft,
				},
			},
			ActionYawRight: {
				Keys: []ebiten.Key{ebiten.KeyE},
				// Right bumper
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopRight,
				},
			},
			ActionThrottleUp: {
				Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyShiftLeft},
				// D-pad Up (analog stick handled separately)
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionThrottleDown: {
				Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyControlLeft},
				// D-pad Down (analog stick handled separately)
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			ActionPause: {
				Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionToggleDebug: {
				Keys: []ebiten.Key{ebiten.KeyF3},
				// Select / Share button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterLeft,
				},
			},
			ActionMenuUp: {
				Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionMenuDown: {
				Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			ActionMenuLeft: {
				Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			ActionMenuRight: {
				Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			ActionMenuSelect: {
				Keys: []ebiten.Key{ebiten.KeyEnter},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionMenuBack: {
				Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyBackspace},
				// B / Circle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
				},
			},
		},
	}
}
