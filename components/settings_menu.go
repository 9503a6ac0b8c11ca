package components

import (
	"github.com/yohamta/donburi"
)

// SettingsMenuOption represents menu items in the settings menu
type SettingsMenuOption int

const (
	SettingsOptInvertPitch SettingsMenuOption = iota
	SettingsOptScreenShake
	SettingsOptWindowScale
	SettingsOptDebugOverlay
	SettingsOptControls
	SettingsOptBack
)

// SettingsMenuData stores the current state of the settings menu overlay
type SettingsMenuData struct {
	IsOpen          bool
	SelectedOption  SettingsMenuOption
	OpenedFromPause bool // Track origin for "Back" navigation
	ShowingControls bool // Controls reference screen is active

	// Current settings values
	InvertPitch  bool
	ScreenShake  bool
	ScaleIndex   int // index into cfg.SettingsMenu.WindowScales
	DebugOverlay bool
}

// SettingsMenu is the component type for settings menu state
var SettingsMenu = donburi.NewComponentType[SettingsMenuData]()
