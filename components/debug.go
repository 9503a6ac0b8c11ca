package components

import "github.com/yohamta/donburi"

// DebugData is a singleton for the debug overlay console log cadence.
// Whether the overlay is visible lives in SettingsMenuData.DebugOverlay.
type DebugData struct {
	LogTimer int // frames until the next console state line
}

var Debug = donburi.NewComponentType[DebugData]()
