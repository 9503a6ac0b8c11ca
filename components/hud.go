package components

import "github.com/yohamta/donburi"

// HUDData is a singleton for flight HUD presentation state
type HUDData struct {
	FlashTimer int // drives the TAKEOFF READY blink
}

var HUD = donburi.NewComponentType[HUDData]()
