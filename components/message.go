package components

import "github.com/yohamta/donburi"

// MessageStateData is a singleton tracking the active flight notice
type MessageStateData struct {
	ActiveText   string // Currently displayed notice ("" = none)
	DisplayTimer int    // Frames remaining to display current notice
}

var MessageState = donburi.NewComponentType[MessageStateData]()
