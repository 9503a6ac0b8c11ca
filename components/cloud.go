package components

import (
	"github.com/tidegap/floatplane/shared/gamemath"
	"github.com/yohamta/donburi"
)

// CloudData describes one drifting cloud puff
type CloudData struct {
	Position gamemath.Vec3
	Size     float64 // base radius in meters
	Speed    float64 // drift speed along the wind direction
}

var Cloud = donburi.NewComponentType[CloudData]()
