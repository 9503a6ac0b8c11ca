package components

import (
	"github.com/tidegap/floatplane/shared/gamemath"
	"github.com/yohamta/donburi"
)

// IslandData describes a circular island obstacle.
// Center.Y is always zero, Height is the peak altitude a plane
// must clear to overfly it.
type IslandData struct {
	Center gamemath.Vec3
	Radius float64
	Height float64
}

var Island = donburi.NewComponentType[IslandData]()
