package components

import (
	"github.com/tidegap/floatplane/shared/gamemath"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	Position   gamemath.Vec3
	LookTarget gamemath.Vec3 // focus point ahead of the plane
}

var Camera = donburi.NewComponentType[CameraData]()
