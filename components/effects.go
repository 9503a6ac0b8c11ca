package components

import (
	"github.com/tidegap/floatplane/shared/gamemath"
	"github.com/yohamta/donburi"
)

// ScreenShakeData tracks active screen shake effect on the camera
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  int     // frames remaining
	Elapsed   int     // frames elapsed (for oscillation)
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// RippleData is an expanding ring drawn on the water surface.
// Radius and Alpha are driven by the entity's Tween component.
type RippleData struct {
	Center    gamemath.Vec3 // Y is ignored, ripples live on the surface
	MaxRadius float64       // meters at full expansion
	Radius    float64
	Alpha     float64 // 1 at spawn, 0 when expired
}

var Ripple = donburi.NewComponentType[RippleData]()
