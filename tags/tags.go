package tags

import "github.com/yohamta/donburi"

var (
	Plane  = donburi.NewTag().SetName("Plane")
	Island = donburi.NewTag().SetName("Island")
	Cloud  = donburi.NewTag().SetName("Cloud")
	Ripple = donburi.NewTag().SetName("Ripple")
	Camera = donburi.NewTag().SetName("Camera")
	Level  = donburi.NewTag().SetName("Level")
)

// Resolv tags for spatial queries
const (
	ResolvPlane  = "Plane"
	ResolvIsland = "island"
)
