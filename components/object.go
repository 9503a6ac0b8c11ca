package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space holds the resolv space used for planar spatial queries.
// Positions are in space coordinates, world X/Z shifted by half the
// water size so the origin sits at the top-left corner.
var Space = donburi.NewComponentType[resolv.Space]()
