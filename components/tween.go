package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Tween holds an animation sequence advanced by the effects system.
var Tween = donburi.NewComponentType[gween.Sequence]()
