package factory

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/tidegap/floatplane/archetypes"
	"github.com/tidegap/floatplane/components"
	"github.com/tidegap/floatplane/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateRipple spawns an expanding ring on the water surface. The ring
// radius is driven by a tween, alpha is derived from it in the effects
// system, and the entity removes itself when the sequence finishes.
func CreateRipple(ecs *ecs.ECS, center gamemath.Vec3, maxRadius float64, duration float32) *donburi.Entry {
	ripple := archetypes.Ripple.Spawn(ecs)

	components.Ripple.SetValue(ripple, components.RippleData{
		Center:    gamemath.Vec3{X: center.X, Z: center.Z},
		MaxRadius: maxRadius,
		Alpha:     1,
	})

	tw := gween.NewSequence()
	tw.Add(gween.New(0, float32(maxRadius), duration, ease.OutQuad))
	components.Tween.Set(ripple, tw)

	return ripple
}
