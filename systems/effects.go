package systems

import (
	"github.com/tidegap/floatplane/components"
	"github.com/tidegap/floatplane/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances ripple tweens and retires rings that finished
// expanding.
func UpdateEffects(ecs *ecs.ECS) {
	dt := float32(tickDelta())
	var toRemove []*donburi.Entry

	components.Ripple.Each(ecs.World, func(e *donburi.Entry) {
		ripple := components.Ripple.Get(e)
		tw := components.Tween.Get(e)

		radius, _, seqDone := tw.Update(dt)
		ripple.Radius = float64(radius)
		ripple.Alpha = gamemath.Clamp(1-ripple.Radius/ripple.MaxRadius, 0, 1)

		if seqDone {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		e.Remove()
	}
}
