package systems

import (
	"github.com/tidegap/floatplane/components"
	cfg "github.com/tidegap/floatplane/config"
	"github.com/tidegap/floatplane/shared/flightsim"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateControls maps the polled axes onto desired control rates for every
// plane. Runs after UpdateInput and before UpdateFlight.
func UpdateControls(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	settings := GetOrCreateSettingsMenu(ecs)

	components.Control.Each(ecs.World, func(e *donburi.Entry) {
		control := components.Control.Get(e)
		plane := components.Plane.Get(e)

		sig := flightsim.ControlSignals{
			Pitch:    input.Axes.Pitch,
			Roll:     input.Axes.Roll,
			Yaw:      input.Axes.Yaw,
			Throttle: input.Axes.Throttle,
		}
		if settings.InvertPitch {
			sig.Pitch = -sig.Pitch
		}

		control.Signals = sig
		control.Input = flightsim.MapControls(sig, &plane.PlaneState, &cfg.Flight)
	})
}
