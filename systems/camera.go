package systems

import (
	"math"

	"github.com/tidegap/floatplane/components"
	cfg "github.com/tidegap/floatplane/config"
	"github.com/tidegap/floatplane/shared/gamemath"
	"github.com/tidegap/floatplane/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the chase camera toward its spot behind and above the
// plane. The top-down renderer centers the view on the camera's X/Z, so the
// ease is what gives turns their drift.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	updateScreenShake(e, cameraEntry, camera)

	planeEntry, ok := tags.Plane.First(e.World)
	if !ok {
		return
	}
	pose := components.Pose.Get(planeEntry)

	// Behind and above the plane, swinging sideways with bank.
	desired := pose.Position.
		Add(pose.Back().Scale(cfg.Camera.FollowDistance)).
		Add(gamemath.Vec3{
			X: math.Sin(pose.Roll) * cfg.Camera.BankOffset,
			Y: cfg.Camera.Height,
		})

	alpha := gamemath.Clamp(gamemath.DampFactor(cfg.Camera.SmoothingRate, tickDelta()), 0, cfg.Camera.MaxStep)
	camera.Position = camera.Position.Lerp(desired, alpha)
	camera.LookTarget = pose.Position.Add(pose.Forward().Scale(cfg.Camera.LookAhead))
}

// updateScreenShake applies the shake offset to the camera and retires the
// component once the shake has run its course.
func updateScreenShake(e *ecs.ECS, cameraEntry *donburi.Entry, camera *components.CameraData) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	// Calculate decaying intensity
	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	currentIntensity := shake.Intensity * progress

	// Intensity is tuned in screen pixels, the camera lives in meters.
	if GetOrCreateSettingsMenu(e).ScreenShake {
		offset := currentIntensity / cfg.Render.PixelsPerMeter
		camera.Position.X += math.Sin(float64(shake.Elapsed)*1.1) * offset
		camera.Position.Z += math.Cos(float64(shake.Elapsed)*1.3) * offset
	}

	// Remove component when shake is complete
	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(ecs *ecs.ECS, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}

	// Add or update screen shake component
	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		// Only override if new shake is stronger
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
	} else {
		cameraEntry.AddComponent(components.ScreenShake)
		components.ScreenShake.Set(cameraEntry, &components.ScreenShakeData{
			Intensity: intensity,
			Duration:  duration,
			Elapsed:   0,
		})
	}
}
