package systems

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tidegap/floatplane/components"
	cfg "github.com/tidegap/floatplane/config"
	"github.com/tidegap/floatplane/fonts"
	"github.com/tidegap/floatplane/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles the overlay on F3 and emits the periodic flight line
// to the console while the overlay is up.
func UpdateDebug(e *ecs.ECS) {
	settings := GetOrCreateSettingsMenu(e)
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.DebugOverlay = !settings.DebugOverlay
	}

	if !settings.DebugOverlay {
		return
	}

	planeEntry, ok := tags.Plane.First(e.World)
	if !ok {
		return
	}
	plane := components.Plane.Get(planeEntry)
	pose := components.Pose.Get(planeEntry)

	debug := getOrCreateDebug(e)
	debug.LogTimer--
	if debug.LogTimer <= 0 {
		debug.LogTimer = cfg.Debug.LogInterval
		log.Printf("pos=(%.1f, %.1f, %.1f) yaw=%.1f pitch=%.1f roll=%.1f speed=%.1f throttle=%.2f water=%v",
			pose.Position.X, pose.Position.Y, pose.Position.Z,
			degrees(pose.Yaw), degrees(pose.Pitch), degrees(pose.Roll),
			plane.Speed, plane.Throttle, plane.OnWater)
	}
}

// DrawDebug renders collision outlines and a state readout.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettingsMenu(ecs)
	if !settings.DebugOverlay {
		return
	}

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	half := components.Level.Get(levelEntry).Level.WorldSize / 2

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	ppm := cfg.Render.PixelsPerMeter

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)

		for _, obj := range space.Objects() {
			// Space coords are world X/Z shifted by half the water size,
			// and the screen draws north (+Z) pointing up
			x := (obj.X - half - camera.Position.X) * ppm
			y := (camera.Position.Z - (obj.Y + obj.H - half)) * ppm
			w := obj.W * ppm
			h := obj.H * ppm

			x += float64(width) / 2
			y += float64(height) / 2

			// Cull objects outside the viewport
			if x+w < 0 || x > float64(width) || y+h < 0 || y > float64(height) {
				continue
			}

			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvIsland) {
				c = color.RGBA{255, 160, 0, 255}
			} else if obj.HasTags(tags.ResolvPlane) {
				c = color.RGBA{0, 255, 0, 255}
			}

			// Draw outline
			vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)
			vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false)
			vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)
			vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false)
		}
	}

	drawDebugReadout(ecs, screen, height)
}

// drawDebugReadout prints the raw flight state in the bottom-left corner
func drawDebugReadout(ecs *ecs.ECS, screen *ebiten.Image, screenHeight int) {
	planeEntry, ok := tags.Plane.First(ecs.World)
	if !ok {
		return
	}
	plane := components.Plane.Get(planeEntry)
	pose := components.Pose.Get(planeEntry)
	body := components.Body.Get(planeEntry)
	control := components.Control.Get(planeEntry)

	lines := []string{
		fmt.Sprintf("pos (%.1f, %.1f, %.1f)", pose.Position.X, pose.Position.Y, pose.Position.Z),
		fmt.Sprintf("vel (%.1f, %.1f, %.1f)", body.Velocity.X, body.Velocity.Y, body.Velocity.Z),
		fmt.Sprintf("yaw %.2f pitch %.2f roll %.2f", pose.Yaw, pose.Pitch, pose.Roll),
		fmt.Sprintf("speed %.1f throttle %.2f bank %.2f", plane.Speed, plane.Throttle, plane.BankAngle),
		fmt.Sprintf("rates p=%.2f y=%.2f lvl=%.2f", control.Input.PitchRate, control.Input.YawRate, control.Input.LevelRate),
		fmt.Sprintf("water=%v bounce=%.2f tps %.0f", plane.OnWater, plane.ImpactBounce, ebiten.ActualTPS()),
	}

	fontFace := fonts.HUDSmall.Get()
	lineHeight := 10
	startY := screenHeight - 8 - lineHeight*(len(lines)-1)
	for i, line := range lines {
		text.Draw(screen, line, fontFace, 8, startY+i*lineHeight, cfg.Yellow)
	}
}

// getOrCreateDebug returns the singleton debug log state
func getOrCreateDebug(ecs *ecs.ECS) *components.DebugData {
	entry, ok := components.Debug.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Debug))
		components.Debug.SetValue(entry, components.DebugData{LogTimer: cfg.Debug.LogInterval})
	}
	return components.Debug.Get(entry)
}
