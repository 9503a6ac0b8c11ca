package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tidegap/floatplane/components"
	cfg "github.com/tidegap/floatplane/config"
	"github.com/tidegap/floatplane/fonts"
	"github.com/tidegap/floatplane/tags"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// hudLine is one row of a HUD panel
type hudLine struct {
	Text  string
	Color color.RGBA
}

// UpdateHUD advances the blink timer for the takeoff-ready line
func UpdateHUD(ecs *ecs.ECS) {
	hud := getOrCreateHUD(ecs)
	hud.FlashTimer++
}

// DrawHUD renders the flight data panel on the left and the control state
// panel on the right.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	planeEntry, ok := tags.Plane.First(ecs.World)
	if !ok {
		return
	}
	plane := components.Plane.Get(planeEntry)
	pose := components.Pose.Get(planeEntry)
	control := components.Control.Get(planeEntry)
	hud := getOrCreateHUD(ecs)

	fontFace := fonts.HUD.Get()

	status := hudLine{"Status: AIRBORNE", cfg.HUD.AirborneColor}
	if plane.OnWater {
		status = hudLine{"Status: ON WATER", cfg.HUD.WaterColor}
	}
	left := []hudLine{
		{"FLIGHT DATA", cfg.HUD.TextColor},
		{fmt.Sprintf("Speed: %.1f km/h (%.0f%%)", plane.Speed*3.6, plane.Speed/cfg.Flight.MaxSpeed*100), cfg.HUD.TextColor},
		{fmt.Sprintf("Altitude: %.1f m", pose.Position.Y), cfg.HUD.TextColor},
		status,
	}
	drawPanel(screen, fontFace, cfg.HUD.Margin, left)

	ready := hudLine{"Takeoff Ready: NO", cfg.HUD.NotReadyColor}
	if takeoffReady(plane, control) {
		ready = hudLine{"Takeoff Ready: YES", cfg.HUD.ReadyColor}
		// Blink while ready
		if hud.FlashTimer%40 < 10 {
			ready.Color = cfg.HUD.TextColor
		}
	}
	right := []hudLine{
		{"CONTROLS", cfg.HUD.TextColor},
		{fmt.Sprintf("Pitch: %.1f°", degrees(pose.Pitch)), cfg.HUD.TextColor},
		{fmt.Sprintf("Roll: %.1f°", degrees(pose.Roll)), cfg.HUD.TextColor},
		{fmt.Sprintf("Yaw: %.1f°", degrees(pose.Yaw)), cfg.HUD.TextColor},
		{fmt.Sprintf("Throttle: %.0f%%", plane.Throttle*100), cfg.HUD.TextColor},
		ready,
	}
	rightX := float64(cfg.C.Width) - cfg.HUD.Margin - cfg.HUD.PanelWidth
	drawPanel(screen, fontFace, rightX, right)
}

// drawPanel draws one translucent box of text lines at the top of the screen
func drawPanel(screen *ebiten.Image, fontFace font.Face, x float64, lines []hudLine) {
	boxHeight := cfg.HUD.Padding*2 + cfg.HUD.LineHeight*float64(len(lines))
	vector.FillRect(
		screen,
		float32(x), float32(cfg.HUD.Margin),
		float32(cfg.HUD.PanelWidth), float32(boxHeight),
		cfg.HUD.BoxColor,
		false,
	)

	textX := int(x + cfg.HUD.Padding)
	for i, line := range lines {
		// Baseline sits near the bottom of each row
		textY := int(cfg.HUD.Margin+cfg.HUD.Padding) + int(cfg.HUD.LineHeight)*i + 10
		text.Draw(screen, line.Text, fontFace, textX, textY, line.Color)
	}
}

// takeoffReady mirrors the cockpit indicator: enough speed for the impulse
// and the stick pulled back. Display only - the impulse itself is
// speed-gated in the water resolver.
func takeoffReady(plane *components.PlaneData, control *components.ControlData) bool {
	return plane.Speed > cfg.Water.TakeoffSpeedThreshold*cfg.Flight.MaxSpeed &&
		control.Signals.Pitch > 0.1
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// getOrCreateHUD returns the singleton HUD component
func getOrCreateHUD(ecs *ecs.ECS) *components.HUDData {
	entry, ok := components.HUD.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.HUD))
		components.HUD.SetValue(entry, components.HUDData{})
	}
	return components.HUD.Get(entry)
}
