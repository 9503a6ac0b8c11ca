package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tidegap/floatplane/components"
	cfg "github.com/tidegap/floatplane/config"
	"github.com/tidegap/floatplane/fonts"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// Cached font face for message rendering (lazy initialized)
var messageFontFace font.Face

// TriggerMessage shows a flight notice at the top of the screen. A new
// notice replaces whatever is showing and restarts the timer.
func TriggerMessage(ecs *ecs.ECS, msg string) {
	state := getOrCreateMessageState(ecs)
	state.ActiveText = msg
	state.DisplayTimer = cfg.Message.DisplayDuration
}

// UpdateMessage counts the active notice down and clears it when done
func UpdateMessage(ecs *ecs.ECS) {
	state := getOrCreateMessageState(ecs)

	if state.DisplayTimer > 0 {
		state.DisplayTimer--
		if state.DisplayTimer == 0 {
			state.ActiveText = ""
		}
	}
}

// DrawMessage renders the active notice at the top center of the screen
func DrawMessage(ecs *ecs.ECS, screen *ebiten.Image) {
	state := getOrCreateMessageState(ecs)
	if state.ActiveText == "" {
		return
	}

	// Lazy initialize cached font face
	if messageFontFace == nil {
		messageFontFace = fonts.HUD.Get()
	}

	// Measure text
	bounds := text.BoundString(messageFontFace, state.ActiveText) //nolint:staticcheck // TODO: migrate to text/v2
	textWidth := bounds.Dx()
	textHeight := bounds.Dy()

	// Calculate box dimensions
	padding := cfg.Message.BoxPadding
	boxWidth := float32(textWidth) + float32(padding)*2
	boxHeight := float32(textHeight) + float32(padding)*2

	// Position at top center
	screenWidth := float64(screen.Bounds().Dx())
	boxX := float32((screenWidth - float64(boxWidth)) / 2)
	boxY := float32(cfg.Message.TopMargin)

	// Draw semi-transparent background box
	vector.FillRect(
		screen,
		boxX, boxY,
		boxWidth, boxHeight,
		cfg.Message.BoxColor,
		false,
	)

	// Draw text centered in box
	textX := int(boxX + float32(padding))
	textY := int(boxY + float32(padding) + float32(textHeight))
	text.Draw(screen, state.ActiveText, messageFontFace, textX, textY, cfg.Message.TextColor)
}

// getOrCreateMessageState returns the singleton MessageState component
func getOrCreateMessageState(ecs *ecs.ECS) *components.MessageStateData {
	entry, ok := components.MessageState.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.MessageState))
		components.MessageState.SetValue(entry, components.MessageStateData{})
	}
	return components.MessageState.Get(entry)
}
