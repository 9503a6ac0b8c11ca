package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tidegap/floatplane/components"
	cfg "github.com/tidegap/floatplane/config"
	"github.com/tidegap/floatplane/fonts"
	"github.com/yohamta/donburi/ecs"
)

const numSettingsOptions = int(components.SettingsOptBack) + 1

// UpdateSettingsMenu handles settings navigation and value changes.
func UpdateSettingsMenu(e *ecs.ECS) {
	settings := GetOrCreateSettingsMenu(e)

	if !settings.IsOpen {
		return
	}

	input := getOrCreateInput(e)

	// Handle controls screen separately
	if settings.ShowingControls {
		if GetAction(input, cfg.ActionMenuBack).JustPressed ||
			GetAction(input, cfg.ActionMenuSelect).JustPressed ||
			GetAction(input, cfg.ActionPause).JustPressed {
			settings.ShowingControls = false
		}
		return
	}

	// Navigate up
	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		settings.SelectedOption = components.SettingsMenuOption(
			(int(settings.SelectedOption) - 1 + numSettingsOptions) % numSettingsOptions,
		)
	}

	// Navigate down
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		settings.SelectedOption = components.SettingsMenuOption(
			(int(settings.SelectedOption) + 1) % numSettingsOptions,
		)
	}

	// Adjust value left/right
	if GetAction(input, cfg.ActionMenuLeft).JustPressed {
		adjustValue(settings, -1)
	}
	if GetAction(input, cfg.ActionMenuRight).JustPressed {
		adjustValue(settings, +1)
	}

	// Select/Enter - for toggles and Back button
	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		handleSelect(settings)
	}

	// B, Start, or Escape to go back
	if GetAction(input, cfg.ActionMenuBack).JustPressed ||
		GetAction(input, cfg.ActionPause).JustPressed {
		closeSettings(settings)
	}
}

// adjustValue changes the value for the selected option
func adjustValue(s *components.SettingsMenuData, direction int) {
	switch s.SelectedOption {
	case components.SettingsOptInvertPitch:
		s.InvertPitch = !s.InvertPitch

	case components.SettingsOptScreenShake:
		s.ScreenShake = !s.ScreenShake

	case components.SettingsOptWindowScale:
		cycleWindowScale(s, direction)

	case components.SettingsOptDebugOverlay:
		s.DebugOverlay = !s.DebugOverlay
	}
}

// cycleWindowScale steps through the window scale presets and resizes
func cycleWindowScale(s *components.SettingsMenuData, direction int) {
	numScales := len(cfg.SettingsMenu.WindowScales)
	s.ScaleIndex = (s.ScaleIndex + direction + numScales) % numScales
	applyWindowScale(s.ScaleIndex)
}

// handleSelect handles the select/enter action
func handleSelect(s *components.SettingsMenuData) {
	switch s.SelectedOption {
	case components.SettingsOptInvertPitch:
		s.InvertPitch = !s.InvertPitch

	case components.SettingsOptScreenShake:
		s.ScreenShake = !s.ScreenShake

	case components.SettingsOptWindowScale:
		cycleWindowScale(s, +1)

	case components.SettingsOptDebugOverlay:
		s.DebugOverlay = !s.DebugOverlay

	case components.SettingsOptControls:
		s.ShowingControls = true

	case components.SettingsOptBack:
		closeSettings(s)
	}
}

// closeSettings closes the settings menu and saves settings
func closeSettings(s *components.SettingsMenuData) {
	s.IsOpen = false
	SaveCurrentSettings(s)
}

// DrawSettingsMenu renders the settings overlay.
func DrawSettingsMenu(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettingsMenu(e)

	if !settings.IsOpen {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	// Draw solid background
	vector.DrawFilledRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Menu.BackgroundColor,
		false,
	)

	// Show controls screen if active
	if settings.ShowingControls {
		drawControlsScreen(e, screen, width, height)
		return
	}

	// Get fonts
	fontFace := fonts.Menu.Get()
	titleFont := fonts.Title.Get()

	// Draw title centered near top
	title := "SETTINGS"
	titleWidth := len(title) * 20
	titleX := int((width - float64(titleWidth)) / 2)
	text.Draw(screen, title, titleFont, titleX, 35, cfg.Menu.TitleColor)

	// Calculate menu positioning - center vertically in available space
	menuItemHeight := 24.0
	menuItemGap := 10.0
	totalMenuHeight := float64(numSettingsOptions) * (menuItemHeight + menuItemGap)
	startY := (height-totalMenuHeight)/2 + 10

	// Draw each option
	for opt := components.SettingsOptInvertPitch; opt <= components.SettingsOptBack; opt++ {
		y := startY + float64(opt)*(menuItemHeight+menuItemGap)

		textColor := cfg.Pause.TextColorNormal
		if opt == settings.SelectedOption {
			textColor = cfg.Pause.TextColorSelected
		}

		label, value := getOptionDisplay(settings, opt)

		// Label on the left, value on the right
		labelX := int(width/2) - 120
		text.Draw(screen, label, fontFace, labelX, int(y)+int(menuItemHeight), textColor)

		if value != "" {
			valueX := int(width/2) + 40
			text.Draw(screen, value, fontFace, valueX, int(y)+int(menuItemHeight), textColor)
		}
	}

	// Draw navigation hint at bottom based on input method
	input := getOrCreateInput(e)
	hint := getSettingsHint(input.LastInputMethod)
	hintFont := fonts.HUDSmall.Get()
	hintWidth := len(hint) * 7
	hintX := int((width - float64(hintWidth)) / 2)
	text.Draw(screen, hint, hintFont, hintX, int(height)-12, cfg.Pause.TextColorNormal)
}

// drawControlsScreen renders the flight control reference screen
func drawControlsScreen(e *ecs.ECS, screen *ebiten.Image, width, height float64) {
	input := getOrCreateInput(e)
	fontFace := fonts.Menu.Get()
	titleFont := fonts.Title.Get()
	smallFont := fonts.HUDSmall.Get()

	// Draw title
	title := "CONTROLS"
	titleWidth := len(title) * 20
	titleX := int((width - float64(titleWidth)) / 2)
	text.Draw(screen, title, titleFont, titleX, 35, cfg.Menu.TitleColor)

	mappings := getControlMappings(input.LastInputMethod)

	startY := 70.0
	lineHeight := 22.0
	labelX := int(width/2) - 110
	valueX := int(width/2) - 10

	for i, mapping := range mappings {
		y := startY + float64(i)*lineHeight
		text.Draw(screen, mapping.Action, fontFace, labelX, int(y), cfg.Pause.TextColorNormal)
		text.Draw(screen, mapping.Button, fontFace, valueX, int(y), cfg.Pause.TextColorSelected)
	}

	// Draw hint at bottom
	hint := getBackHint(input.LastInputMethod)
	hintWidth := len(hint) * 7
	hintX := int((width - float64(hintWidth)) / 2)
	text.Draw(screen, hint, smallFont, hintX, int(height)-12, cfg.Pause.TextColorNormal)
}

// controlMapping represents a single control mapping entry
type controlMapping struct {
	Action string
	Button string
}

// getControlMappings returns control mappings for the given input method
func getControlMappings(method components.InputMethod) []controlMapping {
	if method == components.InputGamepad {
		return []controlMapping{
			{"Pitch", "Left Stick Up / Down"},
			{"Roll", "Left Stick Left / Right"},
			{"Yaw", "Bumpers / Right Stick"},
			{"Throttle", "Right Stick / D-Pad"},
			{"Pause", "Start"},
			{"Debug Overlay", "Back"},
		}
	}
	return []controlMapping{
		{"Pitch Up / Down", "W / S"},
		{"Roll Left / Right", "A / D"},
		{"Yaw Left / Right", "Q / E"},
		{"Throttle", "Shift / Ctrl or Up / Down"},
		{"Pause", "Esc / P"},
		{"Debug Overlay", "F3"},
	}
}

// getSettingsHint returns the appropriate hint for settings menu
func getSettingsHint(method components.InputMethod) string {
	if method == components.InputGamepad {
		return "D-Pad: Navigate   Left/Right: Change   A: Select   B: Back"
	}
	return "Arrows: Navigate   Left/Right: Change   Enter: Select   Esc: Back"
}

// getBackHint returns the hint for leaving the controls screen
func getBackHint(method components.InputMethod) string {
	if method == components.InputGamepad {
		return "Press any button to go back"
	}
	return "Press any key to go back"
}

// getOptionDisplay returns the label and value display for an option
func getOptionDisplay(s *components.SettingsMenuData, opt components.SettingsMenuOption) (string, string) {
	switch opt {
	case components.SettingsOptInvertPitch:
		return "Invert Pitch", formatToggle(s.InvertPitch)
	case components.SettingsOptScreenShake:
		return "Screen Shake", formatToggle(s.ScreenShake)
	case components.SettingsOptWindowScale:
		if s.ScaleIndex < len(cfg.SettingsMenu.WindowScales) {
			return "Window Size", cfg.SettingsMenu.WindowScales[s.ScaleIndex].Label
		}
		return "Window Size", "Unknown"
	case components.SettingsOptDebugOverlay:
		return "Debug Overlay", formatToggle(s.DebugOverlay)
	case components.SettingsOptControls:
		return "Controls", ">"
	case components.SettingsOptBack:
		return "< Back", ""
	default:
		return "", ""
	}
}

// formatToggle formats a boolean as On/Off
func formatToggle(value bool) string {
	if value {
		return "[X] On"
	}
	return "[ ] Off"
}

// GetOrCreateSettingsMenu returns the singleton SettingsMenu component, creating if needed.
func GetOrCreateSettingsMenu(e *ecs.ECS) *components.SettingsMenuData {
	if _, ok := components.SettingsMenu.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.SettingsMenu))

		data := components.SettingsMenuData{
			IsOpen:         false,
			SelectedOption: components.SettingsOptInvertPitch,
			ScreenShake:    true,
			ScaleIndex:     cfg.SettingsMenu.DefaultScaleIndex,
			DebugOverlay:   cfg.Debug.Enabled,
		}

		// Scenes each carry their own world, so new singletons pick up
		// whatever was loaded or saved last.
		if saved := CurrentSavedSettings(); saved != nil {
			data.InvertPitch = saved.InvertPitch
			data.ScreenShake = saved.ScreenShake
			data.DebugOverlay = saved.DebugOverlay
			if saved.ScaleIndex >= 0 && saved.ScaleIndex < len(cfg.SettingsMenu.WindowScales) {
				data.ScaleIndex = saved.ScaleIndex
			}
		}

		components.SettingsMenu.SetValue(ent, data)
	}

	ent, _ := components.SettingsMenu.First(e.World)
	return components.SettingsMenu.Get(ent)
}

// OpenSettings opens the settings menu from a specific origin
func OpenSettings(e *ecs.ECS, fromPause bool) {
	settings := GetOrCreateSettingsMenu(e)
	settings.IsOpen = true
	settings.OpenedFromPause = fromPause
	settings.SelectedOption = components.SettingsOptInvertPitch
	settings.ShowingControls = false
}

// IsSettingsOpen returns true if the settings menu is currently open
func IsSettingsOpen(e *ecs.ECS) bool {
	settings := GetOrCreateSettingsMenu(e)
	return settings.IsOpen
}
