package systems

import (
	"encoding/json"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/tidegap/floatplane/components"
	cfg "github.com/tidegap/floatplane/config"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	InvertPitch  bool `json:"invertPitch"`
	ScreenShake  bool `json:"screenShake"`
	ScaleIndex   int  `json:"scaleIndex"`
	DebugOverlay bool `json:"debugOverlay"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// currentSettings is the last loaded or saved snapshot. Scenes each carry
// their own world, so fresh settings singletons initialize from it.
var currentSettings *SavedSettings

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "floatplane",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings saves the current settings from the SettingsMenuData component
func SaveCurrentSettings(s *components.SettingsMenuData) {
	saved := &SavedSettings{
		InvertPitch:  s.InvertPitch,
		ScreenShake:  s.ScreenShake,
		ScaleIndex:   s.ScaleIndex,
		DebugOverlay: s.DebugOverlay,
	}
	currentSettings = saved
	_ = SaveSettings(saved)
}

// CurrentSavedSettings returns the last loaded or saved snapshot, nil before
// any load.
func CurrentSavedSettings() *SavedSettings {
	return currentSettings
}

// ApplySavedSettingsGlobal applies settings during startup, before any scene
// exists.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	currentSettings = saved

	cfg.Debug.Enabled = saved.DebugOverlay

	if saved.ScaleIndex >= 0 && saved.ScaleIndex < len(cfg.SettingsMenu.WindowScales) {
		applyWindowScale(saved.ScaleIndex)
	}
}

// applyWindowScale resizes the window to one of the scale presets
func applyWindowScale(idx int) {
	scale := cfg.SettingsMenu.WindowScales[idx]
	ebiten.SetWindowSize(cfg.C.Width*scale.Factor, cfg.C.Height*scale.Factor)
}
