package config

// WindowScale represents a window size option, as a multiple of the
// internal 640x360 render resolution
type WindowScale struct {
	Factor int
	Label  string
}

// SettingsMenuConfig contains settings screen configuration
type SettingsMenuConfig struct {
	WindowScales      []WindowScale
	DefaultScaleIndex int
}

// SettingsMenu is the global settings menu configuration
var SettingsMenu SettingsMenuConfig

func init() {
	SettingsMenu = SettingsMenuConfig{
		WindowScales: []WindowScale{
			{Factor: 1, Label: "640 x 360"},
			{Factor: 2, Label: "1280 x 720"},
			{Factor: 3, Label: "1920 x 1080"},
			{Factor: 4, Label: "2560 x 1440"},
		},
		DefaultScaleIndex: 1,
	}
}
