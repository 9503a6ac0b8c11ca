package config

import (
	"image/color"

	"github.com/tidegap/floatplane/shared/simconfig"
	"github.com/yohamta/donburi/ecs"
)

// Render layers, drawn in ascending order.
const (
	Background ecs.LayerID = iota
	Default
	Foreground
	UI
)

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// RenderConfig contains the top-down world renderer configuration
type RenderConfig struct {
	PixelsPerMeter float64 // world meters to screen pixels

	// Wave marks on the water surface
	WaveSpacing float64 // meters between wave marks
	WaveLength  float64 // mark length in meters

	// Plane sprite, sizes in meters
	PlaneLength     float64
	PlaneSpan       float64
	TailSpan        float64
	PontoonLength   float64
	SpriteAltScale  float64 // sprite growth per meter of altitude
	MaxSpriteScale  float64
	BankSkewFactor  float64 // horizontal skew per radian of bank
	ShadowMaxHeight float64 // shadow fades out above this altitude
	ShadowOffset    float64 // shadow offset per meter of altitude
}

// CameraConfig contains chase camera behavior configuration
type CameraConfig struct {
	FollowDistance float64 // meters behind the plane
	Height         float64 // meters above the plane
	BankOffset     float64 // lateral offset per radian of bank
	SmoothingRate  float64 // exponential follow rate per second
	MaxStep        float64 // upper bound on the per-frame blend factor
	LookAhead      float64 // meters ahead of the plane for the focus point
}

// CloudConfig contains cloud field configuration
type CloudConfig struct {
	MinSize  float64 // meters
	MaxSize  float64
	MinSpeed float64 // drift meters per second
	MaxSpeed float64
	WindX    float64 // drift direction, normalized at spawn
	WindZ    float64
	Color    color.RGBA
	Parallax float64 // extra screen offset per meter of cloud altitude
}

// HUDConfig contains flight HUD layout configuration
type HUDConfig struct {
	Margin     float64
	Padding    float64
	PanelWidth float64
	LineHeight float64

	BoxColor      color.RGBA
	TextColor     color.RGBA
	WaterColor    color.RGBA // status line while on water
	AirborneColor color.RGBA
	ReadyColor    color.RGBA
	NotReadyColor color.RGBA
}

// MessageConfig contains flight notice popup configuration
type MessageConfig struct {
	DisplayDuration int // frames
	BoxPadding      float64
	BoxColor        color.RGBA
	TextColor       color.RGBA
	TopMargin       float64
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	Title           string
}

// ScreenShakeConfig contains screen shake effect configuration
type ScreenShakeConfig struct {
	ImpactIntensity  float64 // pixels, hard water impact
	ImpactDuration   int     // frames
	TerrainIntensity float64 // pixels, island strike
	TerrainDuration  int     // frames
}

// RippleConfig contains water ripple effect configuration
type RippleConfig struct {
	EntryRadius   float64 // meters, full size of a splash ring
	EntryDuration float32 // seconds
	WakeRadius    float64 // meters, sailing wake ring
	WakeDuration  float32
	WakeInterval  int // frames between wake rings while sailing
	Color         color.RGBA
}

// DebugConfig contains debug overlay configuration
type DebugConfig struct {
	Enabled     bool // can be toggled at runtime
	SkipMenu    bool // jump straight into the flight scene
	LogInterval int  // frames between console state lines
}

// Global configuration instances
var C *Config
var Flight simconfig.FlightTuning
var Water simconfig.WaterTuning
var World simconfig.WorldTuning
var Render RenderConfig
var Camera CameraConfig
var Clouds CloudConfig
var HUD HUDConfig
var Message MessageConfig
var Pause PauseConfig
var Menu MenuConfig
var ScreenShake ScreenShakeConfig
var Ripple RippleConfig
var Debug DebugConfig

// Shared RGBA color constants. Translucent values are alpha-premultiplied.
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}

	DeepWater    = color.RGBA{R: 24, G: 94, B: 156, A: 255}
	ShallowWater = color.RGBA{R: 62, G: 140, B: 196, A: 255}
	WaveWhite    = color.RGBA{R: 36, G: 36, B: 36, A: 36}
	Sand         = color.RGBA{R: 214, G: 189, B: 126, A: 255}
	IslandGreen  = color.RGBA{R: 88, G: 148, B: 78, A: 255}
	IslandRock   = color.RGBA{R: 128, G: 126, B: 114, A: 255}
	CloudWhite   = color.RGBA{R: 92, G: 92, B: 92, A: 92}
	WaterShadow  = color.RGBA{R: 0, G: 20, B: 50, A: 80}
	PlaneBody    = color.RGBA{R: 226, G: 58, B: 48, A: 255}
	PlaneWing    = color.RGBA{R: 242, G: 238, B: 228, A: 255}
	PlanePontoon = color.RGBA{R: 180, G: 180, B: 176, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	// Simulation tuning
	Flight = simconfig.DefaultFlight()
	Water = simconfig.DefaultWater()
	World = simconfig.DefaultWorld()

	// Render Config
	Render = RenderConfig{
		PixelsPerMeter: 3.0,

		WaveSpacing: 22.0,
		WaveLength:  1.6,

		PlaneLength:     7.0,
		PlaneSpan:       10.0,
		TailSpan:        4.0,
		PontoonLength:   5.0,
		SpriteAltScale:  0.004,
		MaxSpriteScale:  1.35,
		BankSkewFactor:  0.5,
		ShadowMaxHeight: 60.0,
		ShadowOffset:    0.35,
	}

	// Camera Config
	Camera = CameraConfig{
		FollowDistance: 25.0,
		Height:         8.0,
		BankOffset:     5.0,
		SmoothingRate:  3.0,
		MaxStep:        0.15,
		LookAhead:      5.0,
	}

	// Cloud Config
	Clouds = CloudConfig{
		MinSize:  5.0,
		MaxSize:  15.0,
		MinSpeed: 0.5,
		MaxSpeed: 2.0,
		WindX:    1.0,
		WindZ:    0.5,
		Color:    CloudWhite,
		Parallax: 0.002,
	}

	// HUD Config
	HUD = HUDConfig{
		Margin:        8.0,
		Padding:       6.0,
		PanelWidth:    168.0,
		LineHeight:    12.0,
		BoxColor:      color.RGBA{R: 0, G: 0, B: 0, A: 150},
		TextColor:     White,
		WaterColor:    LightBlue,
		AirborneColor: LightGreen,
		ReadyColor:    LightGreen,
		NotReadyColor: LightRed,
	}

	// Message Config
	Message = MessageConfig{
		DisplayDuration: 180, // 3 seconds at 60fps
		BoxPadding:      8.0,
		BoxColor:        color.RGBA{R: 0, G: 0, B: 0, A: 200},
		TextColor:       White,
		TopMargin:       40.0,
	}

	// Pause Config
	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Resume", "Settings", "Main Menu"},
	}

	// Menu Config
	Menu = MenuConfig{
		BackgroundColor: color.RGBA{R: 12, G: 30, B: 54, A: 255},
		TitleColor:      BrightOrange,
		Title:           "FLOATPLANE",
	}

	// Screen Shake Config
	ScreenShake = ScreenShakeConfig{
		ImpactIntensity:  4.0,
		ImpactDuration:   10,
		TerrainIntensity: 6.0,
		TerrainDuration:  14,
	}

	// Ripple Config
	Ripple = RippleConfig{
		EntryRadius:   9.0,
		EntryDuration: 1.2,
		WakeRadius:    4.0,
		WakeDuration:  0.8,
		WakeInterval:  24,
		Color:         color.RGBA{R: 157, G: 163, B: 170, A: 170},
	}

	// Debug Config
	Debug = DebugConfig{
		Enabled:     false,
		SkipMenu:    false,
		LogInterval: 60,
	}
}
