package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tidegap/floatplane/components"
	cfg "github.com/tidegap/floatplane/config"
	"github.com/tidegap/floatplane/systems"
	"github.com/tidegap/floatplane/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// FlightScene runs the free flight world
type FlightScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewFlightScene creates a new flight scene
func NewFlightScene(sc SceneChanger) *FlightScene {
	return &FlightScene{sceneChanger: sc}
}

func (fs *FlightScene) Update() {
	fs.once.Do(fs.configure)
	fs.ecs.Update()

	// Pause menu requested a return to the main menu
	pause := systems.GetOrCreatePause(fs.ecs)
	if pause.WantMainMenu {
		pause.WantMainMenu = false
		fs.sceneChanger.ChangeScene(NewMenuScene(fs.sceneChanger))
		return
	}
}

func (fs *FlightScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if fs.ecs == nil {
		return
	}
	fs.ecs.Draw(screen)
}

func (fs *FlightScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	e.AddSystem(systems.UpdateInput)
	// Pause handles Escape before the settings overlay sees it
	e.AddSystem(systems.UpdatePause)

	// Simulation systems, skipped while paused or in settings
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateControls))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateFlight))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateWater))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateDynamics))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateClouds))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateEffects))

	// Overlays run even when paused
	e.AddSystem(systems.UpdateMessage)
	e.AddSystem(systems.UpdateHUD)
	e.AddSystem(systems.UpdateDebug)
	e.AddSystem(systems.UpdateSettingsMenu)

	e.AddRenderer(cfg.Background, systems.DrawWater)
	e.AddRenderer(cfg.Default, systems.DrawIslands)
	e.AddRenderer(cfg.Default, systems.DrawRipples)
	e.AddRenderer(cfg.Default, systems.DrawPlane)
	e.AddRenderer(cfg.Foreground, systems.DrawClouds)
	e.AddRenderer(cfg.UI, systems.DrawHUD)
	e.AddRenderer(cfg.UI, systems.DrawMessage)
	e.AddRenderer(cfg.UI, systems.DrawDebug)
	e.AddRenderer(cfg.UI, systems.DrawPause)
	e.AddRenderer(cfg.UI, systems.DrawSettingsMenu)

	fs.ecs = e

	// Load the level first, everything else is sized from it
	level := factory.CreateLevel(fs.ecs)
	lvl := components.Level.Get(level).Level

	factory.CreateSpace(fs.ecs, int(lvl.WorldSize), int(lvl.WorldSize), 32, 32)

	for _, isl := range lvl.Islands {
		factory.CreateIsland(fs.ecs, isl, lvl.WorldSize)
	}

	factory.CreatePlane(fs.ecs, lvl)
	factory.CreateCamera(fs.ecs, lvl)
	factory.CreateClouds(fs.ecs, lvl.WorldSize)
}
