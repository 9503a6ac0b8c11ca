package scenes

import (
	"image/color"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	cfg "github.com/tidegap/floatplane/config"
	"github.com/tidegap/floatplane/systems"
	"github.com/tidegap/floatplane/ui"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the main menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	menuUI       *ui.MenuUI
	once         sync.Once
	shouldFly    bool
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)

	// Settings overlay runs through the ECS
	ms.ecs.Update()

	// The ebitenui menu only takes input while the overlay is closed
	if !systems.IsSettingsOpen(ms.ecs) {
		ms.menuUI.Update()
	}

	if ms.shouldFly {
		ms.sceneChanger.ChangeScene(NewFlightScene(ms.sceneChanger))
		return
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}

	ms.menuUI.UI.Draw(screen)

	// Settings overlay draws over the menu
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.UpdateSettingsMenu)

	ms.ecs.AddRenderer(cfg.UI, systems.DrawSettingsMenu)

	ms.menuUI = ui.NewMenuUI(
		func() { ms.shouldFly = true },
		func() { systems.OpenSettings(ms.ecs, false) },
		func() { os.Exit(0) },
	)
}
