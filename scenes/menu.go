package scenes

import (
	"sync"

	cfg "github.com/automoto/voidrunner/config"
	"github.com/automoto/voidrunner/settings"
	"github.com/automoto/voidrunner/systems"
	"github.com/hajimehoshi/ebiten/v2"
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
	settings     *settings.Synchronizer
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, s *settings.Synchronizer) *MenuScene {
	return &MenuScene{sceneChanger: sc, settings: s}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Menu.BackgroundColor)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	createFlightScene := func() interface{} {
		return NewFlightScene(ms.sceneChanger, ms.settings)
	}
	createSettingsScene := func() interface{} {
		return NewSettingsScene(ms.sceneChanger, ms.settings)
	}

	// Audio system (runs first to initialize audio context)
	ms.ecs.AddSystem(systems.UpdateAudio)

	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.sceneChanger, createFlightScene, createSettingsScene))

	ms.ecs.AddRenderer(cfg.Default, systems.DrawMenu)
}
