package scenes

import (
	"sync"

	cfg "github.com/automoto/voidrunner/config"
	"github.com/automoto/voidrunner/settings"
	"github.com/automoto/voidrunner/systems"
	"github.com/automoto/voidrunner/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SettingsScene shows the ebitenui settings screen
type SettingsScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	settings     *settings.Synchronizer
	settingsUI   *ui.SettingsUI
	once         sync.Once
	shouldGoBack bool
}

// NewSettingsScene creates a new settings scene
func NewSettingsScene(sc SceneChanger, s *settings.Synchronizer) *SettingsScene {
	return &SettingsScene{sceneChanger: sc, settings: s}
}

func (ss *SettingsScene) Update() {
	ss.once.Do(ss.configure)

	ss.ecs.Update()
	ss.settingsUI.Update()

	if ss.shouldGoBack {
		ss.sceneChanger.ChangeScene(NewMenuScene(ss.sceneChanger, ss.settings))
	}
}

func (ss *SettingsScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Menu.BackgroundColor)

	if ss.ecs == nil {
		return
	}
	ss.settingsUI.UI.Draw(screen)
}

func (ss *SettingsScene) configure() {
	ss.ecs = ecs.NewECS(donburi.NewWorld())

	goBack := func() { ss.shouldGoBack = true }
	ss.settingsUI = ui.NewSettingsUI(
		ss.settings,
		func() { systems.PlaySFX(ss.ecs, cfg.SoundMenuNavigate) },
		goBack,
	)

	ss.ecs.AddSystem(systems.UpdateAudio)
	ss.ecs.AddSystem(systems.UpdateInput)
	ss.ecs.AddSystem(systems.NewUpdateSettingsMenu(ss.settingsUI, goBack))
}
