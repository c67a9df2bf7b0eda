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

// FlightScene flies the player ship over a parallax starfield
type FlightScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	settings     *settings.Synchronizer
	once         sync.Once
}

// NewFlightScene creates a new flight scene
func NewFlightScene(sc SceneChanger, s *settings.Synchronizer) *FlightScene {
	return &FlightScene{sceneChanger: sc, settings: s}
}

func (fs *FlightScene) Update() {
	fs.once.Do(fs.configure)
	fs.ecs.Update()
}

func (fs *FlightScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.SpaceBlue)

	if fs.ecs == nil {
		return
	}
	fs.ecs.Draw(screen)
}

func (fs *FlightScene) configure() {
	fs.ecs = ecs.NewECS(donburi.NewWorld())

	systems.SpawnStarfield(fs.ecs)
	systems.SpawnShip(fs.ecs)

	createMenuScene := func() interface{} {
		return NewMenuScene(fs.sceneChanger, fs.settings)
	}

	fs.ecs.AddSystem(systems.UpdateAudio)
	fs.ecs.AddSystem(systems.UpdateInput)
	fs.ecs.AddSystem(systems.UpdateShip)
	fs.ecs.AddSystem(systems.UpdateStarfield)
	fs.ecs.AddSystem(systems.NewUpdateFlight(fs.sceneChanger, createMenuScene))

	fs.ecs.AddRenderer(cfg.Default, systems.DrawFlight)
}
