package main

import (
	"flag"
	"image"

	"github.com/automoto/voidrunner/config"
	"github.com/automoto/voidrunner/fonts"
	"github.com/automoto/voidrunner/logging"
	"github.com/automoto/voidrunner/scenes"
	"github.com/automoto/voidrunner/settings"
	"github.com/automoto/voidrunner/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(s *settings.Synchronizer) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewFlightScene(g, s)
	} else {
		g.scene = scenes.NewMenuScene(g, s)
	}

	return g
}

func (g *Game) Update() error {
	if systems.QuitRequested() {
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config override file")
	skipMenu := flag.Bool("skipmenu", false, "start directly in the flight scene")
	logLevel := flag.String("log-level", "", "log level (debug, info, warn, error)")
	flag.Parse()

	configErr := config.LoadFile(*configPath)

	level := config.Logging.Level
	if *logLevel != "" {
		level = *logLevel
	}
	logging.Configure(logging.Config{Level: level})
	log := logging.WithComponent("main")

	if configErr != nil {
		log.Fatal().Err(configErr).Str("path", *configPath).Msg("failed to load config")
	}
	if *skipMenu {
		config.Debug.SkipMenu = true
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatal().Err(err).Msg("failed to load fonts")
	}

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Load saved settings and push them to the engine before the first frame
	store := systems.OpenPreferences()
	s := systems.LoadSettings(store, systems.NewDisplayEngine())
	log.Info().Str("preset", s.Preset().String()).Msg("settings loaded")

	if err := ebiten.RunGame(NewGame(s)); err != nil {
		log.Fatal().Err(err).Msg("game exited with error")
	}
}
