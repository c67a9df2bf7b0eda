package systems

import (
	cfg "github.com/automoto/voidrunner/config"
	"github.com/automoto/voidrunner/logging"
	"github.com/automoto/voidrunner/settings"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// Render quality applied by the flight renderer
var (
	globalRenderScale = 1.0
	globalAntialias   = true
)

// RenderScale returns the offscreen scale implied by the texture level
func RenderScale() float64 {
	return globalRenderScale
}

// Antialias reports whether vector drawing should be anti-aliased
func Antialias() bool {
	return globalAntialias
}

// DisplayEngine applies settings to the ebiten window, renderer and audio
type DisplayEngine struct {
	mode       settings.WindowMode
	resolution int
	log        zerolog.Logger
}

var _ settings.Engine = (*DisplayEngine)(nil)

// NewDisplayEngine creates an engine in the window's current mode
func NewDisplayEngine() *DisplayEngine {
	mode := settings.Windowed
	if ebiten.IsFullscreen() {
		mode = settings.ExclusiveFullscreen
	}
	return &DisplayEngine{
		mode: mode,
		log:  logging.WithComponent("display"),
	}
}

func (d *DisplayEngine) SetTextureLevel(level settings.TextureLevel) {
	globalRenderScale = level.Scale()
}

func (d *DisplayEngine) SetAntiAliasing(level settings.AntiAliasing) {
	globalAntialias = level != settings.AAOff
}

// SetResolution resizes the window. Fullscreen modes keep the display size
// and only remember the index for when the window is restored.
func (d *DisplayEngine) SetResolution(index int) {
	if index < 0 || index >= len(cfg.Settings.Resolutions) {
		d.log.Warn().Int("index", index).Msg("resolution index out of range")
		return
	}
	d.resolution = index
	if d.mode == settings.Windowed {
		res := cfg.Settings.Resolutions[index]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
}

func (d *DisplayEngine) SetWindowMode(mode settings.WindowMode) {
	d.mode = mode
	switch mode {
	case settings.BorderlessFullscreenWindow:
		ebiten.SetFullscreen(false)
		ebiten.SetWindowDecorated(false)
		w, h := monitorSize()
		ebiten.SetWindowPosition(0, 0)
		ebiten.SetWindowSize(w, h)
	case settings.Windowed:
		ebiten.SetFullscreen(false)
		ebiten.SetWindowDecorated(true)
		d.SetResolution(d.resolution)
	default:
		ebiten.SetWindowDecorated(true)
		ebiten.SetFullscreen(true)
	}
	d.log.Debug().Stringer("mode", mode).Msg("window mode applied")
}

func (d *DisplayEngine) SetVolume(volume float64) {
	SetMasterVolume(volume)
}

// ResolutionSizes returns the configured resolutions as settings sizes
func ResolutionSizes() []settings.Size {
	sizes := make([]settings.Size, len(cfg.Settings.Resolutions))
	for i, r := range cfg.Settings.Resolutions {
		sizes[i] = settings.Size{Width: r.Width, Height: r.Height}
	}
	return sizes
}

// CurrentDisplaySize returns the size of the monitor the window is on
func CurrentDisplaySize() settings.Size {
	w, h := monitorSize()
	return settings.Size{Width: w, Height: h}
}

// monitorSize falls back to the logical screen size when no monitor is
// known yet
func monitorSize() (int, int) {
	if m := ebiten.Monitor(); m != nil {
		return m.Size()
	}
	return cfg.C.Width, cfg.C.Height
}
