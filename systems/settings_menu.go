package systems

import (
	"fmt"
	"math"

	cfg "github.com/automoto/voidrunner/config"
	"github.com/automoto/voidrunner/settings"
	"github.com/yohamta/donburi/ecs"
)

// SettingsRow identifies one adjustable row of the settings screen
type SettingsRow int

const (
	RowPreset SettingsRow = iota
	RowResolution
	RowTexture
	RowAntiAliasing
	RowWindowMode
	RowVolume
)

// SettingsRows lists rows in display order
var SettingsRows = []SettingsRow{
	RowPreset,
	RowResolution,
	RowTexture,
	RowAntiAliasing,
	RowWindowMode,
	RowVolume,
}

// wrapIndex steps i by direction within [0, n)
func wrapIndex(i, direction, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i+direction)%n + n) % n
}

// AdjustSetting moves the row's value one step in direction (-1 or +1)
func AdjustSetting(s *settings.Synchronizer, row SettingsRow, direction int) error {
	v := s.Values()
	switch row {
	case RowPreset:
		return s.ApplyPreset(cyclePreset(v.Preset, direction))
	case RowResolution:
		return s.SetResolution(wrapIndex(v.Resolution, direction, len(cfg.Settings.Resolutions)))
	case RowTexture:
		return s.SetTextureLevel(settings.TextureLevel(wrapIndex(int(v.Texture), direction, int(settings.TextureEighth)+1)))
	case RowAntiAliasing:
		return s.SetAntiAliasingLevel(settings.AntiAliasing(wrapIndex(int(v.AntiAliasing), direction, int(settings.AA8x)+1)))
	case RowWindowMode:
		s.SetWindowMode(settings.WindowMode(wrapIndex(int(v.WindowMode), direction, int(settings.Windowed)+1)))
		return nil
	case RowVolume:
		return s.SetVolume(stepVolume(v.Volume, direction))
	}
	return fmt.Errorf("settings row %d: %w", int(row), settings.ErrInvalidArgument)
}

// cyclePreset steps through named presets. Leaving Custom goes to the
// first (or last, going backwards) named preset.
func cyclePreset(p settings.QualityPreset, direction int) settings.QualityPreset {
	n := len(settings.NamedPresets)
	if p == settings.PresetCustom {
		if direction < 0 {
			return settings.NamedPresets[n-1]
		}
		return settings.NamedPresets[0]
	}
	return settings.NamedPresets[wrapIndex(int(p), direction, n)]
}

// stepVolume moves volume by one configured step, snapping to the step grid
func stepVolume(current float64, direction int) float64 {
	step := cfg.Settings.VolumeStep
	steps := math.Round(current / step)
	return math.Max(0, math.Min(1, (steps+float64(direction))*step))
}

// SettingLabel returns the row's title and formatted current value
func SettingLabel(s *settings.Synchronizer, row SettingsRow) (string, string) {
	v := s.Values()
	switch row {
	case RowPreset:
		return "Quality", v.Preset.String()
	case RowResolution:
		if v.Resolution >= 0 && v.Resolution < len(cfg.Settings.Resolutions) {
			return "Resolution", cfg.Settings.Resolutions[v.Resolution].String()
		}
		return "Resolution", "Unknown"
	case RowTexture:
		return "Textures", v.Texture.String()
	case RowAntiAliasing:
		return "Anti-Aliasing", v.AntiAliasing.String()
	case RowWindowMode:
		return "Display", v.WindowMode.String()
	case RowVolume:
		return "Volume", formatVolumeBar(v.Volume)
	}
	return "", ""
}

// formatVolumeBar creates a visual volume bar
func formatVolumeBar(volume float64) string {
	percentage := int(math.Round(volume * 100))
	filled := int(math.Round(volume * 10))
	bar := make([]byte, 10)
	for i := range bar {
		if i < filled {
			bar[i] = '|'
		} else {
			bar[i] = '.'
		}
	}
	return fmt.Sprintf("[%s] %d%%", bar, percentage)
}

// SettingsNavigator is the settings screen as driven by keyboard or gamepad
type SettingsNavigator interface {
	MoveSelection(direction int)
	AdjustSelected(direction int)
	Save()
}

// NewUpdateSettingsMenu maps menu actions onto the settings screen.
// Back leaves without saving.
func NewUpdateSettingsMenu(nav SettingsNavigator, onBack func()) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)

		switch {
		case GetAction(input, cfg.ActionMenuBack).JustPressed:
			PlaySFX(e, cfg.SoundMenuSelect)
			onBack()
		case GetAction(input, cfg.ActionMenuUp).JustPressed:
			PlaySFX(e, cfg.SoundMenuNavigate)
			nav.MoveSelection(-1)
		case GetAction(input, cfg.ActionMenuDown).JustPressed:
			PlaySFX(e, cfg.SoundMenuNavigate)
			nav.MoveSelection(1)
		case GetAction(input, cfg.ActionMenuLeft).JustPressed:
			nav.AdjustSelected(-1)
		case GetAction(input, cfg.ActionMenuRight).JustPressed:
			nav.AdjustSelected(1)
		case GetAction(input, cfg.ActionMenuSelect).JustPressed:
			PlaySFX(e, cfg.SoundMenuSelect)
			nav.Save()
		}
	}
}
