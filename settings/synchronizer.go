// Package settings keeps the quality preset consistent with the texture and
// anti-aliasing levels it implies, and persists every user setting to a
// prefs.Store.
package settings

import (
	"errors"
	"fmt"
	"math"

	"github.com/automoto/voidrunner/logging"
	"github.com/automoto/voidrunner/prefs"
	"github.com/rs/zerolog"
)

// ErrInvalidArgument is returned when a value lies outside its enumeration
// or range. The synchronizer state is left unchanged.
var ErrInvalidArgument = errors.New("invalid argument")

// Defaults used when a key is missing from the store.
const (
	DefaultPreset     = PresetVeryHigh
	DefaultWindowMode = ExclusiveFullscreen
	DefaultVolume     = 1.0
)

// Engine defaults for texture and anti-aliasing when no named preset applies.
const (
	DefaultTexture      = TextureFull
	DefaultAntiAliasing = AA4x
)

// Values is the in-memory state of every user setting.
type Values struct {
	Preset       QualityPreset
	Resolution   int
	Texture      TextureLevel
	AntiAliasing AntiAliasing
	WindowMode   WindowMode
	Volume       float64
}

// Engine receives effective setting changes and applies them to the display,
// renderer and audio output.
type Engine interface {
	SetTextureLevel(level TextureLevel)
	SetAntiAliasing(level AntiAliasing)
	SetResolution(index int)
	SetWindowMode(mode WindowMode)
	SetVolume(volume float64)
}

// Options configures a Synchronizer.
type Options struct {
	// ResolutionCount is the number of selectable resolutions. Zero disables
	// range checking of SetResolution.
	ResolutionCount int
	// DefaultResolution is used when the store has no resolution, usually
	// BestResolutionIndex of the current display mode.
	DefaultResolution int
	// Engine is optional.
	Engine Engine
}

// Synchronizer owns the settings state. It is not safe for concurrent use;
// all calls are expected from the game's update loop.
type Synchronizer struct {
	store  prefs.Store
	opts   Options
	values Values
	log    zerolog.Logger
}

// NewSynchronizer creates a synchronizer holding documented defaults.
// Call Load to pick up persisted values.
func NewSynchronizer(store prefs.Store, opts Options) *Synchronizer {
	s := &Synchronizer{
		store: store,
		opts:  opts,
		log:   logging.WithComponent("settings"),
	}
	s.values = s.defaults()
	return s
}

func (s *Synchronizer) defaults() Values {
	pair := presetTable[DefaultPreset]
	return Values{
		Preset:       DefaultPreset,
		Resolution:   s.defaultResolution(),
		Texture:      pair.Texture,
		AntiAliasing: pair.AntiAliasing,
		WindowMode:   DefaultWindowMode,
		Volume:       DefaultVolume,
	}
}

func (s *Synchronizer) defaultResolution() int {
	idx := s.opts.DefaultResolution
	if idx < 0 || (s.opts.ResolutionCount > 0 && idx >= s.opts.ResolutionCount) {
		return 0
	}
	return idx
}

// Values returns a copy of the current settings.
func (s *Synchronizer) Values() Values {
	return s.values
}

// Preset returns the current quality preset.
func (s *Synchronizer) Preset() QualityPreset {
	return s.values.Preset
}

// ApplyPreset selects p. A named preset overwrites texture and anti-aliasing
// with its table pair; Custom only records the preset value.
func (s *Synchronizer) ApplyPreset(p QualityPreset) error {
	if !p.Valid() {
		return fmt.Errorf("quality preset %d: %w", int(p), ErrInvalidArgument)
	}
	if pair, ok := PresetPair(p); ok {
		s.values.Texture = pair.Texture
		s.values.AntiAliasing = pair.AntiAliasing
		if s.opts.Engine != nil {
			s.opts.Engine.SetTextureLevel(pair.Texture)
			s.opts.Engine.SetAntiAliasing(pair.AntiAliasing)
		}
	}
	s.values.Preset = p
	return nil
}

// SetTextureLevel changes the texture level and marks the preset Custom.
func (s *Synchronizer) SetTextureLevel(level TextureLevel) error {
	if !level.Valid() {
		return fmt.Errorf("texture level %d: %w", int(level), ErrInvalidArgument)
	}
	s.values.Texture = level
	s.values.Preset = PresetCustom
	if s.opts.Engine != nil {
		s.opts.Engine.SetTextureLevel(level)
	}
	return nil
}

// SetAntiAliasingLevel changes the anti-aliasing level and marks the preset Custom.
func (s *Synchronizer) SetAntiAliasingLevel(level AntiAliasing) error {
	if !level.Valid() {
		return fmt.Errorf("anti-aliasing level %d: %w", int(level), ErrInvalidArgument)
	}
	s.values.AntiAliasing = level
	s.values.Preset = PresetCustom
	if s.opts.Engine != nil {
		s.opts.Engine.SetAntiAliasing(level)
	}
	return nil
}

// SetResolution selects a resolution by index.
func (s *Synchronizer) SetResolution(index int) error {
	if !s.validResolution(index) {
		return fmt.Errorf("resolution index %d: %w", index, ErrInvalidArgument)
	}
	s.values.Resolution = index
	if s.opts.Engine != nil {
		s.opts.Engine.SetResolution(index)
	}
	return nil
}

func (s *Synchronizer) validResolution(index int) bool {
	if index < 0 {
		return false
	}
	return s.opts.ResolutionCount == 0 || index < s.opts.ResolutionCount
}

// SetWindowMode sets the window mode. Unrecognized modes become
// ExclusiveFullscreen.
func (s *Synchronizer) SetWindowMode(mode WindowMode) {
	mode = mode.Normalize()
	s.values.WindowMode = mode
	if s.opts.Engine != nil {
		s.opts.Engine.SetWindowMode(mode)
	}
}

// SetVolume sets the master volume, clamped to [0, 1].
func (s *Synchronizer) SetVolume(volume float64) error {
	if math.IsNaN(volume) {
		return fmt.Errorf("volume NaN: %w", ErrInvalidArgument)
	}
	volume = clampVolume(volume)
	s.values.Volume = volume
	if s.opts.Engine != nil {
		s.opts.Engine.SetVolume(volume)
	}
	return nil
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ApplyAll pushes every current value to the engine.
func (s *Synchronizer) ApplyAll() {
	e := s.opts.Engine
	if e == nil {
		return
	}
	e.SetWindowMode(s.values.WindowMode)
	e.SetResolution(s.values.Resolution)
	e.SetTextureLevel(s.values.Texture)
	e.SetAntiAliasing(s.values.AntiAliasing)
	e.SetVolume(s.values.Volume)
}

// Save writes every setting to the store under its fixed key.
func (s *Synchronizer) Save() error {
	v := s.values
	ints := []struct {
		key   prefs.Key
		value int
	}{
		{prefs.KeyQualityPreset, int(v.Preset)},
		{prefs.KeyResolution, v.Resolution},
		{prefs.KeyTexture, int(v.Texture)},
		{prefs.KeyAntiAliasing, int(v.AntiAliasing)},
		{prefs.KeyScreenMode, int(v.WindowMode)},
	}
	for _, w := range ints {
		if err := s.store.SetInt(w.key, w.value); err != nil {
			return fmt.Errorf("save %s: %w", w.key, err)
		}
	}
	if err := s.store.SetFloat(prefs.KeyVolume, v.Volume); err != nil {
		return fmt.Errorf("save %s: %w", prefs.KeyVolume, err)
	}
	s.log.Debug().
		Stringer("preset", v.Preset).
		Int("resolution", v.Resolution).
		Stringer("texture", v.Texture).
		Stringer("aa", v.AntiAliasing).
		Stringer("windowMode", v.WindowMode).
		Float64("volume", v.Volume).
		Msg("settings saved")
	return nil
}

// Load replaces the in-memory state with the stored values, substituting
// defaults for missing or out-of-range entries. It never fails.
func (s *Synchronizer) Load() {
	v := s.defaults()

	if p, ok := s.store.GetInt(prefs.KeyQualityPreset); ok {
		if QualityPreset(p).Valid() {
			v.Preset = QualityPreset(p)
		} else {
			s.discard(prefs.KeyQualityPreset, p)
		}
	}

	// Missing sub-options follow the loaded preset when it is a named one.
	if pair, ok := PresetPair(v.Preset); ok {
		v.Texture = pair.Texture
		v.AntiAliasing = pair.AntiAliasing
	} else {
		v.Texture = DefaultTexture
		v.AntiAliasing = DefaultAntiAliasing
	}

	if t, ok := s.store.GetInt(prefs.KeyTexture); ok {
		if TextureLevel(t).Valid() {
			v.Texture = TextureLevel(t)
		} else {
			s.discard(prefs.KeyTexture, t)
		}
	}
	if a, ok := s.store.GetInt(prefs.KeyAntiAliasing); ok {
		if AntiAliasing(a).Valid() {
			v.AntiAliasing = AntiAliasing(a)
		} else {
			s.discard(prefs.KeyAntiAliasing, a)
		}
	}
	// A named preset only stands if the sub-options still match its pair.
	if pair, ok := PresetPair(v.Preset); ok && pair != (QualityPair{Texture: v.Texture, AntiAliasing: v.AntiAliasing}) {
		s.log.Warn().Stringer("preset", v.Preset).Msg("stored sub-options differ from preset, using Custom")
		v.Preset = PresetCustom
	}
	if r, ok := s.store.GetInt(prefs.KeyResolution); ok {
		if s.validResolution(r) {
			v.Resolution = r
		} else {
			s.discard(prefs.KeyResolution, r)
		}
	}
	if m, ok := s.store.GetInt(prefs.KeyScreenMode); ok {
		v.WindowMode = WindowMode(m).Normalize()
	}
	if vol, ok := s.store.GetFloat(prefs.KeyVolume); ok {
		if math.IsNaN(vol) {
			s.discard(prefs.KeyVolume, vol)
		} else {
			v.Volume = clampVolume(vol)
		}
	}

	s.values = v
}

func (s *Synchronizer) discard(key prefs.Key, value any) {
	s.log.Warn().Str("key", string(key)).Interface("value", value).Msg("stored preference out of range, using default")
}
