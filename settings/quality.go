package settings

import "fmt"

// QualityPreset selects a bundle of texture and anti-aliasing levels.
type QualityPreset int

const (
	PresetVeryLow QualityPreset = iota
	PresetLow
	PresetMedium
	PresetHigh
	PresetVeryHigh
	PresetUltra
	// PresetCustom marks sub-options that no longer match a named preset.
	// It is only ever a result, never a source of texture/AA values.
	PresetCustom
)

// TextureLevel is the texture mip limit: 0 renders full resolution and each
// step halves it.
type TextureLevel int

const (
	TextureFull TextureLevel = iota
	TextureHalf
	TextureQuarter
	TextureEighth
)

// AntiAliasing is the multisample level.
type AntiAliasing int

const (
	AAOff AntiAliasing = iota
	AA2x
	AA4x
	AA8x
)

// WindowMode is how the game window occupies the display.
type WindowMode int

const (
	ExclusiveFullscreen WindowMode = iota
	BorderlessFullscreenWindow
	Windowed
)

// QualityPair is the texture/AA combination a named preset stands for.
type QualityPair struct {
	Texture      TextureLevel
	AntiAliasing AntiAliasing
}

var presetTable = [...]QualityPair{
	PresetVeryLow:  {Texture: TextureEighth, AntiAliasing: AAOff},
	PresetLow:      {Texture: TextureQuarter, AntiAliasing: AAOff},
	PresetMedium:   {Texture: TextureHalf, AntiAliasing: AA2x},
	PresetHigh:     {Texture: TextureFull, AntiAliasing: AA2x},
	PresetVeryHigh: {Texture: TextureFull, AntiAliasing: AA4x},
	PresetUltra:    {Texture: TextureFull, AntiAliasing: AA8x},
}

// NamedPresets lists the user-selectable presets in order.
var NamedPresets = []QualityPreset{
	PresetVeryLow,
	PresetLow,
	PresetMedium,
	PresetHigh,
	PresetVeryHigh,
	PresetUltra,
}

// PresetPair returns the table entry for p. ok is false for Custom and for
// values outside the enumeration.
func PresetPair(p QualityPreset) (QualityPair, bool) {
	if p < PresetVeryLow || int(p) >= len(presetTable) {
		return QualityPair{}, false
	}
	return presetTable[p], true
}

func (p QualityPreset) Valid() bool {
	return p >= PresetVeryLow && p <= PresetCustom
}

func (l TextureLevel) Valid() bool {
	return l >= TextureFull && l <= TextureEighth
}

func (a AntiAliasing) Valid() bool {
	return a >= AAOff && a <= AA8x
}

func (m WindowMode) Valid() bool {
	return m >= ExclusiveFullscreen && m <= Windowed
}

// Normalize maps unrecognized window modes to ExclusiveFullscreen.
func (m WindowMode) Normalize() WindowMode {
	if !m.Valid() {
		return ExclusiveFullscreen
	}
	return m
}

// Samples returns the MSAA sample count, 1 when anti-aliasing is off.
func (a AntiAliasing) Samples() int {
	if !a.Valid() {
		return 1
	}
	return 1 << a
}

// Scale returns the render scale implied by the mip limit.
func (l TextureLevel) Scale() float64 {
	if !l.Valid() {
		return 1
	}
	return 1 / float64(int(1)<<l)
}

func (p QualityPreset) String() string {
	switch p {
	case PresetVeryLow:
		return "Very Low"
	case PresetLow:
		return "Low"
	case PresetMedium:
		return "Medium"
	case PresetHigh:
		return "High"
	case PresetVeryHigh:
		return "Very High"
	case PresetUltra:
		return "Ultra"
	case PresetCustom:
		return "Custom"
	}
	return fmt.Sprintf("QualityPreset(%d)", int(p))
}

func (l TextureLevel) String() string {
	switch l {
	case TextureFull:
		return "Full Res"
	case TextureHalf:
		return "Half Res"
	case TextureQuarter:
		return "Quarter Res"
	case TextureEighth:
		return "Eighth Res"
	}
	return fmt.Sprintf("TextureLevel(%d)", int(l))
}

func (a AntiAliasing) String() string {
	switch a {
	case AAOff:
		return "Off"
	case AA2x:
		return "2x"
	case AA4x:
		return "4x"
	case AA8x:
		return "8x"
	}
	return fmt.Sprintf("AntiAliasing(%d)", int(a))
}

func (m WindowMode) String() string {
	switch m {
	case ExclusiveFullscreen:
		return "Fullscreen"
	case BorderlessFullscreenWindow:
		return "Borderless"
	case Windowed:
		return "Windowed"
	}
	return fmt.Sprintf("WindowMode(%d)", int(m))
}
