// Package prefs provides the durable key-value store that user settings
// are persisted to.
package prefs

// Key names one persisted setting. The set of keys is closed.
type Key string

const (
	KeyQualityPreset Key = "QualityPreset"
	KeyResolution    Key = "Resolution"
	KeyTexture       Key = "Texture"
	KeyAntiAliasing  Key = "AntiAliasing"
	KeyScreenMode    Key = "ScreenMode"
	KeyVolume        Key = "Volume"
)

// Keys lists every key in a stable order.
var Keys = []Key{
	KeyQualityPreset,
	KeyResolution,
	KeyTexture,
	KeyAntiAliasing,
	KeyScreenMode,
	KeyVolume,
}

// Store is a durable map from setting key to scalar value. A missing key is
// reported by Has and is never an error; getters return ok=false for it.
type Store interface {
	Has(key Key) bool
	GetInt(key Key) (int, bool)
	GetFloat(key Key) (float64, bool)
	SetInt(key Key, v int) error
	SetFloat(key Key, v float64) error
}
