package config

import "fmt"

// Resolution represents a display resolution option
type Resolution struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Label  string `yaml:"label"`
}

// SettingsConfig contains settings screen and persistence configuration
type SettingsConfig struct {
	AppName     string       `yaml:"appName"` // gdata application directory
	Resolutions []Resolution `yaml:"resolutions"`
	VolumeStep  float64      `yaml:"volumeStep"`
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		AppName: "voidrunner",
		Resolutions: []Resolution{
			{Width: 1280, Height: 720, Label: "1280 x 720"},
			{Width: 1600, Height: 900, Label: "1600 x 900"},
			{Width: 1920, Height: 1080, Label: "1920 x 1080"},
			{Width: 2560, Height: 1440, Label: "2560 x 1440"},
		},
		VolumeStep: 0.1,
	}
}

// String returns the menu label, falling back to "W x H"
func (r Resolution) String() string {
	if r.Label != "" {
		return r.Label
	}
	return fmt.Sprintf("%d x %d", r.Width, r.Height)
}
