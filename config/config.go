package config

import "image/color"

// Config holds general game configuration
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// ShipConfig contains player ship movement configuration
type ShipConfig struct {
	CruiseSpeed  float64 `yaml:"cruiseSpeed"`  // Pixels per second once spooled up
	SpoolSeconds float32 `yaml:"spoolSeconds"` // Time to reach cruise speed from rest
	StartX       float64 `yaml:"startX"`
	StartY       float64 `yaml:"startY"`
	Heading      float64 `yaml:"heading"` // Radians, 0 points right
	Size         float64 `yaml:"size"`    // Hull length in pixels

	HullColor   color.RGBA `yaml:"-"`
	EngineColor color.RGBA `yaml:"-"`
}

// StarfieldConfig controls the scrolling backdrop in the flight scene
type StarfieldConfig struct {
	Count int     `yaml:"count"`
	Seed  int64   `yaml:"seed"`
	Depth float64 `yaml:"depth"` // Parallax divisor for far stars

	StarColor color.RGBA `yaml:"-"`
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA `yaml:"-"`
	TitleColor        color.RGBA `yaml:"-"`
	TextColorNormal   color.RGBA `yaml:"-"`
	TextColorSelected color.RGBA `yaml:"-"`
	DialogColor       color.RGBA `yaml:"-"`
	TitleY            float64    `yaml:"titleY"`
	MenuStartY        float64    `yaml:"menuStartY"`
	MenuItemHeight    float64    `yaml:"menuItemHeight"`
	MenuItemGap       float64    `yaml:"menuItemGap"`
	QuitPrompt        string     `yaml:"quitPrompt"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool `yaml:"skipMenu"` // Skip menu and go directly to flight
}

// LoggingConfig controls the zerolog setup
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Global configuration instances
var C *Config
var Ship ShipConfig
var Starfield StarfieldConfig
var Menu MenuConfig
var Debug DebugConfig
var Logging LoggingConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	BrightYellow = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	SpaceBlue    = color.RGBA{R: 8, G: 10, B: 24, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "Voidrunner",
	}

	Ship = ShipConfig{
		CruiseSpeed:  90.0,
		SpoolSeconds: 1.5,
		StartX:       80.0,
		StartY:       180.0,
		Heading:      0,
		Size:         18.0,
		HullColor:    White,
		EngineColor:  Orange,
	}

	Starfield = StarfieldConfig{
		Count:     120,
		Seed:      7,
		Depth:     3.0,
		StarColor: color.RGBA{R: 180, G: 190, B: 220, A: 255},
	}

	Menu = MenuConfig{
		BackgroundColor:   SpaceBlue,
		TitleColor:        BrightYellow,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		DialogColor:       BlackOverlay,
		TitleY:            80,
		MenuStartY:        150,
		MenuItemHeight:    24,
		MenuItemGap:       10,
		QuitPrompt:        "Quit to desktop?",
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu: false,
	}

	Logging = LoggingConfig{
		Level: "info",
	}
}
