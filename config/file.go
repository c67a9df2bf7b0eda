package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the override file layout. Sections left out of the
// file keep their built-in defaults.
type fileConfig struct {
	Game      *Config          `yaml:"game"`
	Ship      *ShipConfig      `yaml:"ship"`
	Starfield *StarfieldConfig `yaml:"starfield"`
	Menu      *MenuConfig      `yaml:"menu"`
	Settings  *SettingsConfig  `yaml:"settings"`
	Audio     *AudioConfig     `yaml:"audio"`
	Input     *InputConfig     `yaml:"input"`
	Debug     *DebugConfig     `yaml:"debug"`
	Logging   *LoggingConfig   `yaml:"logging"`
}

// LoadFile applies overrides from a YAML file on top of the defaults.
// An empty path is a no-op.
func LoadFile(path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := Apply(data); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// Apply decodes YAML overrides and installs them into the global config.
// Nothing is installed if decoding or validation fails.
func Apply(data []byte) error {
	game := *C
	ship := Ship
	starfield := Starfield
	menu := Menu
	settings := Settings
	audio := Audio
	input := Input
	debug := Debug
	logging := Logging

	fc := fileConfig{
		Game:      &game,
		Ship:      &ship,
		Starfield: &starfield,
		Menu:      &menu,
		Settings:  &settings,
		Audio:     &audio,
		Input:     &input,
		Debug:     &debug,
		Logging:   &logging,
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if err := validate(&game, &ship, &settings, &audio, &input); err != nil {
		return err
	}

	C = &game
	Ship = ship
	Starfield = starfield
	Menu = menu
	Settings = settings
	Audio = audio
	Input = input
	Debug = debug
	Logging = logging
	return nil
}

func validate(game *Config, ship *ShipConfig, settings *SettingsConfig, audio *AudioConfig, input *InputConfig) error {
	var errs []error
	if game.Width <= 0 || game.Height <= 0 {
		errs = append(errs, fmt.Errorf("game size %dx%d must be positive", game.Width, game.Height))
	}
	if ship.CruiseSpeed < 0 {
		errs = append(errs, fmt.Errorf("ship cruise speed %v must not be negative", ship.CruiseSpeed))
	}
	if ship.SpoolSeconds < 0 {
		errs = append(errs, fmt.Errorf("ship spool time %v must not be negative", ship.SpoolSeconds))
	}
	if settings.AppName == "" {
		errs = append(errs, errors.New("settings app name must not be empty"))
	}
	if len(settings.Resolutions) == 0 {
		errs = append(errs, errors.New("at least one resolution is required"))
	}
	for i, r := range settings.Resolutions {
		if r.Width <= 0 || r.Height <= 0 {
			errs = append(errs, fmt.Errorf("resolution %d: %dx%d must be positive", i, r.Width, r.Height))
		}
	}
	if settings.VolumeStep <= 0 || settings.VolumeStep > 1 {
		errs = append(errs, fmt.Errorf("volume step %v must be in (0, 1]", settings.VolumeStep))
	}
	if audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("sample rate %d must be positive", audio.SampleRate))
	}
	if input.AnalogDeadzone < 0 || input.AnalogDeadzone >= 1 {
		errs = append(errs, fmt.Errorf("analog deadzone %v must be in [0, 1)", input.AnalogDeadzone))
	}
	return errors.Join(errs...)
}
