package config

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

const defaultConfigPath = "configs/puzzles.yaml"

func Default() *PuzzlesConfig {
	cfg := &PuzzlesConfig{}
	applyDefaults(cfg)
	return cfg
}

func LoadPuzzlesConfig() (*PuzzlesConfig, error) {
	path := os.Getenv("PUZZLES_CONFIG_PATH")
	if path == "" {
		path = defaultConfigPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg PuzzlesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *PuzzlesConfig) {
	bag := &cfg.Day02.Bag
	if bag.Red == 0 && bag.Green == 0 && bag.Blue == 0 {
		bag.Red = 12
		bag.Green = 13
		bag.Blue = 14
	}
	if cfg.Day03.Blank == "" {
		cfg.Day03.Blank = "."
	}
	if cfg.Day03.Gear == "" {
		cfg.Day03.Gear = "*"
	}
}

func (c *PuzzlesConfig) Validate() error {
	bag := c.Day02.Bag
	if bag.Red < 0 || bag.Green < 0 || bag.Blue < 0 {
		return fmt.Errorf("day02: negative cube count in bag %+v", bag)
	}

	if err := validateMarker("blank", c.Day03.Blank); err != nil {
		return fmt.Errorf("day03: %w", err)
	}
	if err := validateMarker("gear", c.Day03.Gear); err != nil {
		return fmt.Errorf("day03: %w", err)
	}
	if c.Day03.Blank == c.Day03.Gear {
		return errors.New("day03: blank and gear markers must differ")
	}

	return nil
}

// BlankRune and GearRune assume a validated config.
func (c Day03Config) BlankRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Blank)
	return r
}

func (c Day03Config) GearRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Gear)
	return r
}

func validateMarker(name, marker string) error {
	if utf8.RuneCountInString(marker) != 1 {
		return fmt.Errorf("%s marker must be a single character, got %q", name, marker)
	}
	if marker[0] >= '0' && marker[0] <= '9' {
		return fmt.Errorf("%s marker cannot be a digit, got %q", name, marker)
	}

	return nil
}
