// Package config loads ambient settings: display flavor, audio output, logging
// Session length and the cleaning sound are fixed and not configurable
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Display flavors
const (
	UITcell  = "tcell"
	UIBubble = "bubble"
)

// Color modes
const (
	ColorAuto      = "auto"
	Color256       = "256"
	ColorTrueColor = "truecolor"
	ColorMono      = "mono"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "SPEAKER_CLEANER_"

// FileName is the config file looked up under the user config dir
const FileName = "config.yaml"

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	UI    string      `yaml:"ui"`
	Color string      `yaml:"color"`
	Debug bool        `yaml:"debug"`
	Audio AudioConfig `yaml:"audio"`
}

type AudioConfig struct {
	Enabled    bool `yaml:"enabled"`
	Volume     int  `yaml:"volume"`      // 0-100
	SampleRate int  `yaml:"sample_rate"` // Hz
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		UI:    UITcell,
		Color: ColorAuto,
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     80,
			SampleRate: 48000,
		},
	}
}

// DefaultPath returns the config file location under the user config dir
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "speaker-cleaner", FileName)
}

// LoadFile overlays a YAML file on cfg
// A missing file is not an error unless required is set
func LoadFile(cfg *Config, path string, required bool) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

// LoadEnv overlays environment variables on cfg
// Unparseable values are ignored
func LoadEnv(cfg *Config, lookup func(string) (string, bool)) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	if v, ok := lookup(EnvPrefix + "UI"); ok && v != "" {
		cfg.UI = strings.ToLower(v)
	}
	if v, ok := lookup(EnvPrefix + "COLOR"); ok && v != "" {
		cfg.Color = strings.ToLower(v)
	}
	if v, ok := lookup(EnvPrefix + "DEBUG"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Debug = b
		}
	}
	if v, ok := lookup(EnvPrefix + "AUDIO_ENABLED"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Audio.Enabled = b
		}
	}
	if v, ok := lookup(EnvPrefix + "VOLUME"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Audio.Volume = n
		}
	}
	if v, ok := lookup(EnvPrefix + "SAMPLE_RATE"); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Audio.SampleRate = n
		}
	}
}

// Normalize clamps ranges and rejects unknown enum values
func (c *Config) Normalize() error {
	switch c.UI {
	case UITcell, UIBubble:
	case "":
		c.UI = UITcell
	default:
		return fmt.Errorf("%w: ui %q (want %s or %s)", ErrInvalid, c.UI, UITcell, UIBubble)
	}

	switch c.Color {
	case ColorAuto, Color256, ColorTrueColor, ColorMono:
	case "":
		c.Color = ColorAuto
	case "true", "24bit":
		c.Color = ColorTrueColor
	default:
		return fmt.Errorf("%w: color %q", ErrInvalid, c.Color)
	}

	if c.Audio.Volume < 0 {
		c.Audio.Volume = 0
	} else if c.Audio.Volume > 100 {
		c.Audio.Volume = 100
	}

	if c.Audio.SampleRate <= 0 {
		c.Audio.SampleRate = Default().Audio.SampleRate
	}
	return nil
}

// VolumeFraction returns the volume as 0.0-1.0
func (a AudioConfig) VolumeFraction() float64 {
	return float64(a.Volume) / 100.0
}
