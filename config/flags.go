package config

import (
	"flag"
	"os"
)

// Flags holds command-line overrides
// Only flags explicitly set on the command line override lower layers
type Flags struct {
	fs *flag.FlagSet

	Path   string
	UI     string
	Color  string
	Volume int
	Mute   bool
	Debug  bool
}

// RegisterFlags defines the configuration flags on fs
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	fs.StringVar(&f.Path, "config", "", "Config file (default: user config dir)")
	fs.StringVar(&f.UI, "ui", UITcell, "Display: tcell, bubble")
	fs.StringVar(&f.Color, "color", ColorAuto, "Color mode: auto, truecolor, 256, mono")
	fs.IntVar(&f.Volume, "volume", 80, "Volume 0-100")
	fs.BoolVar(&f.Mute, "mute", false, "Run sessions without sound")
	fs.BoolVar(&f.Debug, "debug", false, "Write debug log to logs/")
	return f
}

// apply copies explicitly set flags onto cfg
func (f *Flags) apply(cfg *Config) {
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "ui":
			cfg.UI = f.UI
		case "color":
			cfg.Color = f.Color
		case "volume":
			cfg.Audio.Volume = f.Volume
		case "mute":
			cfg.Audio.Enabled = !f.Mute
		case "debug":
			cfg.Debug = f.Debug
		}
	})
}

// Load builds the effective configuration
// Precedence: defaults < file < environment < flags
// fs must already be parsed
func Load(f *Flags, lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()

	path, required := DefaultPath(), false
	if f != nil && f.Path != "" {
		path, required = f.Path, true
	}
	if err := LoadFile(cfg, path, required); err != nil {
		return nil, err
	}

	if lookup == nil {
		lookup = os.LookupEnv
	}
	LoadEnv(cfg, lookup)

	if f != nil {
		f.apply(cfg)
	}

	if err := cfg.Normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}
