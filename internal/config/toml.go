// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Pace PaceConfig `toml:"pace"`
}

// PaceConfig maps pacing defaults. Nil fields were not set by that source.
type PaceConfig struct {
	Moves      *int    `toml:"moves" env:"CHESSPACE_MOVES"`
	Lichess    *bool   `toml:"lichess" env:"CHESSPACE_LICHESS"`
	Display    *int    `toml:"display" env:"CHESSPACE_DISPLAY"`
	Opening    *int    `toml:"opening" env:"CHESSPACE_OPENING"`
	Percentage *int    `toml:"percentage" env:"CHESSPACE_PERCENTAGE"`
	Format     *string `toml:"format" env:"CHESSPACE_FORMAT"`
	Plot       *bool   `toml:"plot" env:"CHESSPACE_PLOT"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}

// Merge returns base with every field that override sets replaced.
func Merge(base, override PaceConfig) PaceConfig {
	out := base
	if override.Moves != nil {
		out.Moves = override.Moves
	}
	if override.Lichess != nil {
		out.Lichess = override.Lichess
	}
	if override.Display != nil {
		out.Display = override.Display
	}
	if override.Opening != nil {
		out.Opening = override.Opening
	}
	if override.Percentage != nil {
		out.Percentage = override.Percentage
	}
	if override.Format != nil {
		out.Format = override.Format
	}
	if override.Plot != nil {
		out.Plot = override.Plot
	}
	return out
}
