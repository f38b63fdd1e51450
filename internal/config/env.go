package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// LoadEnv reads CHESSPACE_* overrides from the environment. Variables that are
// not set stay nil in the result.
func LoadEnv() (PaceConfig, error) {
	var cfg PaceConfig
	if err := env.Parse(&cfg); err != nil {
		return PaceConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Load merges the config file at path with environment overrides.
func Load(path string) (PaceConfig, error) {
	fileCfg, err := LoadConfig(path)
	if err != nil {
		return PaceConfig{}, err
	}
	envCfg, err := LoadEnv()
	if err != nil {
		return PaceConfig{}, err
	}
	return Merge(fileCfg.Pace, envCfg), nil
}
