package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSize    = 20.0
	DefaultPayload = "mRNA"
	DefaultSeed    = 0
	DefaultRuns    = 1
)

// Config describes one simulation run for the CLI. The engine itself
// takes no configuration files; this layer only feeds it.
type Config struct {
	Size    float64     `yaml:"size"`
	Payload string      `yaml:"payload"`
	Target  [3]float64  `yaml:"target"`
	Seed    int64       `yaml:"seed"`
	Runs    int         `yaml:"runs"`
	Sweep   SweepConfig `yaml:"sweep"`
}

// SweepConfig is the size grid for sweep runs.
type SweepConfig struct {
	MinSize float64 `yaml:"min_size"`
	MaxSize float64 `yaml:"max_size"`
	Step    float64 `yaml:"step"`
}

func DefaultConfig() *Config {
	return &Config{
		Size:    DefaultSize,
		Payload: DefaultPayload,
		Target:  [3]float64{1, 1, 1},
		Seed:    DefaultSeed,
		Runs:    DefaultRuns,
		Sweep:   SweepConfig{MinSize: 5, MaxSize: 100, Step: 5},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
