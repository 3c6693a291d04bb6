package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultStars     = 60000
	DefaultMaxDt     = 0.02
	DefaultFrameRate = 60
)

// Config describes one simulation run. The bulge-seed and jet population
// sizes are compile-time constants in the galaxy package; only the star
// budget and runtime knobs live here.
type Config struct {
	// Stars is the morphology star budget, excluding bulge and jets.
	Stars int `yaml:"stars"`

	// Seed pins the generation RNG; 0 means seed from the clock.
	Seed int64 `yaml:"seed"`

	// Morphology forces a recipe by name; empty means a uniform random
	// draw on every reset.
	Morphology string `yaml:"morphology"`

	// Workers caps the kernel worker count; 0 means all cores.
	Workers int `yaml:"workers"`

	// MaxDt clamps the frame delta-time so a stalled frame can never
	// inject a destabilizing step.
	MaxDt float64 `yaml:"max_dt"`

	// FrameRate is the live-view tick rate.
	FrameRate int `yaml:"frame_rate"`
}

func DefaultConfig() *Config {
	return &Config{
		Stars:     DefaultStars,
		MaxDt:     DefaultMaxDt,
		FrameRate: DefaultFrameRate,
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
