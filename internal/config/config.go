package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth          = 100
	DefaultHeight         = 50
	DefaultBoundary       = "wrap"
	DefaultMaxGenerations = 1000
	DefaultDensity        = 0.3
)

// Config holds board and analysis settings, loadable from YAML.
type Config struct {
	Board    BoardConfig    `yaml:"board"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Random   RandomConfig   `yaml:"random"`
}

type BoardConfig struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Boundary string `yaml:"boundary"` // wrap or fixed
}

type AnalysisConfig struct {
	MaxGenerations int `yaml:"max_generations"`
	// Placement anchor for seeded patterns; negative means board center.
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type RandomConfig struct {
	Density float64 `yaml:"density"`
	Seed    int64   `yaml:"seed"`
}

func DefaultConfig() *Config {
	return &Config{
		Board: BoardConfig{
			Width:    DefaultWidth,
			Height:   DefaultHeight,
			Boundary: DefaultBoundary,
		},
		Analysis: AnalysisConfig{
			MaxGenerations: DefaultMaxGenerations,
			X:              -1,
			Y:              -1,
		},
		Random: RandomConfig{
			Density: DefaultDensity,
		},
	}
}

// Load reads a YAML config from path on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as YAML to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects settings the engine cannot run with.
func (c *Config) Validate() error {
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		return fmt.Errorf("config: board dimensions must be positive, got %dx%d", c.Board.Width, c.Board.Height)
	}
	if c.Board.Boundary != "wrap" && c.Board.Boundary != "fixed" {
		return fmt.Errorf("config: boundary must be wrap or fixed, got %q", c.Board.Boundary)
	}
	if c.Analysis.MaxGenerations <= 0 {
		return fmt.Errorf("config: max_generations must be positive, got %d", c.Analysis.MaxGenerations)
	}
	if c.Random.Density < 0 || c.Random.Density > 1 {
		return fmt.Errorf("config: density must be in [0, 1], got %f", c.Random.Density)
	}
	return nil
}
