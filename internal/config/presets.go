package config

import "sort"

// Presets are named ready-made configurations for common analysis setups.
var Presets = map[string]*Config{
	"quick": {
		Board:    BoardConfig{Width: 50, Height: 50, Boundary: "wrap"},
		Analysis: AnalysisConfig{MaxGenerations: 200, X: -1, Y: -1},
		Random:   RandomConfig{Density: 0.3},
	},
	"standard": {
		Board:    BoardConfig{Width: 100, Height: 50, Boundary: "wrap"},
		Analysis: AnalysisConfig{MaxGenerations: 1000, X: -1, Y: -1},
		Random:   RandomConfig{Density: 0.3},
	},
	"deep": {
		Board:    BoardConfig{Width: 200, Height: 200, Boundary: "wrap"},
		Analysis: AnalysisConfig{MaxGenerations: 5000, X: -1, Y: -1},
		Random:   RandomConfig{Density: 0.3},
	},
	"walled": {
		Board:    BoardConfig{Width: 100, Height: 50, Boundary: "fixed"},
		Analysis: AnalysisConfig{MaxGenerations: 1000, X: -1, Y: -1},
		Random:   RandomConfig{Density: 0.3},
	},
	"soup": {
		Board:    BoardConfig{Width: 150, Height: 150, Boundary: "wrap"},
		Analysis: AnalysisConfig{MaxGenerations: 2000, X: -1, Y: -1},
		Random:   RandomConfig{Density: 0.5, Seed: 42},
	},
}

// GetPreset returns a copy of the named preset, or nil if unknown.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

// ListPresets returns the preset names, sorted.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
