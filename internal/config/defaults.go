package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultConfig returns the hardcoded fallback configuration, used when
// even the embedded default YAML fails to parse.
func DefaultConfig() Config {
	return Config{
		Board: BoardConfig{
			Width:   10,
			Height:  20,
			Backend: "dense",
		},
		Gravity: GravityConfig{
			BaseMs: 800,
			StepMs: 60,
			MinMs:  100,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
