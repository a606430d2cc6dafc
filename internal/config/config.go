// Package config provides YAML-based gameplay tuning and difficulty
// presets for the tetris platform.
package config

import (
	"fmt"
	"time"

	"github.com/sakataka/tetris-game2-sub000/internal/tetris"
)

// Config contains all tuning for a tetris session.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Gravity GravityConfig `yaml:"gravity"`
}

// BoardConfig sets the playfield dimensions and storage backend.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// Backend selects the board representation: "dense" or "bitmask".
	Backend string `yaml:"backend"`
}

// GravityConfig defines the automatic fall cadence in milliseconds. The
// interval shrinks by StepMs per level past the first, never below MinMs.
type GravityConfig struct {
	BaseMs int `yaml:"base_ms"`
	StepMs int `yaml:"step_ms"`
	MinMs  int `yaml:"min_ms"`
}

// Interval returns the automatic fall interval at the given level.
func (g GravityConfig) Interval(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	ms := g.BaseMs - (level-1)*g.StepMs
	if ms < g.MinMs {
		ms = g.MinMs
	}
	return time.Duration(ms) * time.Millisecond
}

// Engine maps the configured backend name onto the board backend. An
// empty name selects the dense backend.
func (b BoardConfig) Engine() (tetris.Backend, error) {
	switch b.Backend {
	case "", "dense":
		return tetris.BackendDense, nil
	case "bitmask":
		return tetris.BackendBitmask, nil
	default:
		return tetris.BackendDense, fmt.Errorf("unknown board backend %q", b.Backend)
	}
}

// Validate checks the configuration for values the engine cannot serve.
func (c Config) Validate() error {
	if c.Board.Width < 4 || c.Board.Height < 4 {
		return fmt.Errorf("board %dx%d is too small", c.Board.Width, c.Board.Height)
	}
	if c.Board.Backend == "bitmask" && c.Board.Width > 16 {
		return fmt.Errorf("bitmask backend supports widths up to 16, got %d", c.Board.Width)
	}
	if _, err := c.Board.Engine(); err != nil {
		return err
	}
	if c.Gravity.BaseMs <= 0 || c.Gravity.MinMs <= 0 {
		return fmt.Errorf("gravity intervals must be positive")
	}
	if c.Gravity.StepMs < 0 {
		return fmt.Errorf("gravity step must not be negative")
	}
	return nil
}

// DifficultyPreset represents a named gravity curve.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyPreset rewrites the gravity curve for a named preset. The fixed
// preset keeps the configured base interval at every level.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gravity.BaseMs = 1000
		cfg.Gravity.StepMs = 50
		cfg.Gravity.MinMs = 200
	case DifficultyHard:
		cfg.Gravity.BaseMs = 600
		cfg.Gravity.StepMs = 80
		cfg.Gravity.MinMs = 60
	case DifficultyFixed:
		cfg.Gravity.StepMs = 0
	}
}
