// Package config provides YAML-based configuration loading and difficulty
// presets for tetris2048.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config contains all configuration for a tetris2048 session.
type Config struct {
	Grid       GridConfig       `yaml:"grid"`
	Timing     TimingConfig     `yaml:"timing"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Difficulty DifficultyPreset `yaml:"difficulty"`
}

// GridConfig defines the board size. Row 0 is the bottom row.
type GridConfig struct {
	Height int `yaml:"height"`
	Width  int `yaml:"width"`
}

// TimingConfig defines the automatic descent pace.
type TimingConfig struct {
	TickIntervalMS int `yaml:"tick_interval_ms"`
	MinIntervalMS  int `yaml:"min_interval_ms"` // floor for preset scaling
}

// SpawnConfig defines how new pieces are numbered.
type SpawnConfig struct {
	FourProbability float64 `yaml:"four_probability"`
}

// minGridSide fits the widest template (the I piece box).
const minGridSide = 4

// Validate reports the first problem with the config, wrapping ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Grid.Height < minGridSide:
		return fmt.Errorf("%w: grid.height %d is below %d", ErrInvalidConfig, c.Grid.Height, minGridSide)
	case c.Grid.Width < minGridSide:
		return fmt.Errorf("%w: grid.width %d is below %d", ErrInvalidConfig, c.Grid.Width, minGridSide)
	case c.Timing.TickIntervalMS <= 0:
		return fmt.Errorf("%w: timing.tick_interval_ms must be positive", ErrInvalidConfig)
	case c.Timing.MinIntervalMS < 0:
		return fmt.Errorf("%w: timing.min_interval_ms must not be negative", ErrInvalidConfig)
	case c.Spawn.FourProbability < 0 || c.Spawn.FourProbability > 1:
		return fmt.Errorf("%w: spawn.four_probability %v is outside [0, 1]", ErrInvalidConfig, c.Spawn.FourProbability)
	}
	if _, err := ParsePreset(string(c.Difficulty)); err != nil {
		return err
	}
	return nil
}

// TickInterval returns the descent interval with the difficulty preset applied.
func (c Config) TickInterval() time.Duration {
	ms := float64(c.Timing.TickIntervalMS) * IntervalScale(c.Difficulty)
	ms = max(ms, float64(c.Timing.MinIntervalMS))
	return time.Duration(ms * float64(time.Millisecond))
}
