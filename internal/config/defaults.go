package config

import (
	_ "embed"
)

//go:embed defaults/tetris2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration: a 20x12 grid at 243ms per tick.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Height: 20,
			Width:  12,
		},
		Timing: TimingConfig{
			TickIntervalMS: 243,
			MinIntervalMS:  60,
		},
		Spawn: SpawnConfig{
			FourProbability: 0.5,
		},
		Difficulty: DifficultyNormal,
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
