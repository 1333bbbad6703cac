package config

import (
	_ "embed"
)

//go:embed defaults/sneaky.yaml
var defaultSneakyYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			DefaultSize: 20,
			MinSize:     10,
			MaxSize:     30,
			Step:        5,
		},
		Rules: RulesConfig{
			FoodReward:   3,
			WinThreshold: 30,
		},
		Timing: TimingConfig{
			TickMS: 150,
		},
	}
}
