package core

import "time"

// RuntimeConfig contains per-session settings passed from the CLI to the platform.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	TickInterval time.Duration // Time between simulation ticks, 0 means the configured interval
	Seed         int64         // RNG seed, 0 means seed from the clock
	PlayerName   string        // Pre-filled name on the landing screen
	BoardSize    int           // Initial board size, 0 means the configured default
}

// DefaultConfig returns a RuntimeConfig for a standard 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}
