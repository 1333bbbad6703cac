// Package config provides YAML-based configuration loading for the game:
// board size limits, scoring rules and tick timing.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config contains all tunable settings for a Sneaky session.
type Config struct {
	Board  BoardConfig  `yaml:"board"`
	Rules  RulesConfig  `yaml:"rules"`
	Timing TimingConfig `yaml:"timing"`
}

// BoardConfig defines the selectable board sizes.
type BoardConfig struct {
	DefaultSize int `yaml:"default_size"`
	MinSize     int `yaml:"min_size"`
	MaxSize     int `yaml:"max_size"`
	Step        int `yaml:"step"` // Increment used by the size selector
}

// RulesConfig defines scoring and the win condition.
type RulesConfig struct {
	FoodReward   int `yaml:"food_reward"`   // Points per food eaten
	WinThreshold int `yaml:"win_threshold"` // Score at which the round is won
}

// TimingConfig defines the simulation cadence.
type TimingConfig struct {
	TickMS int `yaml:"tick_ms"` // Milliseconds between ticks
}

// Interval returns the tick interval as a duration.
func (t TimingConfig) Interval() time.Duration {
	return time.Duration(t.TickMS) * time.Millisecond
}

// minPlayableSize is the smallest board that fits the starting snake [2,1,0].
const minPlayableSize = 3

// Validate checks that the configuration describes a playable game.
func (c Config) Validate() error {
	var errs []error

	b := c.Board
	if b.MinSize < minPlayableSize {
		errs = append(errs, fmt.Errorf("board.min_size must be at least %d, got %d", minPlayableSize, b.MinSize))
	}
	if b.MaxSize < b.MinSize {
		errs = append(errs, fmt.Errorf("board.max_size (%d) is smaller than board.min_size (%d)", b.MaxSize, b.MinSize))
	}
	if b.DefaultSize < b.MinSize || b.DefaultSize > b.MaxSize {
		errs = append(errs, fmt.Errorf("board.default_size %d is outside [%d, %d]", b.DefaultSize, b.MinSize, b.MaxSize))
	}
	if b.Step <= 0 {
		errs = append(errs, fmt.Errorf("board.step must be positive, got %d", b.Step))
	}

	if c.Rules.FoodReward <= 0 {
		errs = append(errs, fmt.Errorf("rules.food_reward must be positive, got %d", c.Rules.FoodReward))
	}
	if c.Rules.WinThreshold <= 0 {
		errs = append(errs, fmt.Errorf("rules.win_threshold must be positive, got %d", c.Rules.WinThreshold))
	}

	if c.Timing.TickMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.tick_ms must be positive, got %d", c.Timing.TickMS))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// ClampBoardSize restricts n to the configured board size range.
func (c Config) ClampBoardSize(n int) int {
	if n < c.Board.MinSize {
		return c.Board.MinSize
	}
	if n > c.Board.MaxSize {
		return c.Board.MaxSize
	}
	return n
}

// BoardSizes returns every selectable board size from min to max by step.
func (c Config) BoardSizes() []int {
	if c.Board.Step <= 0 {
		return []int{c.Board.DefaultSize}
	}
	sizes := make([]int, 0, (c.Board.MaxSize-c.Board.MinSize)/c.Board.Step+1)
	for n := c.Board.MinSize; n <= c.Board.MaxSize; n += c.Board.Step {
		sizes = append(sizes, n)
	}
	return sizes
}
