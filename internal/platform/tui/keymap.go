package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sneaky/internal/core"
)

// KeyMap defines the key bindings used during a round.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Restart key.Binding
	Back    key.Binding
	Quit    key.Binding
	Capture key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Restart, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Restart, k.Back, k.Quit, k.Capture},
	}
}

// DefaultKeyMap returns the default in-game bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "new game"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "quit round"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "exit"),
		),
		Capture: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save board"),
		),
	}
}

// LandingKeyMap defines the key bindings of the landing screen.
// Every other key goes to the name input.
type LandingKeyMap struct {
	Start   key.Binding
	Bigger  key.Binding
	Smaller key.Binding
	Scores  key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k LandingKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Bigger, k.Smaller, k.Scores, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k LandingKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultLandingKeyMap returns the default landing screen bindings.
func DefaultLandingKeyMap() LandingKeyMap {
	return LandingKeyMap{
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play"),
		),
		Bigger: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "bigger board"),
		),
		Smaller: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "smaller board"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "best results"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "exit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	game    KeyMap
	landing LandingKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		game:    DefaultKeyMap(),
		landing: DefaultLandingKeyMap(),
	}
}

// MapKey translates a key pressed during a round to an action.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.game.Quit):
		return core.ActionQuit
	case key.Matches(msg, km.game.Up):
		return core.ActionUp
	case key.Matches(msg, km.game.Down):
		return core.ActionDown
	case key.Matches(msg, km.game.Left):
		return core.ActionLeft
	case key.Matches(msg, km.game.Right):
		return core.ActionRight
	case key.Matches(msg, km.game.Restart):
		return core.ActionRestart
	case key.Matches(msg, km.game.Back):
		return core.ActionBack
	case key.Matches(msg, km.game.Capture):
		return core.ActionScreenshot
	}
	return core.ActionNone
}

// MapLandingKey translates a key pressed on the landing screen.
// ActionNone means the key belongs to the name input.
func (km *KeyMapper) MapLandingKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.landing.Quit):
		return core.ActionQuit
	case key.Matches(msg, km.landing.Start):
		return core.ActionConfirm
	case key.Matches(msg, km.landing.Bigger):
		return core.ActionUp
	case key.Matches(msg, km.landing.Smaller):
		return core.ActionDown
	case key.Matches(msg, km.landing.Scores):
		return core.ActionScoreboard
	}
	return core.ActionNone
}
