package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const maxNameLen = 20

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Width(8)
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 2)
	disabledButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241")).
				Background(lipgloss.Color("236")).
				Padding(0, 2)
)

// landing holds the widgets of the landing screen: the name input and
// the board size selector.
type landing struct {
	name    textinput.Model
	sizes   []int
	sizeIdx int
}

// newLanding creates the landing widgets with the name prefilled and the
// selector on boardSize. A boardSize between the steps of sizes becomes
// a selectable size of its own.
func newLanding(name string, sizes []int, boardSize int) landing {
	ti := textinput.New()
	ti.Placeholder = "your name"
	ti.CharLimit = maxNameLen
	ti.Width = maxNameLen
	ti.SetValue(name)
	ti.Focus()

	l := landing{name: ti, sizes: withSize(sizes, boardSize)}
	l.sizeIdx = slices.Index(l.sizes, boardSize)
	return l
}

// withSize returns a sorted copy of sizes that contains n.
func withSize(sizes []int, n int) []int {
	out := slices.Clone(sizes)
	if !slices.Contains(out, n) {
		out = append(out, n)
		slices.Sort(out)
	}
	return out
}

// BoardSize returns the selected board size.
func (l landing) BoardSize() int {
	if len(l.sizes) == 0 {
		return 0
	}
	return l.sizes[l.sizeIdx]
}

// PlayerName returns the trimmed name input.
func (l landing) PlayerName() string {
	return strings.TrimSpace(l.name.Value())
}

// CanStart reports whether a round can be started.
func (l landing) CanStart() bool {
	return l.PlayerName() != ""
}

// grow and shrink step the board size selector, stopping at the ends.
func (l *landing) grow() {
	if l.sizeIdx < len(l.sizes)-1 {
		l.sizeIdx++
	}
}

func (l *landing) shrink() {
	if l.sizeIdx > 0 {
		l.sizeIdx--
	}
}

// update feeds a message to the name input.
func (l landing) update(msg tea.Msg) (landing, tea.Cmd) {
	var cmd tea.Cmd
	l.name, cmd = l.name.Update(msg)
	return l, cmd
}

// view renders the landing screen.
func (l landing) view(width int, helpView string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("S N E A K Y"))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Name"))
	b.WriteString(l.name.View())
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Board"))
	left, right := "◀", "▶"
	if l.sizeIdx == 0 {
		left = " "
	}
	if l.sizeIdx == len(l.sizes)-1 {
		right = " "
	}
	size := l.BoardSize()
	fmt.Fprintf(&b, "%s %dx%d %s", left, size, size, right)
	b.WriteString("\n\n")

	if l.CanStart() {
		b.WriteString(buttonStyle.Render("Play"))
	} else {
		b.WriteString(disabledButtonStyle.Render("Play"))
		b.WriteString("  ")
		b.WriteString(dimStyle.Render("enter a name to play"))
	}
	b.WriteString("\n\n")
	b.WriteString(helpView)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(1, 3).
		Render(b.String())

	if width <= 0 {
		return box
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, box)
}
