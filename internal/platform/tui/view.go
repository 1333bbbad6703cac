package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/sneaky/internal/core"
	"github.com/vovakirdan/sneaky/internal/snake"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(20)
	valueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(1, 4).
			Align(lipgloss.Center)
	winStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))
	lossStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))
)

// gameView renders the board, the sidebar and, once the round is over,
// the game-over panel.
func (m Model) gameView() string {
	snap := m.state.Snapshot()

	screen := core.NewScreen(boardDims(snap.BoardSize))
	DrawBoard(screen, snap)
	board := RenderScreen(screen)

	body := lipgloss.JoinHorizontal(lipgloss.Top, board, "  ", renderSidebar(snap))
	if snap.Phase.Over() {
		body = lipgloss.JoinVertical(lipgloss.Center, body, renderGameOver(snap, m.best))
	}

	body = lipgloss.JoinVertical(lipgloss.Left, body, dimStyle.Render(m.help.View(m.keys)))

	if m.runtime.ScreenW <= 0 || m.runtime.ScreenH <= 0 {
		return body
	}
	return lipgloss.Place(m.runtime.ScreenW, m.runtime.ScreenH, lipgloss.Center, lipgloss.Center, body)
}

// renderSidebar shows the player, the score and the session counters.
func renderSidebar(snap snake.Snapshot) string {
	var b strings.Builder
	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(valueStyle.Render(value))
		b.WriteString("\n")
	}

	row("Player", snap.PlayerName)
	row("Score", fmt.Sprintf("%d", snap.Score))
	row("Games", fmt.Sprintf("%d", snap.GamesPlayed))
	row("Board", fmt.Sprintf("%dx%d", snap.BoardSize, snap.BoardSize))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("r  restart"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("esc quit"))

	return panelStyle.Render(b.String())
}

// renderGameOver shows the outcome of a finished round.
func renderGameOver(snap snake.Snapshot, best int) string {
	title := lossStyle.Render("Game Over")
	if snap.Phase == snake.PhaseWon {
		title = winStyle.Render("You Win!")
	}

	lines := []string{
		title,
		"",
		fmt.Sprintf("Final score: %s", valueStyle.Render(fmt.Sprintf("%d", snap.Score))),
		fmt.Sprintf("Games played: %d", snap.GamesPlayed),
		fmt.Sprintf("Personal best: %d", best),
		"",
		buttonStyle.Render("r New Game") + "  " + disabledButtonStyle.Render("esc Quit"),
	}
	return modalStyle.Render(strings.Join(lines, "\n"))
}
