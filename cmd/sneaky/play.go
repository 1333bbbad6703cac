package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sneaky/internal/core"
	"github.com/vovakirdan/sneaky/internal/platform/tui"
	"github.com/vovakirdan/sneaky/internal/storage"
)

var (
	flagName      string
	flagBoardSize int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal.

Enter your name and pick a board size on the landing screen, then press
Enter to play.

Controls:
  Arrows/WASD/HJKL - Steer
  R                - New game
  Esc              - Quit the round
  Tab              - Best results (landing screen)
  Ctrl+S           - Save the board to ~/.sneaky/screenshots
  Q/Ctrl+C         - Exit

Examples:
  sneaky play
  sneaky play --name ada
  sneaky play --board-size 30 --tick 100ms
  sneaky play --config ./my-sneaky.yaml`,
	Run: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the play flags; the root command plays too.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagName, "name", "", "Player name to prefill")
	cmd.Flags().IntVar(&flagBoardSize, "board-size", 0, "Initial board size (0 = from config)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	logger, closeLog := fileLogger("sneaky")
	defer closeLog()

	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.TickInterval = flagTick // 0 keeps the config file's interval
	rt.Seed = flagSeed
	rt.PlayerName = flagName
	rt.BoardSize = flagBoardSize

	// Open results storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open results database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(cfg, rt, store, logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
