package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sneaky/internal/platform/tui"
	"github.com/vovakirdan/sneaky/internal/storage"
)

var (
	flagScoresBoard       int
	flagScoresPlayer      string
	flagScoresLimit       int
	flagScoresInteractive bool
	flagScoresClear       bool
	flagScoresID          string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best results",
	Long: `Display the best recorded results.

Examples:
  sneaky scores
  sneaky scores --board 20
  sneaky scores --player ada
  sneaky scores -i
  sneaky scores --id 3f1c9a52-7d4e-4b8a-9f0e-2c6d1b7a8e45
  sneaky scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresBoard, "board", 0, "Only results on this board size")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Only results of this player")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of results to show")
	scoresCmd.Flags().BoolVarP(&flagScoresInteractive, "interactive", "i", false, "Browse results in a table")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded results")
	scoresCmd.Flags().StringVar(&flagScoresID, "id", "", "Show one result by ID")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearResults(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All results deleted.")
		return
	}

	if flagScoresID != "" {
		showResult(store, flagScoresID)
		return
	}

	if flagScoresInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, loadConfig().BoardSizes(), width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var results []storage.Result
	title := "Best Results"
	switch {
	case flagScoresPlayer != "":
		results, err = store.PlayerResults(flagScoresPlayer, flagScoresLimit)
		title = fmt.Sprintf("Best Results - %s", flagScoresPlayer)
	case flagScoresBoard > 0:
		results, err = store.TopResultsOnBoard(flagScoresBoard, flagScoresLimit)
		title = fmt.Sprintf("Best Results - %dx%d", flagScoresBoard, flagScoresBoard)
	default:
		results, err = store.TopResults(flagScoresLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(title)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Println("Play 'sneaky play' to set the first one!")
		return
	}

	fmt.Printf("  %-4s  %-16s  %-5s  %-6s  %-5s  %-16s  %s\n", "Rank", "Player", "Score", "Result", "Board", "Date", "ID")
	fmt.Printf("  %-4s  %-16s  %-5s  %-6s  %-5s  %-16s  %s\n", "----", "------", "-----", "------", "-----", "----", "--")

	for i, r := range results {
		board := fmt.Sprintf("%dx%d", r.BoardSize, r.BoardSize)
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-16s  %-5d  %-6s  %-5s  %-16s  %s\n", i+1, r.PlayerName, r.Score, r.Outcome, board, dateStr, r.ID)
	}

	fmt.Println()
	if flagScoresPlayer != "" {
		if best, err := store.BestScore(flagScoresPlayer); err == nil {
			fmt.Printf("Best: %d\n", best)
		}
		return
	}
	if stats, err := store.Stats(); err == nil {
		fmt.Printf("Rounds: %d  Wins: %d  Best: %d  Average: %.1f\n",
			stats.Rounds, stats.Wins, stats.HighScore, stats.AvgScore)
	}
}

// showResult prints a single result, exiting if it does not exist.
func showResult(store *storage.Store, id string) {
	r, err := store.ResultByID(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving result: %v\n", err)
		os.Exit(1)
	}
	if r == nil {
		fmt.Fprintf(os.Stderr, "Error: no result with ID %q\n", id)
		os.Exit(1)
	}

	fmt.Printf("Result %s\n\n", r.ID)
	fmt.Printf("  Player:   %s\n", r.PlayerName)
	fmt.Printf("  Outcome:  %s\n", r.Outcome)
	fmt.Printf("  Score:    %d\n", r.Score)
	fmt.Printf("  Board:    %dx%d\n", r.BoardSize, r.BoardSize)
	fmt.Printf("  Round:    %d\n", r.GamesPlayed+1)
	fmt.Printf("  Session:  %s\n", r.SessionID)
	fmt.Printf("  Played:   %s\n", r.CreatedAt.Format("2006-01-02 15:04"))
}
