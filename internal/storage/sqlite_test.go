package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveResult(Result{PlayerName: "ada", BoardSize: 20, Score: 9, Outcome: "lost"}); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	results, err := store.TopResults(10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(results) != 1 {
		t.Errorf("Expected 1 result after reopen, got %d", len(results))
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	saved := []Result{
		{SessionID: "s1", PlayerName: "ada", BoardSize: 20, Score: 12, Outcome: "lost"},
		{SessionID: "s1", PlayerName: "ada", BoardSize: 20, Score: 30, Outcome: "won", GamesPlayed: 1},
		{SessionID: "s2", PlayerName: "bob", BoardSize: 25, Score: 21, Outcome: "lost"},
	}
	for _, r := range saved {
		id, err := store.SaveResult(r)
		if err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
		if id == "" {
			t.Error("SaveResult() should generate an ID")
		}
	}

	results, err := store.TopResults(10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}

	// Should be sorted descending
	if results[0].Score != 30 || results[1].Score != 21 || results[2].Score != 12 {
		t.Errorf("Results not in expected order: %+v", results)
	}
	if results[0].Outcome != "won" || results[0].PlayerName != "ada" || results[0].GamesPlayed != 1 {
		t.Errorf("Top result fields wrong: %+v", results[0])
	}
	if results[1].BoardSize != 25 {
		t.Errorf("BoardSize = %d, expected 25", results[1].BoardSize)
	}

	adas, err := store.PlayerResults("ada", 10)
	if err != nil {
		t.Fatalf("PlayerResults() failed: %v", err)
	}
	if len(adas) != 2 {
		t.Errorf("Expected 2 results for ada, got %d", len(adas))
	}
}

func TestStoreKeepsGivenID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveResult(Result{ID: "round-1", PlayerName: "ada", BoardSize: 20, Score: 3, Outcome: "lost"})
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if id != "round-1" {
		t.Errorf("SaveResult() = %q, expected the given ID", id)
	}

	r, err := store.ResultByID("round-1")
	if err != nil {
		t.Fatalf("ResultByID() failed: %v", err)
	}
	if r == nil || r.Score != 3 {
		t.Fatalf("ResultByID() = %+v, expected score 3", r)
	}

	missing, err := store.ResultByID("nope")
	if err != nil {
		t.Fatalf("ResultByID() failed: %v", err)
	}
	if missing != nil {
		t.Errorf("ResultByID() for an unknown ID = %+v, expected nil", missing)
	}
}

func TestStoreTopResultsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveResult(Result{PlayerName: "ada", BoardSize: 20, Score: (i + 1) * 3, Outcome: "lost"})
	}

	results, err := store.TopResults(3)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Expected 3 results with limit, got %d", len(results))
	}
	if results[0].Score != 15 || results[1].Score != 12 || results[2].Score != 9 {
		t.Errorf("Results not in expected order: %+v", results)
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore("ada")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("BestScore() with no results = %d, expected 0", best)
	}

	store.SaveResult(Result{PlayerName: "ada", BoardSize: 20, Score: 9, Outcome: "lost"})
	store.SaveResult(Result{PlayerName: "ada", BoardSize: 20, Score: 18, Outcome: "lost"})
	store.SaveResult(Result{PlayerName: "bob", BoardSize: 20, Score: 30, Outcome: "won"})

	best, err = store.BestScore("ada")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 18 {
		t.Errorf("BestScore() = %d, expected 18", best)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Rounds != 0 || stats.HighScore != 0 {
		t.Errorf("empty Stats() = %+v, expected zeros", stats)
	}

	store.SaveResult(Result{PlayerName: "ada", BoardSize: 20, Score: 30, Outcome: "won"})
	store.SaveResult(Result{PlayerName: "bob", BoardSize: 20, Score: 6, Outcome: "lost"})

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Rounds != 2 || stats.Wins != 1 || stats.HighScore != 30 {
		t.Errorf("Stats() = %+v, expected 2 rounds, 1 win, high 30", stats)
	}
	if stats.AvgScore != 18 {
		t.Errorf("AvgScore = %f, expected 18", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreClearResults(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(Result{PlayerName: "ada", BoardSize: 20, Score: 9, Outcome: "lost"})
	if err := store.ClearResults(); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	results, err := store.TopResults(10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Expected no results after clear, got %d", len(results))
	}
}

func TestStoreTopResultsOnBoard(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(Result{PlayerName: "ada", BoardSize: 10, Score: 6, Outcome: "lost"})
	store.SaveResult(Result{PlayerName: "bob", BoardSize: 20, Score: 15, Outcome: "lost"})
	store.SaveResult(Result{PlayerName: "cy", BoardSize: 20, Score: 24, Outcome: "lost"})

	results, err := store.TopResultsOnBoard(20, 10)
	if err != nil {
		t.Fatalf("TopResultsOnBoard() failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 results on 20x20, got %d", len(results))
	}
	if results[0].PlayerName != "cy" || results[1].PlayerName != "bob" {
		t.Errorf("Results not in expected order: %+v", results)
	}

	results, err = store.TopResultsOnBoard(30, 10)
	if err != nil {
		t.Fatalf("TopResultsOnBoard() failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Expected no results on 30x30, got %d", len(results))
	}
}
