package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save some scores
	saveScore(t, store, "8x8", 100)
	saveScore(t, store, "8x8", 50)
	saveScore(t, store, "8x8", 200)

	// Different game
	saveScore(t, store, "6x6", 500)

	// Retrieve top scores for classic
	scores, err := store.TopScores("8x8", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 {
		t.Errorf("Expected highest score to be 200, got %d", scores[0].Score)
	}
	if scores[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", scores[1].Score)
	}
	if scores[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", scores[2].Score)
	}

	// Retrieve top scores for small
	smallScores, err := store.TopScores("6x6", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(smallScores) != 1 {
		t.Errorf("Expected 1 small score, got %d", len(smallScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save 5 scores
	for i := 0; i < 5; i++ {
		saveScore(t, store, "test", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No scores yet
	high, err := store.HighScore("8x8")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	// Add scores
	saveScore(t, store, "8x8", 100)
	saveScore(t, store, "8x8", 300)
	saveScore(t, store, "8x8", 200)

	high, err = store.HighScore("8x8")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	saveScore(t, store, "8x8", 100)
	saveScore(t, store, "8x8", 200)
	saveScore(t, store, "6x6", 300)

	// Clear only classic scores
	err = store.ClearScores("8x8")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	// Classic should be empty
	classicScores, _ := store.TopScores("8x8", 10)
	if len(classicScores) != 0 {
		t.Errorf("Expected 0 classic scores after clear, got %d", len(classicScores))
	}

	// Small should still have scores
	smallScores, _ := store.TopScores("6x6", 10)
	if len(smallScores) != 1 {
		t.Errorf("Small scores should not be affected by clearing classic")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	// Test that ~ expansion works (we won't actually write to home)
	// Just verify the function doesn't crash
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

// saveScore records a bare result carrying only a mode and score.
func saveScore(t *testing.T, store *Store, mode string, score int) {
	t.Helper()
	if _, err := store.SaveResult(GameResult{Mode: mode, Theme: "gems", Score: score}); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreSaveResult(t *testing.T) {
	store := openTestStore(t)

	r := GameResult{
		Mode: "8x8", Theme: "gems", Won: true, Score: 540,
		Collected: 15, Target: 15, MovesUsed: 10, MoveLimit: 10, Width: 8, Height: 8,
	}
	id, err := store.SaveResult(r)
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if id == 0 {
		t.Error("expected a non-zero result ID")
	}

	// The score table is written in the same transaction.
	high, err := store.HighScore("8x8")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 540 {
		t.Errorf("Expected high score of 540, got %d", high)
	}

	results, err := store.RecentResults("8x8", 10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	got := results[0]
	got.ID, got.CreatedAt = 0, r.CreatedAt
	if got != r {
		t.Errorf("RecentResults()[0] = %+v, want %+v", got, r)
	}
	if results[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}
}

func TestStoreRecentResultsOrder(t *testing.T) {
	store := openTestStore(t)

	for i, mode := range []string{"8x8", "6x6", "8x8"} {
		if _, err := store.SaveResult(GameResult{Mode: mode, Theme: "gems", Score: (i + 1) * 10}); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	all, err := store.RecentResults("", 10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(all) != 3 || all[0].Score != 30 || all[2].Score != 10 {
		t.Errorf("Expected newest first across modes, got %+v", all)
	}

	limited, _ := store.RecentResults("8x8", 1)
	if len(limited) != 1 || limited[0].Score != 30 {
		t.Errorf("Expected only the newest 8x8 result, got %+v", limited)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("8x8")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Games != 0 || empty.WinRate() != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	store.SaveResult(GameResult{Mode: "8x8", Theme: "gems", Won: true, Score: 300})
	store.SaveResult(GameResult{Mode: "8x8", Theme: "gems", Won: false, Score: 100})
	store.SaveResult(GameResult{Mode: "6x6", Theme: "gems", Won: true, Score: 900})

	stats, err := store.Stats("8x8")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Games != 2 || stats.Wins != 1 || stats.BestScore != 300 || stats.AvgScore != 200 {
		t.Errorf("Unexpected stats %+v", stats)
	}
	if stats.WinRate() != 0.5 {
		t.Errorf("WinRate() = %v, want 0.5", stats.WinRate())
	}
}

func TestStoreModes(t *testing.T) {
	store := openTestStore(t)

	saveScore(t, store, "8x8", 10)
	saveScore(t, store, "6x6", 10)
	saveScore(t, store, "8x8", 20)

	modes, err := store.Modes()
	if err != nil {
		t.Fatalf("Modes() failed: %v", err)
	}
	if len(modes) != 2 || modes[0] != "6x6" || modes[1] != "8x8" {
		t.Errorf("Modes() = %v, want [6x6 8x8]", modes)
	}
}

func TestStoreClearScoresRemovesResults(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(GameResult{Mode: "8x8", Theme: "gems", Score: 10})
	if err := store.ClearScores("8x8"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	results, _ := store.RecentResults("8x8", 10)
	if len(results) != 0 {
		t.Errorf("Expected results to be cleared, got %d", len(results))
	}
}
