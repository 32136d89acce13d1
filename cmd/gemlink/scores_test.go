package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/gemlink/internal/storage"
)

func TestClearScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, r := range []storage.GameResult{
		{Mode: "8x8", Theme: "gems", Score: 120},
		{Mode: "8x8", Theme: "gems", Score: 80, Won: true},
		{Mode: "6x6", Theme: "gems", Score: 50},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	var out bytes.Buffer
	if err := clearScores(store, "8x8", &out); err != nil {
		t.Fatalf("clearScores() failed: %v", err)
	}
	if !strings.Contains(out.String(), "Cleared 2 results for the 8x8 board") {
		t.Errorf("unexpected output %q", out.String())
	}

	if high, _ := store.HighScore("8x8"); high != 0 {
		t.Errorf("8x8 high score = %d after clear, want 0", high)
	}
	if high, _ := store.HighScore("6x6"); high != 50 {
		t.Errorf("6x6 high score = %d, want 50", high)
	}
}

func TestClearScoresNeedsBoard(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	var out bytes.Buffer
	if err := clearScores(store, "", &out); err == nil {
		t.Error("expected an error without a board")
	}
	if out.Len() != 0 {
		t.Errorf("nothing should be printed, got %q", out.String())
	}
}
