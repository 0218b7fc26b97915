package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTemp(t)

	entries := []ScoreEntry{
		{RunID: "a", Score: 100, MaxTile: 16, Lines: 2, Pieces: 30, Difficulty: "normal"},
		{RunID: "b", Score: 50, MaxTile: 8, Lines: 0, Pieces: 12, Difficulty: "easy"},
		{RunID: "c", Player: "alice", Score: 200, MaxTile: 64, Lines: 5, Pieces: 61, Difficulty: "hard"},
	}
	for _, e := range entries {
		id, err := store.SaveScore(e)
		if err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
		if id <= 0 {
			t.Errorf("SaveScore() id = %d, want positive", id)
		}
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	wantOrder := []int{200, 100, 50}
	for i, want := range wantOrder {
		if scores[i].Score != want {
			t.Errorf("scores[%d].Score = %d, want %d", i, scores[i].Score, want)
		}
	}

	top := scores[0]
	if top.RunID != "c" || top.Player != "alice" || top.MaxTile != 64 || top.Lines != 5 ||
		top.Pieces != 61 || top.Difficulty != "hard" {
		t.Errorf("top entry = %+v, fields not round-tripped", top)
	}
	if top.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTemp(t)

	for i := 1; i <= 25; i++ {
		if _, err := store.SaveScore(ScoreEntry{Score: i * 10}); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	tests := []struct {
		limit int
		want  int
	}{
		{5, 5},
		{0, 10}, // default
		{-3, 10},
		{100, 25},
	}
	for _, tc := range tests {
		scores, err := store.TopScores(tc.limit)
		if err != nil {
			t.Fatalf("TopScores(%d) failed: %v", tc.limit, err)
		}
		if len(scores) != tc.want {
			t.Errorf("TopScores(%d) returned %d, want %d", tc.limit, len(scores), tc.want)
		}
	}

	scores, _ := store.TopScores(1)
	if scores[0].Score != 250 {
		t.Errorf("TopScores(1)[0] = %d, want 250", scores[0].Score)
	}
}

func TestStoreTopScoresTiesKeepOrder(t *testing.T) {
	store := openTemp(t)
	for _, id := range []string{"first", "second"} {
		if _, err := store.SaveScore(ScoreEntry{RunID: id, Score: 40}); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	scores, err := store.TopScores(2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if scores[0].RunID != "first" || scores[1].RunID != "second" {
		t.Errorf("tie order = %q, %q", scores[0].RunID, scores[1].RunID)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTemp(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty store, got %d", high)
	}

	for _, s := range []int{100, 500, 200} {
		store.SaveScore(ScoreEntry{Score: s})
	}

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 500 {
		t.Errorf("Expected high score 500, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTemp(t)

	store.SaveScore(ScoreEntry{Score: 100})
	store.SaveScore(ScoreEntry{Score: 200})

	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores(10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTemp(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Games != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty Stats() = %+v", stats)
	}

	store.SaveScore(ScoreEntry{Score: 100, MaxTile: 32, Lines: 3})
	store.SaveScore(ScoreEntry{Score: 300, MaxTile: 128, Lines: 1})

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Games != 2 {
		t.Errorf("Games = %d, want 2", stats.Games)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, want 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}
	if stats.TotalScore != 400 {
		t.Errorf("TotalScore = %d, want 400", stats.TotalScore)
	}
	if stats.BestTile != 128 {
		t.Errorf("BestTile = %d, want 128", stats.BestTile)
	}
	if stats.TotalLines != 4 {
		t.Errorf("TotalLines = %d, want 4", stats.TotalLines)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.tetris2048/scores.db")
	if err != nil {
		t.Fatalf("Open(~) failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".tetris2048", "scores.db")); err != nil {
		t.Errorf("Database not created under home: %v", err)
	}
}
