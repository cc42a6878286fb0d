package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	store, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSQLiteHighScoreEmpty(t *testing.T) {
	store := openTestDB(t)

	score, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if score != 0 {
		t.Errorf("Expected 0 for empty database, got %d", score)
	}
}

func TestSQLiteHighScoreOverwrite(t *testing.T) {
	store := openTestDB(t)

	for _, s := range []int{100, 250, 40} {
		if err := store.Save(s); err != nil {
			t.Fatalf("Save(%d) failed: %v", s, err)
		}
	}

	score, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	// Overwrite semantics: the last save wins
	if score != 40 {
		t.Errorf("Expected 40, got %d", score)
	}
}

func TestSQLiteHighScorePersists(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	if err := store.Save(320); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	store.Close()

	reopened, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	score, err := reopened.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if score != 320 {
		t.Errorf("Expected 320 after reopen, got %d", score)
	}
}

func TestSQLiteRecordAndTopGames(t *testing.T) {
	store := openTestDB(t)

	games := []struct {
		score, level int
		ticks        uint64
	}{
		{100, 3, 400},
		{50, 2, 120},
		{200, 5, 900},
	}
	for _, g := range games {
		if _, err := store.RecordGame(g.score, g.level, g.ticks); err != nil {
			t.Fatalf("RecordGame() failed: %v", err)
		}
	}

	top, err := store.TopGames(10)
	if err != nil {
		t.Fatalf("TopGames() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 games, got %d", len(top))
	}

	// Should be sorted descending
	if top[0].Score != 200 || top[1].Score != 100 || top[2].Score != 50 {
		t.Errorf("Games not in expected order: %v", top)
	}
	if top[0].Level != 5 || top[0].Ticks != 900 {
		t.Errorf("Top game fields wrong: %+v", top[0])
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestSQLiteTopGamesLimit(t *testing.T) {
	store := openTestDB(t)

	for i := 0; i < 5; i++ {
		store.RecordGame((i+1)*100, 1, 0)
	}

	top, err := store.TopGames(3)
	if err != nil {
		t.Fatalf("TopGames() failed: %v", err)
	}
	if len(top) != 3 {
		t.Errorf("Expected 3 games with limit, got %d", len(top))
	}
	if top[0].Score != 500 || top[1].Score != 400 || top[2].Score != 300 {
		t.Errorf("Games not in expected order: %v", top)
	}

	// Non-positive limit falls back to 10
	all, err := store.TopGames(0)
	if err != nil {
		t.Fatalf("TopGames(0) failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected 5 games, got %d", len(all))
	}
}

func TestSQLiteStats(t *testing.T) {
	store := openTestDB(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 0 || stats.BestScore != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.RecordGame(10, 1, 5)
	store.RecordGame(30, 1, 9)

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.BestScore != 30 || stats.AvgScore != 20 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
}

func TestSQLiteReset(t *testing.T) {
	store := openTestDB(t)
	store.Save(90)
	store.RecordGame(90, 2, 50)

	if err := store.Reset(); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	score, _ := store.Load()
	top, _ := store.TopGames(10)
	if score != 0 || len(top) != 0 {
		t.Errorf("Reset should clear everything, got score=%d games=%d", score, len(top))
	}
}
