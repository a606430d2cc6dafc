package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	saves := []struct {
		score, lines, level int
	}{
		{1200, 14, 2},
		{400, 4, 1},
		{9800, 52, 6},
	}
	for _, s := range saves {
		if _, err := store.SaveResult(s.score, s.lines, s.level); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	results, err := store.TopResults(10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}

	// Sorted by score descending
	if results[0].Score != 9800 || results[1].Score != 1200 || results[2].Score != 400 {
		t.Errorf("Results not in descending score order: %v", results)
	}
	if results[0].Lines != 52 || results[0].Level != 6 {
		t.Errorf("Best result = %+v, want lines 52 level 6", results[0])
	}
}

func TestStoreTopResultsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveResult((i+1)*100, i, 1)
	}

	results, err := store.TopResults(3)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Expected 3 results with limit, got %d", len(results))
	}
	if results[0].Score != 500 || results[1].Score != 400 || results[2].Score != 300 {
		t.Errorf("Results not in expected order: %v", results)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty store, got %d", high)
	}

	store.SaveResult(100, 1, 1)
	store.SaveResult(300, 3, 1)
	store.SaveResult(200, 2, 1)

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClear(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(100, 1, 1)
	store.SaveResult(200, 2, 1)

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}

	results, _ := store.TopResults(10)
	if len(results) != 0 {
		t.Errorf("Expected 0 results after clear, got %d", len(results))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 {
		t.Errorf("Empty store stats = %+v, want zeros", empty)
	}

	store.SaveResult(1000, 10, 2)
	store.SaveResult(3000, 30, 4)

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, want 2", stats.GamesCount)
	}
	if stats.HighScore != 3000 {
		t.Errorf("HighScore = %d, want 3000", stats.HighScore)
	}
	if stats.AvgScore != 2000 {
		t.Errorf("AvgScore = %f, want 2000", stats.AvgScore)
	}
	if stats.TotalLines != 40 {
		t.Errorf("TotalLines = %d, want 40", stats.TotalLines)
	}
	if stats.BestLevel != 4 {
		t.Errorf("BestLevel = %d, want 4", stats.BestLevel)
	}
}
