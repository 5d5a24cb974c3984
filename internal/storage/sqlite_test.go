package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/session"
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

func run(d config.DifficultyPreset, score int) session.Run {
	return session.Run{Difficulty: d, Score: score, Coins: score / 100, Distance: float64(score) * 10, Ticks: 60, Seed: 42}
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
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveRun(run(config.DifficultyNormal, score)); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	if _, err := store.SaveRun(run(config.DifficultyHard, 500)); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.TopRuns(config.DifficultyNormal, 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	for i, want := range []int{200, 100, 50} {
		if runs[i].Score != want {
			t.Errorf("runs[%d].Score = %d, expected %d", i, runs[i].Score, want)
		}
	}

	top := runs[0]
	if top.Difficulty != config.DifficultyNormal || top.Coins != 2 || top.Distance != 2000 || top.Ticks != 60 || top.Seed != 42 {
		t.Errorf("round trip mismatch: %+v", top)
	}
	if top.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	hard, err := store.TopRuns(config.DifficultyHard, 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(hard) != 1 || hard[0].Score != 500 {
		t.Errorf("hard runs = %+v", hard)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 15; i++ {
		store.SaveRun(run(config.DifficultyEasy, i*10))
	}

	runs, err := store.TopRuns(config.DifficultyEasy, 5)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 5 {
		t.Errorf("Expected 5 runs, got %d", len(runs))
	}
	if runs[0].Score != 140 {
		t.Errorf("Expected top score 140, got %d", runs[0].Score)
	}

	runs, _ = store.TopRuns(config.DifficultyEasy, 0)
	if len(runs) != 10 {
		t.Errorf("zero limit should default to 10, got %d", len(runs))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	score, err := store.HighScore(config.DifficultyNormal)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 0 {
		t.Errorf("Expected 0 for empty store, got %d", score)
	}

	store.SaveRun(run(config.DifficultyNormal, 100))
	store.SaveRun(run(config.DifficultyNormal, 300))
	store.SaveRun(run(config.DifficultyNormal, 200))

	score, _ = store.HighScore(config.DifficultyNormal)
	if score != 300 {
		t.Errorf("Expected high score 300, got %d", score)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)
	store.SaveRun(run(config.DifficultyNormal, 100))
	store.SaveRun(run(config.DifficultyHard, 300))

	if err := store.ClearRuns(config.DifficultyNormal); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	normal, _ := store.TopRuns(config.DifficultyNormal, 10)
	if len(normal) != 0 {
		t.Errorf("Expected 0 normal runs after clear, got %d", len(normal))
	}
	hard, _ := store.TopRuns(config.DifficultyHard, 10)
	if len(hard) != 1 {
		t.Error("hard runs should not be affected by clearing normal")
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)
	store.SaveRun(run(config.DifficultyNormal, 100))
	store.SaveRun(run(config.DifficultyHard, 50))
	store.SaveRun(run(config.DifficultyEasy, 75))

	recent, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(recent))
	}
	if recent[0].Difficulty != config.DifficultyEasy || recent[1].Difficulty != config.DifficultyHard {
		t.Errorf("recent runs out of order: %+v", recent)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetStats(config.DifficultyHard)
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveRun(run(config.DifficultyHard, 100))
	store.SaveRun(run(config.DifficultyHard, 300))

	stats, err := store.GetStats(config.DifficultyHard)
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.HighScore != 300 || stats.AvgScore != 200 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.TotalCoins != 4 || stats.MaxDistance != 3000 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreRecorder(t *testing.T) {
	store := openTestStore(t)
	record := store.Recorder(nil)
	record(run(config.DifficultyFixed, 123))

	score, _ := store.HighScore(config.DifficultyFixed)
	if score != 123 {
		t.Errorf("recorded run missing, high score %d", score)
	}

	store.Close()
	var got error
	store.Recorder(func(err error) { got = err })(run(config.DifficultyFixed, 1))
	if got == nil {
		t.Error("saving to a closed store should report an error")
	}
	if errors.Unwrap(got) == nil {
		t.Error("error should wrap the driver error")
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
