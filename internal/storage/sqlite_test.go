package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

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

func TestStoreReopenKeepsRecords(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveCompletion(Completion{Player: "ada", Duration: time.Minute, Flowers: 20, Goal: 20}); err != nil {
		t.Fatal(err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	entries, err := store.Fastest(20, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected 1 record after reopen, got %d", len(entries))
	}
}

func TestStoreFastestOrdering(t *testing.T) {
	store := openTestStore(t)

	records := []Completion{
		{Player: "ada", Duration: 90 * time.Second, Flowers: 20, Goal: 20, Jumps: 3},
		{Player: "bob", Duration: 45500 * time.Millisecond, Flowers: 21, Goal: 20},
		{Player: "ada", Duration: 60 * time.Second, Flowers: 20, Goal: 20, Jumps: 1},
		{Player: "cyd", Duration: 10 * time.Second, Flowers: 10, Goal: 10},
	}
	for _, r := range records {
		if _, err := store.SaveCompletion(r); err != nil {
			t.Fatalf("SaveCompletion() failed: %v", err)
		}
	}

	entries, err := store.Fastest(20, 10)
	if err != nil {
		t.Fatalf("Fastest() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 records for goal 20, got %d", len(entries))
	}

	// Should be sorted fastest first
	if entries[0].Player != "bob" || entries[0].Duration != 45500*time.Millisecond {
		t.Errorf("fastest = %+v, expected bob in 45.5s", entries[0])
	}
	if entries[1].Duration != 60*time.Second || entries[2].Duration != 90*time.Second {
		t.Errorf("unexpected order: %v, %v", entries[1].Duration, entries[2].Duration)
	}
	if entries[1].Jumps != 1 || entries[0].Flowers != 21 {
		t.Errorf("fields not round-tripped: %+v / %+v", entries[0], entries[1])
	}

	all, err := store.Fastest(0, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 4 || all[0].Player != "cyd" {
		t.Errorf("Fastest(0) should include every goal, got %d records", len(all))
	}

	limited, err := store.Fastest(20, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 2 {
		t.Errorf("limit not applied, got %d records", len(limited))
	}
}

func TestStorePersonalBest(t *testing.T) {
	store := openTestStore(t)

	best, err := store.PersonalBest("ada", 20)
	if err != nil {
		t.Fatalf("PersonalBest() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("PersonalBest with no records = %v, expected 0", best)
	}

	store.SaveCompletion(Completion{Player: "ada", Duration: 80 * time.Second, Goal: 20})
	store.SaveCompletion(Completion{Player: "ada", Duration: 70 * time.Second, Goal: 20})
	store.SaveCompletion(Completion{Player: "bob", Duration: 30 * time.Second, Goal: 20})

	best, err = store.PersonalBest("ada", 20)
	if err != nil {
		t.Fatal(err)
	}
	if best != 70*time.Second {
		t.Errorf("PersonalBest = %v, expected 70s", best)
	}

	history, err := store.PlayerCompletions("ada", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(history) != 2 || history[0].Duration != 70*time.Second {
		t.Errorf("PlayerCompletions should be most recent first, got %+v", history)
	}
}

func TestStoreClearCompletions(t *testing.T) {
	store := openTestStore(t)
	store.SaveCompletion(Completion{Player: "ada", Duration: time.Second, Goal: 20})

	if err := store.ClearCompletions(); err != nil {
		t.Fatalf("ClearCompletions() failed: %v", err)
	}

	entries, err := store.Fastest(0, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no records after clear, got %d", len(entries))
	}
}
