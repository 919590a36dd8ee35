package v1

import (
	"path/filepath"
	"testing"
)

func TestHistoryRecordAndRecent(t *testing.T) {
	store, err := OpenHistory(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("OpenHistory failed: %v", err)
	}
	defer store.Close()

	if err := store.Record("rows", "seed_2.4_OFDM"); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := store.Record("columns", "seed - 2437"); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	entries, err := store.Recent(10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	// Newest first.
	if entries[0].Title != "seed - 2437" || entries[0].Mode != "columns" {
		t.Errorf("Unexpected newest entry: %+v", entries[0])
	}
	if entries[1].Title != "seed_2.4_OFDM" || entries[1].Mode != "rows" {
		t.Errorf("Unexpected oldest entry: %+v", entries[1])
	}
	if entries[0].CreatedAt == "" {
		t.Error("Expected a timestamp on the entry")
	}
}

func TestHistoryRecentLimit(t *testing.T) {
	store, err := OpenHistory(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("OpenHistory failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		if err := store.Record("rows", "title"); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}
	entries, err := store.Recent(3)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("Expected 3 entries, got %d", len(entries))
	}
}

func TestHistorySurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	store, err := OpenHistory(path)
	if err != nil {
		t.Fatalf("OpenHistory failed: %v", err)
	}
	if err := store.Record("rows", "kept"); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	store.Close()

	reopened, err := OpenHistory(path)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer reopened.Close()

	entries, err := reopened.Recent(1)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Title != "kept" {
		t.Errorf("Expected persisted entry, got %v", entries)
	}
}
