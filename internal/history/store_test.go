package history

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestRecordAndRecent(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for _, pair := range [][2]string{
		{"1", "First"},
		{"2", "Second"},
		{"3", "Third"},
	} {
		if err := store.Record(ctx, pair[0], pair[1]); err != nil {
			t.Fatalf("Record(%q) returned error: %v", pair[0], err)
		}
	}

	entries, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent returned error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].MovieID != "3" {
		t.Fatalf("expected newest first, got %v", entries)
	}
}

func TestRecordUpsertsSameMovie(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.Record(ctx, "42", "Old Title"); err != nil {
		t.Fatalf("Record returned error: %v", err)
	}
	if err := store.Record(ctx, "42", "New Title"); err != nil {
		t.Fatalf("Record returned error: %v", err)
	}

	entries, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent returned error: %v", err)
	}
	if len(entries) != 1 || entries[0].Title != "New Title" {
		t.Fatalf("unexpected entries: %v", entries)
	}
}

func TestRecordRejectsEmptyID(t *testing.T) {
	store := openTestStore(t)
	if err := store.Record(context.Background(), " ", "x"); err == nil {
		t.Fatal("expected error for empty movie id")
	}
}

func TestPruneKeepsNewest(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"1", "2", "3", "4", "5"} {
		if err := store.Record(ctx, id, "Movie "+id); err != nil {
			t.Fatalf("Record returned error: %v", err)
		}
	}
	if err := store.Prune(ctx, 2); err != nil {
		t.Fatalf("Prune returned error: %v", err)
	}

	entries, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries after prune, got %d", len(entries))
	}
	if entries[0].MovieID != "5" || entries[1].MovieID != "4" {
		t.Fatalf("unexpected survivors: %v", entries)
	}
}
