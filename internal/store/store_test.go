package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func setupStoreTest(t *testing.T) (*Store, func()) {
	t.Helper()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")
	s, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	return s, func() { s.Close() }
}

func TestOpenMemory(t *testing.T) {
	s, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer s.Close()

	// Verify tables exist by querying them
	if _, err := s.db.Exec("SELECT 1 FROM rows LIMIT 1"); err != nil {
		t.Errorf("rows table not created: %v", err)
	}
	if _, err := s.db.Exec("SELECT 1 FROM meta LIMIT 1"); err != nil {
		t.Errorf("meta table not created: %v", err)
	}
}

func TestReopenKeepsSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	s, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if _, err := s.Append(ctx, LevelInfo, "kept"); err != nil {
		t.Fatalf("Append() error: %v", err)
	}
	s.Close()

	s, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	defer s.Close()

	count, err := s.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error: %v", err)
	}
	if count != 1 {
		t.Errorf("expected count=1 after reopen, got %d", count)
	}
}

func TestSeed(t *testing.T) {
	s, cleanup := setupStoreTest(t)
	defer cleanup()
	ctx := context.Background()

	if err := s.Seed(ctx, 500); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}
	count, _ := s.Count(ctx)
	if count != 500 {
		t.Errorf("expected count=500, got %d", count)
	}

	// Seeding a populated store is a no-op.
	if err := s.Seed(ctx, 10); err != nil {
		t.Fatalf("second Seed() error: %v", err)
	}
	count, _ = s.Count(ctx)
	if count != 500 {
		t.Errorf("expected count to stay 500, got %d", count)
	}

	v, err := s.Version(ctx)
	if err != nil {
		t.Fatalf("Version() error: %v", err)
	}
	if v != 1 {
		t.Errorf("expected version=1 after one seed, got %d", v)
	}
}

func TestRowsByPosition(t *testing.T) {
	s, cleanup := setupStoreTest(t)
	defer cleanup()
	ctx := context.Background()

	if err := s.Seed(ctx, 100); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	rows, err := s.Rows(ctx, 40, 55)
	if err != nil {
		t.Fatalf("Rows() error: %v", err)
	}
	if len(rows) != 15 {
		t.Fatalf("expected 15 rows, got %d", len(rows))
	}
	for i, r := range rows {
		if r.Index != 40+i {
			t.Errorf("expected index %d, got %d", 40+i, r.Index)
		}
		if r.ID == "" {
			t.Error("expected non-empty row ID")
		}
	}

	// Past the end is clamped.
	rows, _ = s.Rows(ctx, 95, 200)
	if len(rows) != 5 {
		t.Errorf("expected 5 rows at the end, got %d", len(rows))
	}

	rows, _ = s.Rows(ctx, 10, 10)
	if len(rows) != 0 {
		t.Errorf("expected no rows for an empty range, got %d", len(rows))
	}
}

func TestAppend(t *testing.T) {
	s, cleanup := setupStoreTest(t)
	defer cleanup()
	ctx := context.Background()

	if err := s.Seed(ctx, 3); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}
	before, _ := s.Version(ctx)

	row, err := s.Append(ctx, LevelWarn, "disk almost full")
	if err != nil {
		t.Fatalf("Append() error: %v", err)
	}
	if row.Index != 3 {
		t.Errorf("expected index=3, got %d", row.Index)
	}

	after, _ := s.Version(ctx)
	if after != before+1 {
		t.Errorf("expected version %d, got %d", before+1, after)
	}

	fetched, err := s.Row(ctx, 3)
	if err != nil {
		t.Fatalf("Row() error: %v", err)
	}
	if fetched.ID != row.ID || fetched.Level != LevelWarn || fetched.Message != "disk almost full" {
		t.Errorf("expected appended row back, got %+v", fetched)
	}
}

func TestRowNotFound(t *testing.T) {
	s, cleanup := setupStoreTest(t)
	defer cleanup()

	_, err := s.Row(context.Background(), 7)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCanceledContext(t *testing.T) {
	s, cleanup := setupStoreTest(t)
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.Rows(ctx, 0, 10); err == nil {
		t.Error("expected an error for a canceled context")
	}
}
