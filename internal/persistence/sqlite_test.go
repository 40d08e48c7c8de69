package persistence

import (
	"context"
	"path/filepath"
	"testing"
)

func newSQLite(t *testing.T) *SQLiteAdapter {
	t.Helper()
	a, err := NewSQLiteAdapter(filepath.Join(t.TempDir(), "campus.db"))
	if err != nil {
		t.Fatalf("NewSQLiteAdapter: %v", err)
	}
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func TestSQLiteAdapterRoundTrip(t *testing.T) {
	a := newSQLite(t)
	ctx := context.Background()

	if err := a.Save(ctx, sampleSnapshot()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, ok, err := a.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ok {
		t.Fatal("snapshot should be present after Save")
	}
	assertSnapshotEqual(t, got, sampleSnapshot())
}

func TestSQLiteAdapterLoadAbsent(t *testing.T) {
	a := newSQLite(t)
	_, ok, err := a.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ok {
		t.Fatal("fresh database must report no snapshot")
	}
}

func TestSQLiteAdapterSaveOverwrites(t *testing.T) {
	a := newSQLite(t)
	ctx := context.Background()

	if err := a.Save(ctx, sampleSnapshot()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	second := sampleSnapshot()
	second.Students[0].Name = "Priya S"
	second.Students[0].Fees.Paid = 50000
	second.Students[0].Fees.Due = 0
	if err := a.Save(ctx, second); err != nil {
		t.Fatalf("Save again: %v", err)
	}

	got, ok, err := a.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ok {
		t.Fatal("snapshot missing after overwrite")
	}
	if len(got.Students) != 1 || got.Students[0].Name != "Priya S" {
		t.Fatalf("students = %+v, want overwritten record", got.Students)
	}
	if got.Students[0].Fees.Due != 0 {
		t.Fatalf("fees = %+v", got.Students[0].Fees)
	}
}

func TestSQLiteAdapterReset(t *testing.T) {
	a := newSQLite(t)
	ctx := context.Background()

	if err := a.Save(ctx, sampleSnapshot()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := a.Reset(ctx); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	_, ok, err := a.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ok {
		t.Fatal("snapshot should be gone after Reset")
	}
}

func TestSQLiteAdapterReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campus.db")
	ctx := context.Background()

	a, err := NewSQLiteAdapter(path)
	if err != nil {
		t.Fatalf("NewSQLiteAdapter: %v", err)
	}
	if err := a.Save(ctx, sampleSnapshot()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := a.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	b, err := NewSQLiteAdapter(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = b.Close() }()

	got, ok, err := b.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ok {
		t.Fatal("snapshot must survive reopen")
	}
	assertSnapshotEqual(t, got, sampleSnapshot())
}
