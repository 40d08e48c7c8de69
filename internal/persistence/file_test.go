package persistence

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dishabharti/campus/internal/app/models"
)

func sampleSnapshot() Snapshot {
	return Snapshot{
		Students: []models.Student{{
			ID: "user1", Name: "Priya Sharma", Email: "priya@example.com",
			Password: "password123", StudentID: "100001",
			Fees:         models.Fees{Total: 50000, Paid: 20000, Due: 30000},
			Registration: models.Registration{Status: "Completed", Courses: []string{"c1"}},
			Results:      map[string]string{"Semester 1": "A"},
			Library:      models.Library{Issued: []string{"The Lean Startup"}, Fines: 50},
		}},
		Courses: []models.Course{{ID: "c1", Name: "Principles of Management", CourseCode: "BBA101", Credits: 4}},
	}
}

func assertSnapshotEqual(t *testing.T, got, want Snapshot) {
	t.Helper()
	if len(got.Students) != len(want.Students) || len(got.Courses) != len(want.Courses) {
		t.Fatalf("sizes: got %d/%d, want %d/%d",
			len(got.Students), len(got.Courses), len(want.Students), len(want.Courses))
	}
	gs, ws := got.Students[0], want.Students[0]
	if gs.ID != ws.ID || gs.Name != ws.Name || gs.Password != ws.Password {
		t.Fatalf("student = %+v, want %+v", gs, ws)
	}
	if gs.Fees != ws.Fees {
		t.Fatalf("fees = %+v, want %+v", gs.Fees, ws.Fees)
	}
	if len(gs.Registration.Courses) != 1 || gs.Registration.Courses[0] != "c1" {
		t.Fatalf("registration = %+v", gs.Registration)
	}
	if gs.Results["Semester 1"] != "A" {
		t.Fatalf("results = %v", gs.Results)
	}
	if len(gs.Library.Issued) != 1 || gs.Library.Fines != ws.Library.Fines {
		t.Fatalf("library = %+v", gs.Library)
	}
	if got.Courses[0] != want.Courses[0] {
		t.Fatalf("course = %+v, want %+v", got.Courses[0], want.Courses[0])
	}
}

func TestFileAdapterRoundTrip(t *testing.T) {
	a, err := NewFileAdapter(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileAdapter: %v", err)
	}
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

func TestFileAdapterLoadAbsent(t *testing.T) {
	a, err := NewFileAdapter(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileAdapter: %v", err)
	}
	_, ok, err := a.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ok {
		t.Fatal("empty directory must report no snapshot")
	}
}

func TestFileAdapterHalfWrittenPairIsAbsent(t *testing.T) {
	dir := t.TempDir()
	a, err := NewFileAdapter(dir)
	if err != nil {
		t.Fatalf("NewFileAdapter: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "studentsData.json"), []byte("[]"), 0o640); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, ok, err := a.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ok {
		t.Fatal("one missing slot must report no snapshot")
	}
}

func TestFileAdapterLoadCorruptSlot(t *testing.T) {
	dir := t.TempDir()
	a, err := NewFileAdapter(dir)
	if err != nil {
		t.Fatalf("NewFileAdapter: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "studentsData.json"), []byte("{nope"), 0o640); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "coursesData.json"), []byte("[]"), 0o640); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, _, err := a.Load(context.Background()); err == nil {
		t.Fatal("corrupt slot must fail loudly, not fall back silently")
	}
}

func TestFileAdapterReset(t *testing.T) {
	a, err := NewFileAdapter(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileAdapter: %v", err)
	}
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
	// reset with nothing stored is fine
	if err := a.Reset(ctx); err != nil {
		t.Fatalf("Reset empty: %v", err)
	}
}
