package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileAdapter stores one JSON document per collection under a data
// directory. It is the direct analog of the browser's localStorage slots.
type FileAdapter struct {
	dir string
}

// NewFileAdapter creates the data directory if needed.
func NewFileAdapter(dir string) (*FileAdapter, error) {
	if dir == "" {
		dir = "data"
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileAdapter{dir: dir}, nil
}

func (a *FileAdapter) studentsPath() string { return filepath.Join(a.dir, studentsSlot+".json") }
func (a *FileAdapter) coursesPath() string  { return filepath.Join(a.dir, coursesSlot+".json") }

// Load reads both slots. A snapshot only counts as present when both files
// exist; a half-written pair is treated as absent rather than guessed at.
func (a *FileAdapter) Load(_ context.Context) (Snapshot, bool, error) {
	studentsRaw, err := os.ReadFile(a.studentsPath())
	if errors.Is(err, os.ErrNotExist) {
		return Snapshot{}, false, nil
	}
	if err != nil {
		return Snapshot{}, false, fmt.Errorf("read %s: %w", studentsSlot, err)
	}
	coursesRaw, err := os.ReadFile(a.coursesPath())
	if errors.Is(err, os.ErrNotExist) {
		return Snapshot{}, false, nil
	}
	if err != nil {
		return Snapshot{}, false, fmt.Errorf("read %s: %w", coursesSlot, err)
	}

	var snap Snapshot
	if err := json.Unmarshal(studentsRaw, &snap.Students); err != nil {
		return Snapshot{}, false, fmt.Errorf("decode %s: %w", studentsSlot, err)
	}
	if err := json.Unmarshal(coursesRaw, &snap.Courses); err != nil {
		return Snapshot{}, false, fmt.Errorf("decode %s: %w", coursesSlot, err)
	}
	return snap, true, nil
}

// Save serializes both collections to their slots.
func (a *FileAdapter) Save(_ context.Context, snap Snapshot) error {
	students, err := json.MarshalIndent(snap.Students, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", studentsSlot, err)
	}
	courses, err := json.MarshalIndent(snap.Courses, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", coursesSlot, err)
	}
	if err := os.WriteFile(a.studentsPath(), students, 0o640); err != nil {
		return fmt.Errorf("write %s: %w", studentsSlot, err)
	}
	if err := os.WriteFile(a.coursesPath(), courses, 0o640); err != nil {
		return fmt.Errorf("write %s: %w", coursesSlot, err)
	}
	return nil
}

// Reset removes both slots.
func (a *FileAdapter) Reset(_ context.Context) error {
	for _, path := range []string{a.studentsPath(), a.coursesPath()} {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("remove %s: %w", path, err)
		}
	}
	return nil
}

// Close is a no-op for the file driver.
func (a *FileAdapter) Close() error { return nil }
