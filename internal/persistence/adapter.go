// Package persistence writes snapshots of the Student and Course collections
// to durable storage and reads them back verbatim. A snapshot, when present,
// fully replaces the seed dataset on load; the two are never merged.
package persistence

import (
	"context"

	"github.com/dishabharti/campus/internal/app/models"
)

// Snapshot is a serialized copy of both collections.
type Snapshot struct {
	Students []models.Student `json:"students"`
	Courses  []models.Course  `json:"courses"`
}

// Adapter persists snapshots. Save is called after every successful mutation
// group; a crash between mutation and Save loses at most that group, which
// is the documented consistency boundary of the system.
type Adapter interface {
	// Load returns the stored snapshot. ok is false when no snapshot
	// exists, in which case the caller falls back to seed data.
	Load(ctx context.Context) (snap Snapshot, ok bool, err error)
	// Save replaces the stored snapshot with the given state.
	Save(ctx context.Context, snap Snapshot) error
	// Reset discards the snapshot so the next Load falls back to seed.
	Reset(ctx context.Context) error
	// Close releases any underlying resources.
	Close() error
}

// Storage slot names, kept from the browser incarnation's localStorage keys.
const (
	studentsSlot = "studentsData"
	coursesSlot  = "coursesData"
)
