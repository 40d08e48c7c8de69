// Package services validates user-submitted changes, translates them into
// store operations, and snapshots the result. Validation failures abort
// before any store mutation, so a rejected form never leaves partial state.
package services

import (
	"context"
	"fmt"

	"github.com/dishabharti/campus/internal/app/store"
	"github.com/dishabharti/campus/internal/persistence"
)

// snapshotter persists the full store state after a successful mutation
// group. Persistence only runs after the mutation succeeded; a save failure
// is reported but the already-persisted snapshot is never corrupted.
type snapshotter struct {
	store   *store.Store
	adapter persistence.Adapter
}

func (s snapshotter) persist(ctx context.Context) error {
	snap := persistence.Snapshot{
		Students: s.store.ListStudents(),
		Courses:  s.store.ListCourses(),
	}
	if err := s.adapter.Save(ctx, snap); err != nil {
		return fmt.Errorf("persist snapshot: %w", err)
	}
	return nil
}
