package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dishabharti/campus/internal/app/store"
	"github.com/dishabharti/campus/internal/app/views"
	"github.com/dishabharti/campus/internal/persistence"
	"github.com/dishabharti/campus/internal/seed"
)

// csvHeader is the fixed export column order.
var csvHeader = []string{"StudentID", "Name", "Email", "TotalFees", "PaidFees", "DueFees", "Courses", "Fines"}

// DashboardService handles the admin dashboard aggregates, the CSV export
// and the destructive reset-to-seed action.
type DashboardService struct {
	store   *store.Store
	adapter persistence.Adapter
	logger  zerolog.Logger
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(st *store.Store, adapter persistence.Adapter, logger zerolog.Logger) *DashboardService {
	return &DashboardService{store: st, adapter: adapter, logger: logger}
}

// Analytics recomputes the dashboard counters from current state
func (s *DashboardService) Analytics() views.Analytics {
	return views.ComputeAnalytics(s.store.ListStudents(), s.store.ListCourses())
}

// ExportCSV renders the full student collection as a CSV document. Column
// order and quoting follow the export format the admin console always
// produced: string columns quoted, numeric columns bare, enrolled course
// ids joined with "; ".
func (s *DashboardService) ExportCSV() []byte {
	var b strings.Builder
	b.WriteString(strings.Join(csvHeader, ","))
	b.WriteString("\n")
	for _, st := range s.store.ListStudents() {
		fmt.Fprintf(&b, "%q,%q,%q,%d,%d,%d,%q,%d\n",
			st.StudentID,
			st.Name,
			st.Email,
			st.Fees.Total,
			st.Fees.Paid,
			st.Fees.Due,
			strings.Join(st.Registration.Courses, "; "),
			st.Library.Fines,
		)
	}
	return []byte(b.String())
}

// Reset discards the snapshot and reloads the seed dataset into the store.
// This cannot be undone.
func (s *DashboardService) Reset(ctx context.Context) error {
	if err := s.adapter.Reset(ctx); err != nil {
		return fmt.Errorf("discard snapshot: %w", err)
	}
	students, courses, err := seed.Load()
	if err != nil {
		return err
	}
	s.store.Replace(students, courses)
	s.logger.Info().Int("students", len(students)).Int("courses", len(courses)).Msg("Data reset to seed")
	return nil
}
