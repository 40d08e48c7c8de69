package services

import (
	"context"

	"github.com/dishabharti/campus/internal/app/models"
	"github.com/dishabharti/campus/internal/app/models/dto"
	"github.com/dishabharti/campus/internal/app/store"
	"github.com/dishabharti/campus/internal/app/views"
	"github.com/dishabharti/campus/internal/persistence"
)

// StudentService handles student record operations for the admin console
type StudentService struct {
	store *store.Store
	snap  snapshotter
}

// NewStudentService creates a new student service instance
func NewStudentService(st *store.Store, adapter persistence.Adapter) *StudentService {
	return &StudentService{
		store: st,
		snap:  snapshotter{store: st, adapter: adapter},
	}
}

// ListStudents returns students filtered by a case-insensitive substring
// match over name or email. An empty query returns everyone in store order.
func (s *StudentService) ListStudents(query string) []models.Student {
	return views.FilterStudents(s.store.ListStudents(), query)
}

// GetStudent retrieves a single student record
func (s *StudentService) GetStudent(id string) (models.Student, error) {
	return s.store.GetStudent(id)
}

// CreateStudent adds a student from the admin console form
func (s *StudentService) CreateStudent(ctx context.Context, req dto.CreateStudentRequest) (models.Student, error) {
	st, err := s.store.UpsertStudent(models.Student{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Fees: models.Fees{
			Total: req.TotalFees,
			Paid:  req.PaidFees,
		},
	})
	if err != nil {
		return models.Student{}, err
	}
	if err := s.snap.persist(ctx); err != nil {
		return models.Student{}, err
	}
	return st, nil
}

// UpdateStudent applies the admin profile/fees edit form to an existing
// record. The form is all-or-nothing: nothing is stored on validation
// failure or when the id is stale.
func (s *StudentService) UpdateStudent(ctx context.Context, id string, req dto.UpdateStudentRequest) (models.Student, error) {
	existing, err := s.store.GetStudent(id)
	if err != nil {
		return models.Student{}, err
	}
	st, err := s.store.UpsertStudent(models.Student{
		ID:       existing.ID,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Fees: models.Fees{
			Paid: req.PaidFees,
		},
		Library: models.Library{
			Fines: req.Fines,
		},
	})
	if err != nil {
		return models.Student{}, err
	}
	if err := s.snap.persist(ctx); err != nil {
		return models.Student{}, err
	}
	return st, nil
}

// DeleteStudent hard-deletes a record; deleting an absent id is a no-op.
func (s *StudentService) DeleteStudent(ctx context.Context, id string) error {
	s.store.DeleteStudent(id)
	return s.snap.persist(ctx)
}

// Enroll adds a course to a student's registration (idempotent)
func (s *StudentService) Enroll(ctx context.Context, studentID, courseID string) error {
	if err := s.store.Enroll(studentID, courseID); err != nil {
		return err
	}
	return s.snap.persist(ctx)
}

// Unenroll removes a course from a student's registration
func (s *StudentService) Unenroll(ctx context.Context, studentID, courseID string) error {
	if err := s.store.Unenroll(studentID, courseID); err != nil {
		return err
	}
	return s.snap.persist(ctx)
}

// CourseSplit partitions the catalog into the student's enrolled and
// still-available courses.
func (s *StudentService) CourseSplit(studentID string) (views.CourseSplit, error) {
	st, err := s.store.GetStudent(studentID)
	if err != nil {
		return views.CourseSplit{}, err
	}
	return views.SplitCourses(st, s.store.ListCourses()), nil
}

// RecordResult upserts a semester grade (last write wins)
func (s *StudentService) RecordResult(ctx context.Context, studentID string, req dto.ResultRequest) error {
	if err := s.store.RecordResult(studentID, req.Semester, req.Grade); err != nil {
		return err
	}
	return s.snap.persist(ctx)
}

// RemoveResult deletes a semester grade
func (s *StudentService) RemoveResult(ctx context.Context, studentID, semester string) error {
	if err := s.store.RemoveResult(studentID, semester); err != nil {
		return err
	}
	return s.snap.persist(ctx)
}

// IssueBook appends a title to the student's issued list
func (s *StudentService) IssueBook(ctx context.Context, studentID, title string) error {
	if err := s.store.IssueBook(studentID, title); err != nil {
		return err
	}
	return s.snap.persist(ctx)
}

// ReturnBook removes the first exact-title match from the issued list
func (s *StudentService) ReturnBook(ctx context.Context, studentID, title string) error {
	if err := s.store.ReturnBook(studentID, title); err != nil {
		return err
	}
	return s.snap.persist(ctx)
}

// UpdateFees records a payment and fines adjustment, recomputing the due
// balance. Values are not clamped.
func (s *StudentService) UpdateFees(ctx context.Context, studentID string, req dto.FeesUpdateRequest) (models.Student, error) {
	if err := s.store.SetFinesAndPayment(studentID, req.PaidFees, req.Fines); err != nil {
		return models.Student{}, err
	}
	if err := s.snap.persist(ctx); err != nil {
		return models.Student{}, err
	}
	return s.store.GetStudent(studentID)
}
