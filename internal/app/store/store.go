// Package store owns the authoritative in-memory Student and Course
// collections. All mutation goes through the operations below; callers only
// ever see deep copies, so the collections cannot be modified from outside.
package store

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/dishabharti/campus/internal/app/models"
	"github.com/dishabharti/campus/internal/pkg/apperrors"
)

// Store holds both collections in insertion order. A single RWMutex makes
// every operation atomic from the caller's perspective; there is exactly one
// logical writer (the HTTP layer serializes per-request work), the lock just
// keeps concurrent reads safe.
type Store struct {
	mu       sync.RWMutex
	students []*models.Student
	courses  []*models.Course
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// Replace swaps in a full dataset, e.g. after loading a snapshot or seed.
// Input slices are deep-copied.
func (s *Store) Replace(students []models.Student, courses []models.Course) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.students = make([]*models.Student, 0, len(students))
	for i := range students {
		st := students[i].Clone()
		s.students = append(s.students, &st)
	}
	s.courses = make([]*models.Course, 0, len(courses))
	for i := range courses {
		c := courses[i]
		s.courses = append(s.courses, &c)
	}
}

// ListStudents returns a deep copy of the student collection in insertion order.
func (s *Store) ListStudents() []models.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Student, 0, len(s.students))
	for _, st := range s.students {
		out = append(out, st.Clone())
	}
	return out
}

// GetStudent returns a copy of the student with the given id.
func (s *Store) GetStudent(id string) (models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := s.findStudent(id)
	if st == nil {
		return models.Student{}, apperrors.ErrStudentNotFound
	}
	return st.Clone(), nil
}

// FindStudentByEmail returns the student whose email matches exactly.
func (s *Store) FindStudentByEmail(email string) (models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, st := range s.students {
		if st.Email == email {
			return st.Clone(), nil
		}
	}
	return models.Student{}, apperrors.ErrStudentNotFound
}

// UpsertStudent merges the given record into an existing student when the id
// matches, or creates a new student with required defaults otherwise. Name
// and email are required either way. Returns the stored record.
//
// Merge covers the fields editable on the admin profile/fees tabs: name,
// email, password (only when non-empty), fee total (only when positive),
// amount paid and library fines. Due is recomputed as total - paid; values
// are deliberately not clamped, matching the system this replaces.
func (s *Store) UpsertStudent(in models.Student) (models.Student, error) {
	if strings.TrimSpace(in.Name) == "" {
		return models.Student{}, apperrors.NewValidationError("student name is required")
	}
	if strings.TrimSpace(in.Email) == "" {
		return models.Student{}, apperrors.NewValidationError("student email is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if in.ID != "" {
		if st := s.findStudent(in.ID); st != nil {
			st.Name = in.Name
			st.Email = in.Email
			if in.Password != "" {
				st.Password = in.Password
			}
			if in.Fees.Total > 0 {
				st.Fees.Total = in.Fees.Total
			}
			st.Fees.Paid = in.Fees.Paid
			st.Fees.Due = st.Fees.Total - st.Fees.Paid
			st.Library.Fines = in.Library.Fines
			return st.Clone(), nil
		}
	}

	st := in.Clone()
	if st.ID == "" {
		st.ID = uuid.NewString()
	}
	if st.Password == "" {
		st.Password = "password123"
	}
	if st.StudentID == "" {
		st.StudentID = newDisplayCode()
	}
	if st.Fees.Total == 0 {
		st.Fees.Total = models.DefaultTotalFees
	}
	st.Fees.Due = st.Fees.Total - st.Fees.Paid
	if st.Registration.Status == "" {
		st.Registration.Status = models.RegistrationCompleted
	}
	if st.Registration.Courses == nil {
		st.Registration.Courses = []string{}
	}
	if st.Results == nil {
		st.Results = map[string]string{}
	}
	if st.Library.Issued == nil {
		st.Library.Issued = []string{}
	}
	s.students = append(s.students, &st)
	return st.Clone(), nil
}

// DeleteStudent removes a student. Absent ids are a no-op; enrollments and
// loans die with the record (hard delete, no tombstone).
func (s *Store) DeleteStudent(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, st := range s.students {
		if st.ID == id {
			s.students = append(s.students[:i], s.students[i+1:]...)
			return
		}
	}
}

// ListCourses returns a copy of the course catalog in insertion order.
func (s *Store) ListCourses() []models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Course, 0, len(s.courses))
	for _, c := range s.courses {
		out = append(out, *c)
	}
	return out
}

// GetCourse returns a copy of the course with the given id.
func (s *Store) GetCourse(id string) (models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c := s.findCourse(id)
	if c == nil {
		return models.Course{}, apperrors.ErrCourseNotFound
	}
	return *c, nil
}

// UpsertCourse updates an existing course when the id matches, or adds a new
// catalog entry otherwise. Name and courseCode are required and credits must
// be positive. Course codes are not deduplicated; the catalog historically
// allowed repeats and nothing downstream keys on the code.
func (s *Store) UpsertCourse(in models.Course) (models.Course, error) {
	if strings.TrimSpace(in.Name) == "" {
		return models.Course{}, apperrors.NewValidationError("course name is required")
	}
	if strings.TrimSpace(in.CourseCode) == "" {
		return models.Course{}, apperrors.NewValidationError("course code is required")
	}
	if in.Credits <= 0 {
		return models.Course{}, apperrors.NewValidationError("course credits must be a positive number")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if in.ID != "" {
		if c := s.findCourse(in.ID); c != nil {
			c.Name = in.Name
			c.CourseCode = in.CourseCode
			c.Credits = in.Credits
			return *c, nil
		}
	}

	c := in
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	s.courses = append(s.courses, &c)
	return c, nil
}

// DeleteCourse removes a catalog entry. Absent ids are a no-op. Student
// enrollments referencing the course are left untouched; the dangling
// reference is preserved rather than cleaned up (see DESIGN.md).
func (s *Store) DeleteCourse(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.courses {
		if c.ID == id {
			s.courses = append(s.courses[:i], s.courses[i+1:]...)
			return
		}
	}
}

// Enroll adds courseID to the student's registration. Enrolling an
// already-enrolled pair is a no-op, deduplicated on membership even though
// the registration is stored as a list. The course must exist.
func (s *Store) Enroll(studentID, courseID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.findStudent(studentID)
	if st == nil {
		return apperrors.ErrStudentNotFound
	}
	if s.findCourse(courseID) == nil {
		return apperrors.ErrCourseNotFound
	}
	for _, id := range st.Registration.Courses {
		if id == courseID {
			return nil
		}
	}
	st.Registration.Courses = append(st.Registration.Courses, courseID)
	return nil
}

// Unenroll removes every occurrence of courseID from the student's
// registration. Removing an absent course is a no-op.
func (s *Store) Unenroll(studentID, courseID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.findStudent(studentID)
	if st == nil {
		return apperrors.ErrStudentNotFound
	}
	kept := st.Registration.Courses[:0]
	for _, id := range st.Registration.Courses {
		if id != courseID {
			kept = append(kept, id)
		}
	}
	st.Registration.Courses = kept
	return nil
}

// RecordResult upserts the grade for a semester. Last write wins; there is
// no grade history.
func (s *Store) RecordResult(studentID, semester, grade string) error {
	if strings.TrimSpace(semester) == "" || strings.TrimSpace(grade) == "" {
		return apperrors.NewValidationError("semester and grade are required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.findStudent(studentID)
	if st == nil {
		return apperrors.ErrStudentNotFound
	}
	if st.Results == nil {
		st.Results = map[string]string{}
	}
	st.Results[semester] = grade
	return nil
}

// RemoveResult drops the grade recorded for a semester, if any.
func (s *Store) RemoveResult(studentID, semester string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.findStudent(studentID)
	if st == nil {
		return apperrors.ErrStudentNotFound
	}
	delete(st.Results, semester)
	return nil
}

// IssueBook appends a title to the student's issued list. Duplicate titles
// are allowed; ReturnBook resolves them first-match.
func (s *Store) IssueBook(studentID, title string) error {
	if strings.TrimSpace(title) == "" {
		return apperrors.NewValidationError("book title is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.findStudent(studentID)
	if st == nil {
		return apperrors.ErrStudentNotFound
	}
	st.Library.Issued = append(st.Library.Issued, title)
	return nil
}

// ReturnBook removes the first exact-title match from the student's issued
// list, leaving any further copies in place. Returning a title that is not
// issued is a no-op.
func (s *Store) ReturnBook(studentID, title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.findStudent(studentID)
	if st == nil {
		return apperrors.ErrStudentNotFound
	}
	for i, issued := range st.Library.Issued {
		if issued == title {
			st.Library.Issued = append(st.Library.Issued[:i], st.Library.Issued[i+1:]...)
			return nil
		}
	}
	return nil
}

// SetFinesAndPayment records the amount paid and current library fines, and
// recomputes the due balance. Neither value is clamped: negative or
// over-total payments are accepted as-is, a quirk carried over deliberately.
func (s *Store) SetFinesAndPayment(studentID string, paid, fines int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.findStudent(studentID)
	if st == nil {
		return apperrors.ErrStudentNotFound
	}
	st.Fees.Paid = paid
	st.Fees.Due = st.Fees.Total - paid
	st.Library.Fines = fines
	return nil
}

func (s *Store) findStudent(id string) *models.Student {
	for _, st := range s.students {
		if st.ID == id {
			return st
		}
	}
	return nil
}

func (s *Store) findCourse(id string) *models.Course {
	for _, c := range s.courses {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// newDisplayCode produces the 6-digit code shown on ID cards and exports.
func newDisplayCode() string {
	return fmt.Sprintf("%06d", 100000+rand.Intn(900000))
}
