package services

import (
	"context"

	"github.com/dishabharti/campus/internal/app/models"
	"github.com/dishabharti/campus/internal/app/models/dto"
	"github.com/dishabharti/campus/internal/app/store"
	"github.com/dishabharti/campus/internal/persistence"
)

// CourseService handles catalog operations for the admin console
type CourseService struct {
	store *store.Store
	snap  snapshotter
}

// NewCourseService creates a new course service instance
func NewCourseService(st *store.Store, adapter persistence.Adapter) *CourseService {
	return &CourseService{
		store: st,
		snap:  snapshotter{store: st, adapter: adapter},
	}
}

// ListCourses returns the catalog in insertion order
func (s *CourseService) ListCourses() []models.Course {
	return s.store.ListCourses()
}

// GetCourse retrieves a single catalog entry
func (s *CourseService) GetCourse(id string) (models.Course, error) {
	return s.store.GetCourse(id)
}

// CreateCourse adds a catalog entry
func (s *CourseService) CreateCourse(ctx context.Context, req dto.CourseRequest) (models.Course, error) {
	c, err := s.store.UpsertCourse(models.Course{
		Name:       req.Name,
		CourseCode: req.CourseCode,
		Credits:    req.Credits,
	})
	if err != nil {
		return models.Course{}, err
	}
	if err := s.snap.persist(ctx); err != nil {
		return models.Course{}, err
	}
	return c, nil
}

// UpdateCourse applies the edit form to an existing entry
func (s *CourseService) UpdateCourse(ctx context.Context, id string, req dto.CourseRequest) (models.Course, error) {
	if _, err := s.store.GetCourse(id); err != nil {
		return models.Course{}, err
	}
	c, err := s.store.UpsertCourse(models.Course{
		ID:         id,
		Name:       req.Name,
		CourseCode: req.CourseCode,
		Credits:    req.Credits,
	})
	if err != nil {
		return models.Course{}, err
	}
	if err := s.snap.persist(ctx); err != nil {
		return models.Course{}, err
	}
	return c, nil
}

// DeleteCourse removes a catalog entry. Enrollments pointing at the course
// are deliberately left in place.
func (s *CourseService) DeleteCourse(ctx context.Context, id string) error {
	s.store.DeleteCourse(id)
	return s.snap.persist(ctx)
}
