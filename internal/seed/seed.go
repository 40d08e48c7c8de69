// Package seed carries the default dataset used whenever no snapshot exists.
package seed

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/dishabharti/campus/internal/app/models"
	"github.com/dishabharti/campus/internal/pkg/apperrors"
)

//go:embed data/students.json data/courses.json
var dataFS embed.FS

// Load decodes the embedded seed documents. Any decode failure is a
// LoadFailure: the caller must surface it instead of starting with a blank
// dataset.
func Load() ([]models.Student, []models.Course, error) {
	studentsRaw, err := dataFS.ReadFile("data/students.json")
	if err != nil {
		return nil, nil, fmt.Errorf("%w: read students seed: %v", apperrors.ErrLoadFailure, err)
	}
	var students []models.Student
	if err := json.Unmarshal(studentsRaw, &students); err != nil {
		return nil, nil, fmt.Errorf("%w: decode students seed: %v", apperrors.ErrLoadFailure, err)
	}

	coursesRaw, err := dataFS.ReadFile("data/courses.json")
	if err != nil {
		return nil, nil, fmt.Errorf("%w: read courses seed: %v", apperrors.ErrLoadFailure, err)
	}
	var courses []models.Course
	if err := json.Unmarshal(coursesRaw, &courses); err != nil {
		return nil, nil, fmt.Errorf("%w: decode courses seed: %v", apperrors.ErrLoadFailure, err)
	}

	return students, courses, nil
}
