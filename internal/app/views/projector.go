// Package views derives display-ready projections from store state. Every
// function here is pure: given the same snapshot it returns the same result,
// and nothing is cached, so store mutations are always reflected immediately.
package views

import (
	"strings"

	"github.com/dishabharti/campus/internal/app/models"
)

// Analytics aggregates the dashboard counters.
type Analytics struct {
	StudentCount    int `json:"studentCount"`
	CourseCount     int `json:"courseCount"`
	FeesCollected   int `json:"feesCollected"`
	FeesOutstanding int `json:"feesOutstanding"`
}

// CourseSplit partitions the catalog around one student's registration.
type CourseSplit struct {
	Enrolled  []models.Course `json:"enrolled"`
	Available []models.Course `json:"available"`
}

// FilterStudents returns students whose name or email contains the query,
// case-insensitively. An empty query returns all students; store order is
// preserved either way.
func FilterStudents(students []models.Student, query string) []models.Student {
	if query == "" {
		return students
	}
	q := strings.ToLower(query)
	out := make([]models.Student, 0, len(students))
	for _, st := range students {
		if strings.Contains(strings.ToLower(st.Name), q) || strings.Contains(strings.ToLower(st.Email), q) {
			out = append(out, st)
		}
	}
	return out
}

// ComputeAnalytics sums the dashboard figures fresh from the given state.
func ComputeAnalytics(students []models.Student, courses []models.Course) Analytics {
	a := Analytics{
		StudentCount: len(students),
		CourseCount:  len(courses),
	}
	for _, st := range students {
		a.FeesCollected += st.Fees.Paid
		a.FeesOutstanding += st.Fees.Due
	}
	return a
}

// SplitCourses partitions the full catalog by membership in the student's
// registration. Available is the strict complement of the enrolled set, so
// the split stays consistent even if the registration list carries
// duplicate or dangling ids.
func SplitCourses(student models.Student, courses []models.Course) CourseSplit {
	enrolled := make(map[string]bool, len(student.Registration.Courses))
	for _, id := range student.Registration.Courses {
		enrolled[id] = true
	}
	split := CourseSplit{
		Enrolled:  []models.Course{},
		Available: []models.Course{},
	}
	for _, c := range courses {
		if enrolled[c.ID] {
			split.Enrolled = append(split.Enrolled, c)
		} else {
			split.Available = append(split.Available, c)
		}
	}
	return split
}
