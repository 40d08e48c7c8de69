package views

import (
	"testing"

	"github.com/dishabharti/campus/internal/app/models"
)

func sampleStudents() []models.Student {
	return []models.Student{
		{ID: "user1", Name: "Priya Sharma", Email: "priya.sharma@example.com",
			Fees: models.Fees{Total: 50000, Paid: 50000, Due: 0}},
		{ID: "user2", Name: "Amit Kumar", Email: "amit.kumar@example.com",
			Fees: models.Fees{Total: 60000, Paid: 30000, Due: 30000}},
		{ID: "user3", Name: "Rahul Verma", Email: "rahul.verma@example.com",
			Fees: models.Fees{Total: 55000, Paid: 55000, Due: 0}},
	}
}

func TestFilterStudentsEmptyQuery(t *testing.T) {
	students := sampleStudents()
	got := FilterStudents(students, "")
	if len(got) != len(students) {
		t.Fatalf("got %d students, want %d", len(got), len(students))
	}
	for i := range students {
		if got[i].ID != students[i].ID {
			t.Fatalf("order changed at %d: %q", i, got[i].ID)
		}
	}
}

func TestFilterStudentsMatchesNameOrEmail(t *testing.T) {
	students := sampleStudents()

	got := FilterStudents(students, "PRIYA")
	if len(got) != 1 || got[0].ID != "user1" {
		t.Fatalf("name match: %+v", got)
	}

	got = FilterStudents(students, "kumar@example")
	if len(got) != 1 || got[0].ID != "user2" {
		t.Fatalf("email match: %+v", got)
	}

	got = FilterStudents(students, "example.com")
	if len(got) != 3 {
		t.Fatalf("broad match: got %d, want 3", len(got))
	}

	got = FilterStudents(students, "nobody")
	if len(got) != 0 {
		t.Fatalf("no match: %+v", got)
	}
}

func TestComputeAnalytics(t *testing.T) {
	a := ComputeAnalytics(sampleStudents(), []models.Course{{ID: "c1"}, {ID: "c2"}})
	if a.StudentCount != 3 || a.CourseCount != 2 {
		t.Fatalf("counts = %+v", a)
	}
	if a.FeesCollected != 135000 {
		t.Fatalf("collected = %d", a.FeesCollected)
	}
	if a.FeesOutstanding != 30000 {
		t.Fatalf("outstanding = %d", a.FeesOutstanding)
	}
}

func TestComputeAnalyticsEmpty(t *testing.T) {
	a := ComputeAnalytics(nil, nil)
	if a != (Analytics{}) {
		t.Fatalf("a = %+v, want zero", a)
	}
}

func TestSplitCourses(t *testing.T) {
	catalog := []models.Course{
		{ID: "c1", Name: "A"},
		{ID: "c2", Name: "B"},
		{ID: "c3", Name: "C"},
	}
	st := models.Student{Registration: models.Registration{Courses: []string{"c2"}}}

	split := SplitCourses(st, catalog)
	if len(split.Enrolled) != 1 || split.Enrolled[0].ID != "c2" {
		t.Fatalf("enrolled = %+v", split.Enrolled)
	}
	if len(split.Available) != 2 || split.Available[0].ID != "c1" || split.Available[1].ID != "c3" {
		t.Fatalf("available = %+v", split.Available)
	}
}

func TestSplitCoursesDuplicateAndDanglingIDs(t *testing.T) {
	catalog := []models.Course{{ID: "c1", Name: "A"}}
	st := models.Student{Registration: models.Registration{Courses: []string{"c1", "c1", "ghost"}}}

	split := SplitCourses(st, catalog)
	// duplicate registration entries yield one catalog entry, dangling ids none
	if len(split.Enrolled) != 1 || split.Enrolled[0].ID != "c1" {
		t.Fatalf("enrolled = %+v", split.Enrolled)
	}
	if len(split.Available) != 0 {
		t.Fatalf("available = %+v", split.Available)
	}
}

func TestSplitCoursesEmptyRegistration(t *testing.T) {
	catalog := []models.Course{{ID: "c1"}, {ID: "c2"}}
	split := SplitCourses(models.Student{}, catalog)
	if len(split.Enrolled) != 0 || len(split.Available) != 2 {
		t.Fatalf("split = %+v", split)
	}
	if split.Enrolled == nil || split.Available == nil {
		t.Fatal("slices must be non-nil for JSON encoding")
	}
}
