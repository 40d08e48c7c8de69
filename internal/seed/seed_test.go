package seed

import "testing"

func TestLoad(t *testing.T) {
	students, courses, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(students) != 3 {
		t.Fatalf("got %d students", len(students))
	}
	if len(courses) != 4 {
		t.Fatalf("got %d courses", len(courses))
	}

	for _, st := range students {
		if st.ID == "" || st.Name == "" || st.Email == "" || st.StudentID == "" {
			t.Fatalf("incomplete seed record: %+v", st)
		}
		if st.Fees.Due != st.Fees.Total-st.Fees.Paid {
			t.Fatalf("%s: due = %d, want %d", st.ID, st.Fees.Due, st.Fees.Total-st.Fees.Paid)
		}
	}

	// seed registrations only reference real courses
	catalog := map[string]bool{}
	for _, c := range courses {
		if c.ID == "" || c.Name == "" || c.CourseCode == "" || c.Credits <= 0 {
			t.Fatalf("incomplete seed course: %+v", c)
		}
		catalog[c.ID] = true
	}
	for _, st := range students {
		for _, id := range st.Registration.Courses {
			if !catalog[id] {
				t.Fatalf("%s enrolled in unknown course %q", st.ID, id)
			}
		}
	}
}
