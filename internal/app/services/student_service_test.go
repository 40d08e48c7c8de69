package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dishabharti/campus/internal/app/models"
	"github.com/dishabharti/campus/internal/app/models/dto"
	"github.com/dishabharti/campus/internal/app/store"
	"github.com/dishabharti/campus/internal/persistence"
	"github.com/dishabharti/campus/internal/pkg/apperrors"
)

// memAdapter keeps the last saved snapshot in memory and counts calls, so
// tests can assert that mutations are followed by a persist.
type memAdapter struct {
	snap   persistence.Snapshot
	ok     bool
	saves  int
	resets int
	fail   error
}

func (a *memAdapter) Load(context.Context) (persistence.Snapshot, bool, error) {
	return a.snap, a.ok, nil
}

func (a *memAdapter) Save(_ context.Context, snap persistence.Snapshot) error {
	if a.fail != nil {
		return a.fail
	}
	a.snap = snap
	a.ok = true
	a.saves++
	return nil
}

func (a *memAdapter) Reset(context.Context) error {
	a.snap = persistence.Snapshot{}
	a.ok = false
	a.resets++
	return nil
}

func (a *memAdapter) Close() error { return nil }

func newStudentFixture(t *testing.T) (*StudentService, *store.Store, *memAdapter) {
	t.Helper()
	st := store.New()
	st.Replace(
		[]models.Student{{
			ID: "user1", Name: "Priya Sharma", Email: "priya@example.com",
			Password: "password123", StudentID: "100001",
			Fees:         models.Fees{Total: 50000, Paid: 20000, Due: 30000},
			Registration: models.Registration{Status: models.RegistrationCompleted, Courses: []string{"c1"}},
			Results:      map[string]string{},
			Library:      models.Library{Issued: []string{}},
		}},
		[]models.Course{
			{ID: "c1", Name: "Principles of Management", CourseCode: "BBA101", Credits: 4},
			{ID: "c2", Name: "Business Economics", CourseCode: "BBA102", Credits: 3},
		},
	)
	adapter := &memAdapter{}
	return NewStudentService(st, adapter), st, adapter
}

func TestCreateStudentPersistsSnapshot(t *testing.T) {
	svc, _, adapter := newStudentFixture(t)
	st, err := svc.CreateStudent(context.Background(), dto.CreateStudentRequest{
		Name: "Neha Singh", Email: "neha@example.com", TotalFees: 45000, PaidFees: 5000,
	})
	if err != nil {
		t.Fatalf("CreateStudent: %v", err)
	}
	if st.Fees.Due != 40000 {
		t.Fatalf("due = %d", st.Fees.Due)
	}
	if adapter.saves != 1 {
		t.Fatalf("saves = %d, want 1", adapter.saves)
	}
	if len(adapter.snap.Students) != 2 {
		t.Fatalf("snapshot has %d students, want 2", len(adapter.snap.Students))
	}
}

func TestCreateStudentValidationSkipsPersist(t *testing.T) {
	svc, _, adapter := newStudentFixture(t)
	_, err := svc.CreateStudent(context.Background(), dto.CreateStudentRequest{Name: "", Email: "x@example.com"})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("err = %v, want validation failure", err)
	}
	if adapter.saves != 0 {
		t.Fatalf("saves = %d, rejected input must not persist", adapter.saves)
	}
}

func TestUpdateStudentStaleID(t *testing.T) {
	svc, st, adapter := newStudentFixture(t)
	_, err := svc.UpdateStudent(context.Background(), "ghost", dto.UpdateStudentRequest{
		Name: "Ghost", Email: "ghost@example.com",
	})
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Fatalf("err = %v, want ErrStudentNotFound", err)
	}
	if adapter.saves != 0 {
		t.Fatalf("saves = %d", adapter.saves)
	}
	if len(st.ListStudents()) != 1 {
		t.Fatal("stale update must not create a record")
	}
}

func TestUpdateStudentMergesAndPersists(t *testing.T) {
	svc, _, adapter := newStudentFixture(t)
	st, err := svc.UpdateStudent(context.Background(), "user1", dto.UpdateStudentRequest{
		Name: "Priya S", Email: "priya@example.com", PaidFees: 30000, Fines: 100,
	})
	if err != nil {
		t.Fatalf("UpdateStudent: %v", err)
	}
	if st.Fees.Paid != 30000 || st.Fees.Due != 20000 {
		t.Fatalf("fees = %+v", st.Fees)
	}
	if st.Password != "password123" {
		t.Fatalf("empty password in form must keep stored one, got %q", st.Password)
	}
	if st.Library.Fines != 100 {
		t.Fatalf("fines = %d", st.Library.Fines)
	}
	if adapter.saves != 1 {
		t.Fatalf("saves = %d", adapter.saves)
	}
}

func TestDeleteStudentPersists(t *testing.T) {
	svc, st, adapter := newStudentFixture(t)
	if err := svc.DeleteStudent(context.Background(), "user1"); err != nil {
		t.Fatalf("DeleteStudent: %v", err)
	}
	if len(st.ListStudents()) != 0 {
		t.Fatal("student not deleted")
	}
	if adapter.saves != 1 {
		t.Fatalf("saves = %d", adapter.saves)
	}
	// absent id still snapshots; the operation is a reported no-op
	if err := svc.DeleteStudent(context.Background(), "user1"); err != nil {
		t.Fatalf("DeleteStudent absent: %v", err)
	}
}

func TestEnrollUnenrollPersist(t *testing.T) {
	svc, st, adapter := newStudentFixture(t)
	ctx := context.Background()

	if err := svc.Enroll(ctx, "user1", "c2"); err != nil {
		t.Fatalf("Enroll: %v", err)
	}
	if err := svc.Unenroll(ctx, "user1", "c1"); err != nil {
		t.Fatalf("Unenroll: %v", err)
	}
	got, _ := st.GetStudent("user1")
	if len(got.Registration.Courses) != 1 || got.Registration.Courses[0] != "c2" {
		t.Fatalf("courses = %v", got.Registration.Courses)
	}
	if adapter.saves != 2 {
		t.Fatalf("saves = %d", adapter.saves)
	}

	if err := svc.Enroll(ctx, "user1", "ghost"); !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Fatalf("err = %v, want ErrCourseNotFound", err)
	}
	if adapter.saves != 2 {
		t.Fatalf("failed enroll must not persist, saves = %d", adapter.saves)
	}
}

func TestCourseSplit(t *testing.T) {
	svc, _, _ := newStudentFixture(t)
	split, err := svc.CourseSplit("user1")
	if err != nil {
		t.Fatalf("CourseSplit: %v", err)
	}
	if len(split.Enrolled) != 1 || split.Enrolled[0].ID != "c1" {
		t.Fatalf("enrolled = %+v", split.Enrolled)
	}
	if len(split.Available) != 1 || split.Available[0].ID != "c2" {
		t.Fatalf("available = %+v", split.Available)
	}

	if _, err := svc.CourseSplit("ghost"); !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Fatalf("err = %v, want ErrStudentNotFound", err)
	}
}

func TestResultsAndLibraryPersist(t *testing.T) {
	svc, st, adapter := newStudentFixture(t)
	ctx := context.Background()

	if err := svc.RecordResult(ctx, "user1", dto.ResultRequest{Semester: "Semester 1", Grade: "A"}); err != nil {
		t.Fatalf("RecordResult: %v", err)
	}
	if err := svc.IssueBook(ctx, "user1", "Zero to One"); err != nil {
		t.Fatalf("IssueBook: %v", err)
	}
	if err := svc.ReturnBook(ctx, "user1", "Zero to One"); err != nil {
		t.Fatalf("ReturnBook: %v", err)
	}
	if err := svc.RemoveResult(ctx, "user1", "Semester 1"); err != nil {
		t.Fatalf("RemoveResult: %v", err)
	}
	if adapter.saves != 4 {
		t.Fatalf("saves = %d, want one per mutation", adapter.saves)
	}
	got, _ := st.GetStudent("user1")
	if len(got.Results) != 0 || len(got.Library.Issued) != 0 {
		t.Fatalf("state = %+v", got)
	}
}

func TestUpdateFees(t *testing.T) {
	svc, _, adapter := newStudentFixture(t)
	st, err := svc.UpdateFees(context.Background(), "user1", dto.FeesUpdateRequest{PaidFees: 55000, Fines: 20})
	if err != nil {
		t.Fatalf("UpdateFees: %v", err)
	}
	if st.Fees.Paid != 55000 || st.Fees.Due != -5000 {
		t.Fatalf("fees = %+v, overpayment must not be clamped", st.Fees)
	}
	if st.Library.Fines != 20 {
		t.Fatalf("fines = %d", st.Library.Fines)
	}
	if adapter.saves != 1 {
		t.Fatalf("saves = %d", adapter.saves)
	}
}

func TestListStudentsFilter(t *testing.T) {
	svc, _, _ := newStudentFixture(t)
	if got := svc.ListStudents(""); len(got) != 1 {
		t.Fatalf("got %d students", len(got))
	}
	if got := svc.ListStudents("PRIYA"); len(got) != 1 {
		t.Fatalf("case-insensitive match failed: %d", len(got))
	}
	if got := svc.ListStudents("nobody"); len(got) != 0 {
		t.Fatalf("got %d students for non-matching query", len(got))
	}
}

func TestPersistFailureIsSurfaced(t *testing.T) {
	svc, st, adapter := newStudentFixture(t)
	adapter.fail = errors.New("disk full")
	_, err := svc.CreateStudent(context.Background(), dto.CreateStudentRequest{
		Name: "Neha Singh", Email: "neha@example.com",
	})
	if err == nil {
		t.Fatal("save failure must be surfaced")
	}
	// the in-memory mutation stands; only the snapshot write failed
	if len(st.ListStudents()) != 2 {
		t.Fatalf("got %d students", len(st.ListStudents()))
	}
}
