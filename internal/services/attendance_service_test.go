package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/models"
	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/pdf"
)

// ---- in-memory репозитории для журнала посещаемости ----

type fakeAttendanceRepo struct {
	records []*models.Attendance
	nextID  int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo { return &fakeAttendanceRepo{nextID: 1} }

func (f *fakeAttendanceRepo) BulkCreateAbsent(records []*models.Attendance) (int, error) {
	created := 0
	for _, r := range records {
		if f.find(r.StudentID, r.CourseID, r.Date) != nil {
			continue // как ON CONFLICT DO NOTHING
		}
		cp := *r
		cp.ID = f.nextID
		f.nextID++
		f.records = append(f.records, &cp)
		created++
	}
	return created, nil
}

func (f *fakeAttendanceRepo) find(studentID, courseID int, date time.Time) *models.Attendance {
	for _, r := range f.records {
		if r.StudentID == studentID && r.CourseID == courseID && r.Date.Equal(date) {
			return r
		}
	}
	return nil
}

func (f *fakeAttendanceRepo) GetByID(id int) (*models.Attendance, error) {
	for _, r := range f.records {
		if r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) FindForStudent(studentID, courseID int, date time.Time) (*models.Attendance, error) {
	r := f.find(studentID, courseID, date)
	if r == nil {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (f *fakeAttendanceRepo) UpdateStatus(id int, status string, markedAt time.Time) error {
	for _, r := range f.records {
		if r.ID == id {
			r.Status = status
			r.Time = markedAt.Format("15:04:05")
		}
	}
	return nil
}

func (f *fakeAttendanceRepo) List() ([]*models.Attendance, error) { return f.records, nil }

func (f *fakeAttendanceRepo) ListBySession(sessionID int) ([]*models.Attendance, error) {
	var res []*models.Attendance
	for _, r := range f.records {
		if r.SessionID == sessionID {
			res = append(res, r)
		}
	}
	return res, nil
}

func (f *fakeAttendanceRepo) ListByCourseAndDate(courseID int, date time.Time) ([]*models.Attendance, error) {
	var res []*models.Attendance
	for _, r := range f.records {
		if r.CourseID == courseID && r.Date.Equal(date) {
			res = append(res, r)
		}
	}
	return res, nil
}

type fakeStudentRepo struct {
	students []*models.Student
}

func (f *fakeStudentRepo) Create(student *models.Student) error {
	student.ID = len(f.students) + 1
	f.students = append(f.students, student)
	return nil
}

func (f *fakeStudentRepo) GetByID(id int) (*models.Student, error) {
	for _, s := range f.students {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeStudentRepo) GetByRegNo(regNo string) (*models.Student, error) {
	for _, s := range f.students {
		if s.RegNo == regNo {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeStudentRepo) GetByFingerprint(fingerprint string) (*models.Student, error) {
	for _, s := range f.students {
		if s.FingerPrint == fingerprint {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeStudentRepo) List() ([]*models.Student, error) { return f.students, nil }

func (f *fakeStudentRepo) ListByLevel(level string) ([]*models.Student, error) {
	var res []*models.Student
	for _, s := range f.students {
		if s.Level == level {
			res = append(res, s)
		}
	}
	return res, nil
}

func (f *fakeStudentRepo) Update(student *models.Student) error { return nil }
func (f *fakeStudentRepo) Delete(id int) error                  { return nil }

type fakeCourseRepo struct {
	courses []*models.Course
}

func (f *fakeCourseRepo) Create(course *models.Course) error {
	course.ID = len(f.courses) + 1
	f.courses = append(f.courses, course)
	return nil
}

func (f *fakeCourseRepo) GetByID(id int) (*models.Course, error) {
	for _, c := range f.courses {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCourseRepo) GetByCode(code string) (*models.Course, error) {
	for _, c := range f.courses {
		if c.CourseCode == code {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCourseRepo) List() ([]*models.Course, error)                     { return f.courses, nil }
func (f *fakeCourseRepo) ListByLevel(level string) ([]*models.Course, error)  { return f.courses, nil }
func (f *fakeCourseRepo) ListBySemester(sem string) ([]*models.Course, error) { return f.courses, nil }
func (f *fakeCourseRepo) Delete(id int) error                                 { return nil }

type fakeSessionRepo struct {
	sessions []*models.AcademicSession
}

func (f *fakeSessionRepo) Create(session *models.AcademicSession) error {
	session.ID = len(f.sessions) + 1
	f.sessions = append(f.sessions, session)
	return nil
}

func (f *fakeSessionRepo) GetByID(id int) (*models.AcademicSession, error) {
	for _, s := range f.sessions {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSessionRepo) List() ([]*models.AcademicSession, error) { return f.sessions, nil }

func (f *fakeSessionRepo) GetActive() (*models.AcademicSession, error) {
	for _, s := range f.sessions {
		if s.Active {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSessionRepo) Delete(id int) error { return nil }

type fakePDF struct {
	LastData pdf.RegisterData
	Path     string
}

func (f *fakePDF) GenerateRegister(data pdf.RegisterData) (string, error) {
	f.LastData = data
	return f.Path, nil
}

// ---- fixture ----

type attendanceFixture struct {
	repo     *fakeAttendanceRepo
	students *fakeStudentRepo
	courses  *fakeCourseRepo
	sessions *fakeSessionRepo
	reports  *fakePDF
	svc      AttendanceService
}

func newAttendanceFixture(t *testing.T) *attendanceFixture {
	t.Helper()
	f := &attendanceFixture{
		repo:     newFakeAttendanceRepo(),
		students: &fakeStudentRepo{},
		courses:  &fakeCourseRepo{},
		sessions: &fakeSessionRepo{},
		reports:  &fakePDF{Path: "/tmp/register.pdf"},
	}
	f.svc = NewAttendanceService(f.repo, f.students, f.courses, f.sessions, &fakeActivities{}, f.reports)

	require.NoError(t, f.courses.Create(&models.Course{
		CourseTitle: "Digital Systems", CourseCode: "ECE371", Semester: "first", Level: "300",
	}))
	require.NoError(t, f.sessions.Create(&models.AcademicSession{
		Name: "2025/2026", Active: true, Semesters: []string{"first", "second"},
	}))
	require.NoError(t, f.students.Create(&models.Student{
		Name: "John Doe", RegNo: "2021/187101", Level: "300", FingerPrint: "fp-john",
	}))
	require.NoError(t, f.students.Create(&models.Student{
		Name: "Jane Roe", RegNo: "2021/187102", Level: "300", FingerPrint: "fp-jane",
	}))
	require.NoError(t, f.students.Create(&models.Student{
		Name: "Off Level", RegNo: "2022/200001", Level: "200", FingerPrint: "fp-off",
	}))
	return f
}

func TestOpenRegister_CreatesAbsentRows(t *testing.T) {
	f := newAttendanceFixture(t)

	created, err := f.svc.OpenRegister(1, 1, 10, "")
	require.NoError(t, err)
	require.Equal(t, 2, created) // только уровень 300

	rows, _ := f.repo.List()
	for _, r := range rows {
		require.Equal(t, models.AttendanceAbsent, r.Status)
		require.Equal(t, "first", r.Semester) // семестр взят с курса
		require.Equal(t, 10, r.LecturerID)
	}
}

func TestOpenRegister_Idempotent(t *testing.T) {
	f := newAttendanceFixture(t)

	created, err := f.svc.OpenRegister(1, 1, 10, "first")
	require.NoError(t, err)
	require.Equal(t, 2, created)

	created, err = f.svc.OpenRegister(1, 1, 10, "first")
	require.NoError(t, err)
	require.Equal(t, 0, created)

	rows, _ := f.repo.List()
	require.Len(t, rows, 2)
}

func TestOpenRegister_UnknownCourseOrSession(t *testing.T) {
	f := newAttendanceFixture(t)

	_, err := f.svc.OpenRegister(99, 1, 10, "")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = f.svc.OpenRegister(1, 99, 10, "")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMarkPresent_ByRegNo(t *testing.T) {
	f := newAttendanceFixture(t)
	_, err := f.svc.OpenRegister(1, 1, 10, "")
	require.NoError(t, err)

	rec, err := f.svc.MarkPresent(1, "2021/187101", "")
	require.NoError(t, err)
	require.Equal(t, models.AttendancePresent, rec.Status)
	require.NotEmpty(t, rec.Time)

	// второй раз не проходит
	_, err = f.svc.MarkPresent(1, "2021/187101", "")
	require.ErrorIs(t, err, ErrDuplicate)
}

func TestMarkPresent_ByFingerprint(t *testing.T) {
	f := newAttendanceFixture(t)
	_, err := f.svc.OpenRegister(1, 1, 10, "")
	require.NoError(t, err)

	rec, err := f.svc.MarkPresent(1, "", "fp-jane")
	require.NoError(t, err)
	require.Equal(t, models.AttendancePresent, rec.Status)
}

func TestMarkPresent_Validation(t *testing.T) {
	f := newAttendanceFixture(t)
	_, err := f.svc.OpenRegister(1, 1, 10, "")
	require.NoError(t, err)

	_, err = f.svc.MarkPresent(1, "", "")
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.svc.MarkPresent(1, "9999/000000", "")
	require.ErrorIs(t, err, ErrNotFound)

	// студент есть, но ведомость для него не открывалась (другой уровень)
	_, err = f.svc.MarkPresent(1, "2022/200001", "")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestExportRegisterPDF(t *testing.T) {
	f := newAttendanceFixture(t)
	_, err := f.svc.OpenRegister(1, 1, 10, "")
	require.NoError(t, err)
	_, err = f.svc.MarkPresent(1, "2021/187101", "")
	require.NoError(t, err)

	y, m, d := time.Now().Date()
	date := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	path, err := f.svc.ExportRegisterPDF(1, date)
	require.NoError(t, err)
	require.Equal(t, "/tmp/register.pdf", path)
	require.Equal(t, "ECE371", f.reports.LastData.CourseCode)
	require.Len(t, f.reports.LastData.Rows, 2)

	_, err = f.svc.ExportRegisterPDF(99, date)
	require.ErrorIs(t, err, ErrNotFound)
}
