package services

import (
	"fmt"
	"time"

	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/models"
	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/pdf"
	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/repositories"
)

// AttendanceService — журнал посещаемости: открыть ведомость на сегодня
// (все студенты уровня отмечаются absent), затем отметки present по
// регистрационному номеру или отпечатку.
type AttendanceService interface {
	OpenRegister(courseID, sessionID, lecturerID int, semester string) (int, error)
	MarkPresent(courseID int, regNo, fingerprint string) (*models.Attendance, error)
	ListAttendance() ([]*models.Attendance, error)
	ListBySession(sessionID int) ([]*models.Attendance, error)
	ListByCourseAndDate(courseID int, date time.Time) ([]*models.Attendance, error)
	ExportRegisterPDF(courseID int, date time.Time) (string, error)
}

type attendanceService struct {
	repo       repositories.AttendanceRepository
	students   repositories.StudentRepository
	courses    repositories.CourseRepository
	sessions   repositories.SessionRepository
	activities ActivityService
	reports    pdf.Generator
}

func NewAttendanceService(
	repo repositories.AttendanceRepository,
	students repositories.StudentRepository,
	courses repositories.CourseRepository,
	sessions repositories.SessionRepository,
	activities ActivityService,
	reports pdf.Generator,
) AttendanceService {
	return &attendanceService{
		repo:       repo,
		students:   students,
		courses:    courses,
		sessions:   sessions,
		activities: activities,
		reports:    reports,
	}
}

func today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// OpenRegister — создаёт absent-строки на сегодня для всех студентов уровня
// курса. Повторный вызов в тот же день безвреден (ON CONFLICT DO NOTHING).
// Возвращает число созданных строк.
func (s *attendanceService) OpenRegister(courseID, sessionID, lecturerID int, semester string) (int, error) {
	course, err := s.courses.GetByID(courseID)
	if err != nil {
		return 0, err
	}
	if course == nil {
		return 0, fmt.Errorf("course %d: %w", courseID, ErrNotFound)
	}
	session, err := s.sessions.GetByID(sessionID)
	if err != nil {
		return 0, err
	}
	if session == nil {
		return 0, fmt.Errorf("session %d: %w", sessionID, ErrNotFound)
	}

	students, err := s.students.ListByLevel(course.Level)
	if err != nil {
		return 0, err
	}
	if len(students) == 0 {
		return 0, fmt.Errorf("no students at level %s: %w", course.Level, ErrNotFound)
	}

	if semester == "" {
		semester = course.Semester
	}
	now := time.Now()
	records := make([]*models.Attendance, 0, len(students))
	for _, st := range students {
		records = append(records, &models.Attendance{
			StudentID:  st.ID,
			CourseID:   course.ID,
			LecturerID: lecturerID,
			SessionID:  session.ID,
			Date:       today(),
			Time:       now.Format("15:04:05"),
			Status:     models.AttendanceAbsent,
			Semester:   semester,
			Level:      course.Level,
		})
	}
	created, err := s.repo.BulkCreateAbsent(records)
	if err != nil {
		return 0, err
	}
	return created, nil
}

// MarkPresent — студент опознаётся по reg_no либо по отпечатку; строка за
// сегодня должна существовать и быть ещё не отмеченной.
func (s *attendanceService) MarkPresent(courseID int, regNo, fingerprint string) (*models.Attendance, error) {
	var student *models.Student
	var err error
	switch {
	case regNo != "":
		student, err = s.students.GetByRegNo(regNo)
	case fingerprint != "":
		student, err = s.students.GetByFingerprint(fingerprint)
	default:
		return nil, fmt.Errorf("reg_no or fingerprint required: %w", ErrInvalidInput)
	}
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, fmt.Errorf("student: %w", ErrNotFound)
	}

	rec, err := s.repo.FindForStudent(student.ID, courseID, today())
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("no register entry for today: %w", ErrNotFound)
	}
	if rec.Status != models.AttendanceAbsent {
		return nil, fmt.Errorf("already marked %s: %w", rec.Status, ErrDuplicate)
	}

	now := time.Now()
	if err := s.repo.UpdateStatus(rec.ID, models.AttendancePresent, now); err != nil {
		return nil, fmt.Errorf("mark present: %w", err)
	}
	rec.Status = models.AttendancePresent
	rec.Time = now.Format("15:04:05")

	s.activities.Log(nil, models.ActivityAttendanceMarked,
		fmt.Sprintf("%s marked present for course %d", student.RegNo, courseID),
		map[string]string{"reg_no": student.RegNo})
	return rec, nil
}

func (s *attendanceService) ListAttendance() ([]*models.Attendance, error) {
	return s.repo.List()
}

func (s *attendanceService) ListBySession(sessionID int) ([]*models.Attendance, error) {
	return s.repo.ListBySession(sessionID)
}

func (s *attendanceService) ListByCourseAndDate(courseID int, date time.Time) ([]*models.Attendance, error) {
	return s.repo.ListByCourseAndDate(courseID, date)
}

// ExportRegisterPDF — ведомость курса за дату в PDF, возвращает путь к файлу.
func (s *attendanceService) ExportRegisterPDF(courseID int, date time.Time) (string, error) {
	course, err := s.courses.GetByID(courseID)
	if err != nil {
		return "", err
	}
	if course == nil {
		return "", fmt.Errorf("course %d: %w", courseID, ErrNotFound)
	}
	rows, err := s.repo.ListByCourseAndDate(courseID, date)
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", fmt.Errorf("no attendance for %s on %s: %w",
			course.CourseCode, date.Format("2006-01-02"), ErrNotFound)
	}

	data := pdf.RegisterData{
		CourseTitle: course.CourseTitle,
		CourseCode:  course.CourseCode,
		Level:       course.Level,
		Semester:    course.Semester,
		Date:        date,
	}
	for _, r := range rows {
		data.Rows = append(data.Rows, pdf.RegisterRow{
			RegNo:  r.RegNo,
			Name:   r.StudentName,
			Status: r.Status,
			Time:   r.Time,
		})
	}
	return s.reports.GenerateRegister(data)
}
