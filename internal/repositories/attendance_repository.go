package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/models"
)

type AttendanceRepository interface {
	BulkCreateAbsent(records []*models.Attendance) (int, error)
	GetByID(id int) (*models.Attendance, error)
	FindForStudent(studentID, courseID int, date time.Time) (*models.Attendance, error)
	UpdateStatus(id int, status string, markedAt time.Time) error
	List() ([]*models.Attendance, error)
	ListBySession(sessionID int) ([]*models.Attendance, error)
	ListByCourseAndDate(courseID int, date time.Time) ([]*models.Attendance, error)
}

type attendanceRepository struct {
	db *sql.DB
}

func NewAttendanceRepository(db *sql.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

// BulkCreateAbsent — заводит строки "absent" на сегодня; уже существующие
// (student, course, date) молча пропускаются за счёт ON CONFLICT.
func (r *attendanceRepository) BulkCreateAbsent(records []*models.Attendance) (int, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	const q = `
		INSERT INTO attendance
			(student_id, course_id, lecturer_id, session_id, date, time, status, semester, level)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		ON CONFLICT (student_id, course_id, date) DO NOTHING
	`
	created := 0
	for _, rec := range records {
		res, err := tx.Exec(q,
			rec.StudentID, rec.CourseID, rec.LecturerID, rec.SessionID,
			rec.Date, rec.Time, rec.Status, rec.Semester, rec.Level,
		)
		if err != nil {
			return 0, fmt.Errorf("attendance bulk create: %w", err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			created++
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return created, nil
}

const attendanceColumns = `
	a.id, a.student_id, a.course_id, a.lecturer_id, a.session_id,
	a.date, a.time, a.status, a.semester, a.level, a.created_at, a.updated_at,
	s.name, s.reg_no, c.course_code
`

const attendanceFromClause = `
	FROM attendance a
	JOIN students s ON s.id = a.student_id
	JOIN courses c ON c.id = a.course_id
`

func scanAttendance(row rowScanner) (*models.Attendance, error) {
	a := &models.Attendance{}
	err := row.Scan(
		&a.ID, &a.StudentID, &a.CourseID, &a.LecturerID, &a.SessionID,
		&a.Date, &a.Time, &a.Status, &a.Semester, &a.Level, &a.CreatedAt, &a.UpdatedAt,
		&a.StudentName, &a.RegNo, &a.CourseCode,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *attendanceRepository) GetByID(id int) (*models.Attendance, error) {
	a, err := scanAttendance(r.db.QueryRow(
		`SELECT `+attendanceColumns+attendanceFromClause+` WHERE a.id=$1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return a, err
}

func (r *attendanceRepository) FindForStudent(studentID, courseID int, date time.Time) (*models.Attendance, error) {
	a, err := scanAttendance(r.db.QueryRow(
		`SELECT `+attendanceColumns+attendanceFromClause+`
		 WHERE a.student_id=$1 AND a.course_id=$2 AND a.date=$3`,
		studentID, courseID, date))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return a, err
}

func (r *attendanceRepository) UpdateStatus(id int, status string, markedAt time.Time) error {
	_, err := r.db.Exec(`
		UPDATE attendance
		SET status=$1, time=$2, updated_at=NOW()
		WHERE id=$3
	`, status, markedAt.Format("15:04:05"), id)
	return err
}

func (r *attendanceRepository) list(q string, args ...any) ([]*models.Attendance, error) {
	rows, err := r.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*models.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, a)
	}
	return res, rows.Err()
}

func (r *attendanceRepository) List() ([]*models.Attendance, error) {
	return r.list(`SELECT ` + attendanceColumns + attendanceFromClause + ` ORDER BY a.date DESC, a.time DESC`)
}

func (r *attendanceRepository) ListBySession(sessionID int) ([]*models.Attendance, error) {
	return r.list(`SELECT `+attendanceColumns+attendanceFromClause+`
		WHERE a.session_id=$1 ORDER BY a.date DESC, a.time DESC`, sessionID)
}

func (r *attendanceRepository) ListByCourseAndDate(courseID int, date time.Time) ([]*models.Attendance, error) {
	return r.list(`SELECT `+attendanceColumns+attendanceFromClause+`
		WHERE a.course_id=$1 AND a.date=$2 ORDER BY s.reg_no`, courseID, date)
}
