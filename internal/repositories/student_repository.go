package repositories

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/models"
)

type StudentRepository interface {
	Create(student *models.Student) error
	GetByID(id int) (*models.Student, error)
	GetByRegNo(regNo string) (*models.Student, error)
	GetByFingerprint(fingerprint string) (*models.Student, error)
	List() ([]*models.Student, error)
	ListByLevel(level string) ([]*models.Student, error)
	Update(student *models.Student) error
	Delete(id int) error
}

type studentRepository struct {
	db *sql.DB
}

func NewStudentRepository(db *sql.DB) StudentRepository {
	return &studentRepository{db: db}
}

const studentColumns = `
	s.id, s.name, s.reg_no, s.level, s.finger_print, s.admission_year, s.email,
	s.created_at, s.updated_at,
	COALESCE(array_agg(sc.course_id) FILTER (WHERE sc.course_id IS NOT NULL), '{}')
`

const studentFromClause = `
	FROM students s
	LEFT JOIN student_courses sc ON sc.student_id = s.id
`

func scanStudent(row rowScanner) (*models.Student, error) {
	st := &models.Student{}
	var courseIDs pq.Int64Array
	err := row.Scan(
		&st.ID, &st.Name, &st.RegNo, &st.Level, &st.FingerPrint, &st.AdmissionYear, &st.Email,
		&st.CreatedAt, &st.UpdatedAt, &courseIDs,
	)
	if err != nil {
		return nil, err
	}
	st.CourseIDs = make([]int, 0, len(courseIDs))
	for _, id := range courseIDs {
		st.CourseIDs = append(st.CourseIDs, int(id))
	}
	return st, nil
}

func (r *studentRepository) Create(student *models.Student) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const q = `
		INSERT INTO students (name, reg_no, level, finger_print, admission_year, email)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	if err := tx.QueryRow(q,
		student.Name, student.RegNo, student.Level,
		student.FingerPrint, student.AdmissionYear, student.Email,
	).Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt); err != nil {
		return fmt.Errorf("student create: %w", err)
	}

	for _, courseID := range student.CourseIDs {
		if _, err := tx.Exec(
			`INSERT INTO student_courses (student_id, course_id) VALUES ($1, $2)`,
			student.ID, courseID,
		); err != nil {
			return fmt.Errorf("student course link: %w", err)
		}
	}
	return tx.Commit()
}

func (r *studentRepository) GetByID(id int) (*models.Student, error) {
	st, err := scanStudent(r.db.QueryRow(
		`SELECT `+studentColumns+studentFromClause+` WHERE s.id=$1 GROUP BY s.id`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return st, err
}

func (r *studentRepository) GetByRegNo(regNo string) (*models.Student, error) {
	st, err := scanStudent(r.db.QueryRow(
		`SELECT `+studentColumns+studentFromClause+` WHERE s.reg_no=$1 GROUP BY s.id`, regNo))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return st, err
}

func (r *studentRepository) GetByFingerprint(fingerprint string) (*models.Student, error) {
	st, err := scanStudent(r.db.QueryRow(
		`SELECT `+studentColumns+studentFromClause+` WHERE s.finger_print=$1 GROUP BY s.id`, fingerprint))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return st, err
}

func (r *studentRepository) list(q string, args ...any) ([]*models.Student, error) {
	rows, err := r.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*models.Student
	for rows.Next() {
		st, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, st)
	}
	return res, rows.Err()
}

func (r *studentRepository) List() ([]*models.Student, error) {
	return r.list(`SELECT ` + studentColumns + studentFromClause + ` GROUP BY s.id ORDER BY s.reg_no`)
}

func (r *studentRepository) ListByLevel(level string) ([]*models.Student, error) {
	return r.list(`SELECT `+studentColumns+studentFromClause+` WHERE s.level=$1 GROUP BY s.id ORDER BY s.reg_no`, level)
}

func (r *studentRepository) Update(student *models.Student) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const q = `
		UPDATE students
		SET name=$1, reg_no=$2, level=$3, finger_print=$4, admission_year=$5, email=$6, updated_at=NOW()
		WHERE id=$7
	`
	if _, err := tx.Exec(q,
		student.Name, student.RegNo, student.Level,
		student.FingerPrint, student.AdmissionYear, student.Email, student.ID,
	); err != nil {
		return fmt.Errorf("student update: %w", err)
	}

	// пересобираем связи курсов целиком
	if _, err := tx.Exec(`DELETE FROM student_courses WHERE student_id=$1`, student.ID); err != nil {
		return err
	}
	for _, courseID := range student.CourseIDs {
		if _, err := tx.Exec(
			`INSERT INTO student_courses (student_id, course_id) VALUES ($1, $2)`,
			student.ID, courseID,
		); err != nil {
			return fmt.Errorf("student course link: %w", err)
		}
	}
	return tx.Commit()
}

func (r *studentRepository) Delete(id int) error {
	_, err := r.db.Exec(`DELETE FROM students WHERE id=$1`, id)
	return err
}
