package repositories

import (
	"database/sql"

	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/models"
)

type CourseRepository interface {
	Create(course *models.Course) error
	GetByID(id int) (*models.Course, error)
	GetByCode(code string) (*models.Course, error)
	List() ([]*models.Course, error)
	ListByLevel(level string) ([]*models.Course, error)
	ListBySemester(semester string) ([]*models.Course, error)
	Delete(id int) error
}

type courseRepository struct {
	db *sql.DB
}

func NewCourseRepository(db *sql.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) Create(course *models.Course) error {
	const q = `
		INSERT INTO courses (course_title, course_code, semester, level)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(q,
		course.CourseTitle, course.CourseCode, course.Semester, course.Level,
	).Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt)
}

func (r *courseRepository) GetByID(id int) (*models.Course, error) {
	const q = `
		SELECT id, course_title, course_code, semester, level, created_at, updated_at
		FROM courses WHERE id=$1
	`
	c := &models.Course{}
	err := r.db.QueryRow(q, id).Scan(
		&c.ID, &c.CourseTitle, &c.CourseCode, &c.Semester, &c.Level, &c.CreatedAt, &c.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *courseRepository) GetByCode(code string) (*models.Course, error) {
	const q = `
		SELECT id, course_title, course_code, semester, level, created_at, updated_at
		FROM courses WHERE course_code=$1
	`
	c := &models.Course{}
	err := r.db.QueryRow(q, code).Scan(
		&c.ID, &c.CourseTitle, &c.CourseCode, &c.Semester, &c.Level, &c.CreatedAt, &c.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *courseRepository) list(q string, args ...any) ([]*models.Course, error) {
	rows, err := r.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*models.Course
	for rows.Next() {
		c := &models.Course{}
		if err := rows.Scan(
			&c.ID, &c.CourseTitle, &c.CourseCode, &c.Semester, &c.Level, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, rows.Err()
}

func (r *courseRepository) List() ([]*models.Course, error) {
	return r.list(`
		SELECT id, course_title, course_code, semester, level, created_at, updated_at
		FROM courses ORDER BY course_code`)
}

func (r *courseRepository) ListByLevel(level string) ([]*models.Course, error) {
	return r.list(`
		SELECT id, course_title, course_code, semester, level, created_at, updated_at
		FROM courses WHERE level=$1 ORDER BY course_code`, level)
}

func (r *courseRepository) ListBySemester(semester string) ([]*models.Course, error) {
	return r.list(`
		SELECT id, course_title, course_code, semester, level, created_at, updated_at
		FROM courses WHERE semester=$1 ORDER BY course_code`, semester)
}

func (r *courseRepository) Delete(id int) error {
	_, err := r.db.Exec(`DELETE FROM courses WHERE id=$1`, id)
	return err
}
