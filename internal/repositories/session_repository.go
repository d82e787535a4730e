package repositories

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/models"
)

type SessionRepository interface {
	Create(session *models.AcademicSession) error
	GetByID(id int) (*models.AcademicSession, error)
	List() ([]*models.AcademicSession, error)
	GetActive() (*models.AcademicSession, error)
	Delete(id int) error
}

type sessionRepository struct {
	db *sql.DB
}

func NewSessionRepository(db *sql.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(session *models.AcademicSession) error {
	semesters, err := json.Marshal(session.Semesters)
	if err != nil {
		return fmt.Errorf("session semesters: %w", err)
	}
	const q = `
		INSERT INTO academic_sessions (name, start_date, end_date, semesters, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(q,
		session.Name, session.Start, session.End, semesters, session.Active,
	).Scan(&session.ID, &session.CreatedAt, &session.UpdatedAt)
}

func scanSession(row rowScanner) (*models.AcademicSession, error) {
	s := &models.AcademicSession{}
	var semesters []byte
	err := row.Scan(&s.ID, &s.Name, &s.Start, &s.End, &semesters, &s.Active, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(semesters) > 0 {
		if err := json.Unmarshal(semesters, &s.Semesters); err != nil {
			return nil, fmt.Errorf("session semesters: %w", err)
		}
	}
	return s, nil
}

const sessionColumns = `id, name, start_date, end_date, semesters, active, created_at, updated_at`

func (r *sessionRepository) GetByID(id int) (*models.AcademicSession, error) {
	s, err := scanSession(r.db.QueryRow(
		`SELECT `+sessionColumns+` FROM academic_sessions WHERE id=$1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return s, err
}

func (r *sessionRepository) GetActive() (*models.AcademicSession, error) {
	s, err := scanSession(r.db.QueryRow(
		`SELECT ` + sessionColumns + ` FROM academic_sessions WHERE active=TRUE ORDER BY start_date DESC LIMIT 1`))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return s, err
}

func (r *sessionRepository) List() ([]*models.AcademicSession, error) {
	rows, err := r.db.Query(`SELECT ` + sessionColumns + ` FROM academic_sessions ORDER BY start_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*models.AcademicSession
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, s)
	}
	return res, rows.Err()
}

func (r *sessionRepository) Delete(id int) error {
	_, err := r.db.Exec(`DELETE FROM academic_sessions WHERE id=$1`, id)
	return err
}
