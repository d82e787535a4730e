package repositories

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/models"
)

type ActivityRepository interface {
	Create(activity *models.Activity) error
	List(limit, offset int) ([]*models.Activity, error)
	DeleteAll() error
}

type activityRepository struct {
	db *sql.DB
}

func NewActivityRepository(db *sql.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(activity *models.Activity) error {
	meta := activity.Metadata
	if meta == nil {
		meta = map[string]string{}
	}
	raw, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("activity metadata: %w", err)
	}
	const q = `
		INSERT INTO activities (user_id, activity_type, description, metadata)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	return r.db.QueryRow(q, activity.UserID, activity.ActivityType, activity.Description, raw).
		Scan(&activity.ID, &activity.CreatedAt)
}

func (r *activityRepository) List(limit, offset int) ([]*models.Activity, error) {
	const q = `
		SELECT id, user_id, activity_type, description, metadata, created_at
		FROM activities
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*models.Activity
	for rows.Next() {
		a := &models.Activity{}
		var userID sql.NullInt64
		var raw []byte
		if err := rows.Scan(&a.ID, &userID, &a.ActivityType, &a.Description, &raw, &a.CreatedAt); err != nil {
			return nil, err
		}
		if userID.Valid {
			id := int(userID.Int64)
			a.UserID = &id
		}
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &a.Metadata); err != nil {
				return nil, fmt.Errorf("activity metadata: %w", err)
			}
		}
		res = append(res, a)
	}
	return res, rows.Err()
}

func (r *activityRepository) DeleteAll() error {
	_, err := r.db.Exec(`DELETE FROM activities`)
	return err
}
