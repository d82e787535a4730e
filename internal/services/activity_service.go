package services

import (
	"log"

	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/models"
	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/repositories"
)

type ActivityService interface {
	Log(userID *int, activityType, description string, metadata map[string]string)
	List(limit, offset int) ([]*models.Activity, error)
	DeleteAll() error
}

type activityService struct {
	repo repositories.ActivityRepository
}

func NewActivityService(repo repositories.ActivityRepository) ActivityService {
	return &activityService{repo: repo}
}

// Log — fire-and-forget: аудит не должен ломать основную операцию.
func (s *activityService) Log(userID *int, activityType, description string, metadata map[string]string) {
	a := &models.Activity{
		UserID:       userID,
		ActivityType: activityType,
		Description:  description,
		Metadata:     metadata,
	}
	if err := s.repo.Create(a); err != nil {
		log.Printf("[activity][log] failed type=%s: %v", activityType, err)
	}
}

func (s *activityService) List(limit, offset int) ([]*models.Activity, error) {
	return s.repo.List(limit, offset)
}

func (s *activityService) DeleteAll() error {
	return s.repo.DeleteAll()
}
