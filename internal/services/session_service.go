package services

import (
	"fmt"

	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/models"
	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/repositories"
)

type SessionService interface {
	CreateSession(session *models.AcademicSession) error
	GetSessionByID(id int) (*models.AcademicSession, error)
	ListSessions() ([]*models.AcademicSession, error)
	DeleteSession(id int) error
}

type sessionService struct {
	repo repositories.SessionRepository
}

func NewSessionService(repo repositories.SessionRepository) SessionService {
	return &sessionService{repo: repo}
}

func (s *sessionService) CreateSession(session *models.AcademicSession) error {
	if !session.End.After(session.Start) {
		return fmt.Errorf("session end must be after start: %w", ErrInvalidInput)
	}
	if err := s.repo.Create(session); err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

func (s *sessionService) GetSessionByID(id int) (*models.AcademicSession, error) {
	session, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrNotFound
	}
	return session, nil
}

func (s *sessionService) ListSessions() ([]*models.AcademicSession, error) {
	return s.repo.List()
}

func (s *sessionService) DeleteSession(id int) error {
	if _, err := s.GetSessionByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
