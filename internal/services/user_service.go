package services

import (
	"fmt"
	"log"
	"strings"

	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/authz"
	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/models"
	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/repositories"
)

// UserService — админское управление лекторами: список, создание,
// одобрение/отказ, деактивация.
type UserService interface {
	GetUserByID(id int) (*models.User, error)
	ListUsers(limit, offset int) ([]*models.User, error)
	CreateLecturer(fullName, email, password string) (*models.User, error)
	UpdateUser(id int, fullName, email string) (*models.User, error)
	Approve(id int) (*models.User, error)
	Deny(id int) (*models.User, error)
	Deactivate(id int) error
}

type userService struct {
	repo       repositories.UserRepository
	notifier   Notifier
	activities ActivityService
	telegram   *TelegramService
}

func NewUserService(
	repo repositories.UserRepository,
	notifier Notifier,
	activities ActivityService,
	telegram *TelegramService,
) UserService {
	return &userService{
		repo:       repo,
		notifier:   notifier,
		activities: activities,
		telegram:   telegram,
	}
}

func (s *userService) GetUserByID(id int) (*models.User, error) {
	u, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	return u, nil
}

func (s *userService) ListUsers(limit, offset int) ([]*models.User, error) {
	return s.repo.List(limit, offset)
}

// CreateLecturer — создание лектора админом; аккаунт сразу approved.
func (s *userService) CreateLecturer(fullName, email, password string) (*models.User, error) {
	email = strings.TrimSpace(email)
	existing, err := s.repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("create lecturer lookup: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		FullName:     strings.TrimSpace(fullName),
		Email:        email,
		PasswordHash: hash,
		Role:         authz.RoleLecturer,
		Access:       authz.AccessApproved,
		Active:       true,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, fmt.Errorf("create lecturer: %w", err)
	}
	return user, nil
}

func (s *userService) UpdateUser(id int, fullName, email string) (*models.User, error) {
	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}
	if v := strings.TrimSpace(fullName); v != "" {
		user.FullName = v
	}
	if v := strings.TrimSpace(email); v != "" && v != user.Email {
		taken, err := s.repo.EmailTaken(v, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrEmailTaken
		}
		user.Email = v
	}
	if err := s.repo.UpdateProfile(id, user.FullName, user.Email); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

func (s *userService) Approve(id int) (*models.User, error) {
	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateAccess(id, authz.AccessApproved); err != nil {
		return nil, fmt.Errorf("approve user: %w", err)
	}
	user.Access = authz.AccessApproved

	if err := s.notifier.SendApprovalEmail(user); err != nil {
		log.Printf("[users][approve] send approval email to %s failed: %v", user.Email, err)
	}
	s.activities.Log(&user.ID, models.ActivityUserApproved,
		fmt.Sprintf("%s approved", user.Email), nil)
	s.telegram.NotifyApproval(user.FullName, user.Email)
	return user, nil
}

func (s *userService) Deny(id int) (*models.User, error) {
	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateAccess(id, authz.AccessDenied); err != nil {
		return nil, fmt.Errorf("deny user: %w", err)
	}
	user.Access = authz.AccessDenied
	s.activities.Log(&user.ID, models.ActivityUserDenied,
		fmt.Sprintf("%s denied", user.Email), nil)
	return user, nil
}

// Deactivate — мягкое удаление: active=false, строка остаётся.
func (s *userService) Deactivate(id int) error {
	user, err := s.GetUserByID(id)
	if err != nil {
		return err
	}
	if err := s.repo.SetActive(user.ID, false); err != nil {
		return fmt.Errorf("deactivate user: %w", err)
	}
	return nil
}
