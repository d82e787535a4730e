package services

import (
	"fmt"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/authz"
	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/models"
	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/repositories"
)

// AuthService — полный жизненный цикл учётки: регистрация → одобрение →
// логин → смена/сброс пароля → подтверждение email → повышение до админа.
type AuthService interface {
	Register(req *models.RegisterRequest) error
	Login(email, password string) (*models.User, string, error)
	UpdateProfile(user *models.User, newFullName, newEmail string) (*models.User, error)
	ChangePassword(user *models.User, currentPassword, newPassword string) error
	ForgotPassword(email string) error
	ResetPassword(token, newPassword, confirmPassword string) error
	SendVerificationCode(user *models.User) error
	VerifyEmail(user *models.User, code int) error
	MakeAdmin(actor *models.User, targetID int) (*models.User, error)
}

type authService struct {
	userRepo   repositories.UserRepository
	tokens     TokenService
	notifier   Notifier
	activities ActivityService
	telegram   *TelegramService
}

func NewAuthService(
	userRepo repositories.UserRepository,
	tokens TokenService,
	notifier Notifier,
	activities ActivityService,
	telegram *TelegramService,
) AuthService {
	return &authService{
		userRepo:   userRepo,
		tokens:     tokens,
		notifier:   notifier,
		activities: activities,
		telegram:   telegram,
	}
}

// HashPassword — единственное место, где plaintext превращается в хэш.
// Никакого «хэшировать при сохранении, если ещё не хэш».
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func CheckPassword(hash, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

func (s *authService) Register(req *models.RegisterRequest) error {
	if req.Password != req.ConfirmPassword {
		return ErrPasswordMismatch
	}
	email := strings.TrimSpace(req.Email)

	existing, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return fmt.Errorf("register lookup: %w", err)
	}
	if existing != nil {
		return ErrEmailTaken
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return err
	}
	user := &models.User{
		FullName:     strings.TrimSpace(req.FullName),
		Email:        email,
		PasswordHash: hash,
		Role:         authz.RoleLecturer,
		Access:       authz.AccessPending,
		Active:       true,
	}
	if err := s.userRepo.Create(user); err != nil {
		return fmt.Errorf("register create: %w", err)
	}

	s.activities.Log(&user.ID, models.ActivityRegister,
		fmt.Sprintf("%s registered, pending approval", user.Email), nil)
	s.telegram.NotifyRegistration(user.FullName, user.Email)
	return nil
}

// Login — единое сообщение для неизвестного email и неверного пароля,
// чтобы не подсказывать перебор.
func (s *authService) Login(email, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetByEmail(strings.TrimSpace(email))
	if err != nil {
		return nil, "", fmt.Errorf("login lookup: %w", err)
	}
	if user == nil || !CheckPassword(user.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}
	if user.Access != authz.AccessApproved {
		return nil, "", ErrNotApproved
	}

	token, err := s.tokens.CreateSessionToken(user)
	if err != nil {
		return nil, "", err
	}

	s.activities.Log(&user.ID, models.ActivityLogin, fmt.Sprintf("%s logged in", user.Email), nil)
	return user, token, nil
}

func (s *authService) UpdateProfile(user *models.User, newFullName, newEmail string) (*models.User, error) {
	fullName := user.FullName
	email := user.Email

	if v := strings.TrimSpace(newFullName); v != "" {
		fullName = v
	}
	if v := strings.TrimSpace(newEmail); v != "" && v != user.Email {
		taken, err := s.userRepo.EmailTaken(v, user.ID)
		if err != nil {
			return nil, fmt.Errorf("update profile email check: %w", err)
		}
		if taken {
			return nil, ErrEmailTaken
		}
		email = v
	}

	if err := s.userRepo.UpdateProfile(user.ID, fullName, email); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	user.FullName = fullName
	user.Email = email
	return user, nil
}

// ChangePassword не инвалидирует уже выданные сессии: серверного списка
// отзыва нет, токены живут до естественного истечения.
func (s *authService) ChangePassword(user *models.User, currentPassword, newPassword string) error {
	if !CheckPassword(user.PasswordHash, currentPassword) {
		return ErrWrongPassword
	}
	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdatePassword(user.ID, hash); err != nil {
		return fmt.Errorf("change password: %w", err)
	}
	s.activities.Log(&user.ID, models.ActivityPasswordChanged,
		fmt.Sprintf("%s changed password", user.Email), nil)
	return nil
}

// ForgotPassword всегда отвечает одинаково, существует email или нет.
func (s *authService) ForgotPassword(email string) error {
	user, err := s.userRepo.GetByEmail(strings.TrimSpace(email))
	if err != nil {
		return fmt.Errorf("forgot password lookup: %w", err)
	}
	if user == nil {
		log.Printf("[auth][forgot] no user for %q, responding success anyway", email)
		return nil
	}

	token, err := s.tokens.IssueResetToken(user.ID)
	if err != nil {
		return err
	}
	if err := s.notifier.SendPasswordResetEmail(user, token); err != nil {
		log.Printf("[auth][forgot] send reset email to %s failed: %v", user.Email, err)
	}
	return nil
}

func (s *authService) ResetPassword(token, newPassword, confirmPassword string) error {
	if newPassword != confirmPassword {
		return ErrPasswordMismatch
	}
	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	user, err := s.tokens.RedeemResetToken(token, hash)
	if err != nil {
		return err
	}
	s.activities.Log(&user.ID, models.ActivityPasswordChanged,
		fmt.Sprintf("%s reset password via token", user.Email), nil)
	return nil
}

func (s *authService) SendVerificationCode(user *models.User) error {
	if user.EmailVerified {
		return ErrAlreadyVerified
	}
	code, err := s.tokens.IssueVerificationCode(user.ID)
	if err != nil {
		return err
	}
	if err := s.notifier.SendVerificationEmail(user, code); err != nil {
		log.Printf("[auth][verify] send code to %s failed: %v", user.Email, err)
	}
	return nil
}

func (s *authService) VerifyEmail(user *models.User, code int) error {
	if err := s.tokens.RedeemVerificationCode(user.ID, code); err != nil {
		return err
	}
	s.activities.Log(&user.ID, models.ActivityEmailVerified,
		fmt.Sprintf("%s verified email", user.Email), nil)
	return nil
}

func (s *authService) MakeAdmin(actor *models.User, targetID int) (*models.User, error) {
	if !authz.CanManage(actor.Role, authz.ActionPromote, authz.ResourceUsers) {
		return nil, ErrForbidden
	}
	target, err := s.userRepo.GetByID(targetID)
	if err != nil {
		return nil, fmt.Errorf("make admin lookup: %w", err)
	}
	if target == nil {
		return nil, ErrNotFound
	}
	if err := s.userRepo.UpdateRole(target.ID, authz.RoleAdmin); err != nil {
		return nil, fmt.Errorf("make admin: %w", err)
	}
	target.Role = authz.RoleAdmin
	return target, nil
}
