package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/config"
	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/models"
	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/repositories"
	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/utils"
)

const (
	verificationCodeTTL = 15 * time.Minute
	resetTokenTTL       = 10 * time.Minute
)

// SessionClaims — полезная нагрузка сессионного JWT.
type SessionClaims struct {
	UserID int    `json:"id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService выпускает и проверяет три семейства токенов: сессионный JWT,
// код подтверждения email и токен сброса пароля.
type TokenService interface {
	CreateSessionToken(user *models.User) (string, error)
	VerifySessionToken(tokenStr string) (*models.User, error)

	IssueVerificationCode(userID int) (int, error)
	RedeemVerificationCode(userID, code int) error

	IssueResetToken(userID int) (string, error)
	RedeemResetToken(token, newPasswordHash string) (*models.User, error)
}

type tokenService struct {
	userRepo repositories.UserRepository
	secret   []byte
	ttl      time.Duration
}

func NewTokenService(userRepo repositories.UserRepository, cfg config.JWTConfig) TokenService {
	return &tokenService{
		userRepo: userRepo,
		secret:   []byte(cfg.Secret),
		ttl:      time.Duration(cfg.ExpiresDays) * 24 * time.Hour,
	}
}

func (s *tokenService) CreateSessionToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// VerifySessionToken — подпись, срок, существование пользователя, active.
// Статус access на уже выданный токен НЕ влияет: он закрывает только логин.
func (s *tokenService) VerifySessionToken(tokenStr string) (*models.User, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		// принимаем только HMAC
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("token subject lookup: %w", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}
	if !user.Active {
		return nil, ErrAccountDeactivated
	}
	return user, nil
}

// IssueVerificationCode — новая выдача инвалидирует предыдущий код.
func (s *tokenService) IssueVerificationCode(userID int) (int, error) {
	code, err := utils.NewVerificationCode()
	if err != nil {
		return 0, err
	}
	expires := time.Now().Add(verificationCodeTTL)
	if err := s.userRepo.SetVerificationCode(userID, code, expires); err != nil {
		return 0, fmt.Errorf("store verification code: %w", err)
	}
	return code, nil
}

func (s *tokenService) RedeemVerificationCode(userID, code int) error {
	ok, err := s.userRepo.ConsumeVerificationCode(userID, code, time.Now())
	if err != nil {
		return fmt.Errorf("redeem verification code: %w", err)
	}
	if !ok {
		// не раскрываем, истёк код или не совпал
		return ErrInvalidOrExpiredCode
	}
	return nil
}

// IssueResetToken — в БД уходит только bcrypt-хэш, plaintext отдаётся один
// раз для письма.
func (s *tokenService) IssueResetToken(userID int) (string, error) {
	token, err := utils.NewResetToken(32)
	if err != nil {
		return "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash reset token: %w", err)
	}
	expires := time.Now().Add(resetTokenTTL)
	if err := s.userRepo.SetResetToken(userID, string(hash), expires); err != nil {
		return "", fmt.Errorf("store reset token: %w", err)
	}
	return token, nil
}

// RedeemResetToken — владельца ищем перебором непогашенных хэшей
// (O(n) по числу ожидающих сбросов, приемлемо на нашем масштабе; bcrypt
// сравнивает за константное время). Погашение идёт через compare-and-swap
// в репозитории, поэтому повторный или конкурентный сброс не пройдёт.
func (s *tokenService) RedeemResetToken(token, newPasswordHash string) (*models.User, error) {
	candidates, err := s.userRepo.ListPendingResets(time.Now())
	if err != nil {
		return nil, fmt.Errorf("list pending resets: %w", err)
	}
	for _, u := range candidates {
		if u.PasswordResetToken == nil {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(*u.PasswordResetToken), []byte(token)) != nil {
			continue
		}
		ok, err := s.userRepo.ConsumeResetToken(u.ID, *u.PasswordResetToken, newPasswordHash)
		if err != nil {
			return nil, fmt.Errorf("consume reset token: %w", err)
		}
		if !ok {
			break // кто-то успел раньше
		}
		return u, nil
	}
	return nil, ErrInvalidOrExpiredToken
}
