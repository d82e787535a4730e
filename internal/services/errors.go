package services

import "errors"

// Доменные ошибки; хендлеры переводят их в статус + envelope.
var (
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrNotApproved           = errors.New("account not approved")
	ErrAccountDeactivated    = errors.New("account deactivated")
	ErrEmailTaken            = errors.New("email already registered")
	ErrDuplicate             = errors.New("already exists")
	ErrInvalidInput          = errors.New("invalid input")
	ErrPasswordMismatch      = errors.New("password and confirm password must be the same")
	ErrWrongPassword         = errors.New("current password is incorrect")
	ErrInvalidToken          = errors.New("invalid token")
	ErrExpiredToken          = errors.New("token has expired")
	ErrInvalidOrExpiredToken = errors.New("invalid or expired reset token")
	ErrInvalidOrExpiredCode  = errors.New("invalid or expired verification code")
	ErrAlreadyVerified       = errors.New("email is already verified")
	ErrNotFound              = errors.New("not found")
	ErrForbidden             = errors.New("forbidden")
)
