package models

import "time"

type User struct {
	ID       int    `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`   // admin | lecturer | user
	Access   string `json:"access"` // pending | approved | denied

	PasswordHash string `json:"-"` // наружу не отдаём

	EmailVerified                bool       `json:"email_verified"`
	EmailVerificationCode        *int       `json:"-"`
	EmailVerificationCodeExpires *time.Time `json:"-"`

	// храним только bcrypt-хэш токена, сам токен уходит в письмо
	PasswordResetToken        *string    `json:"-"`
	PasswordResetTokenExpires *time.Time `json:"-"`

	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

type RegisterRequest struct {
	FullName        string `json:"full_name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
