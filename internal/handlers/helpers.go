package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/responses"
	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/services"
)

// base — общая часть хендлеров: перевод доменных ошибок в статус + envelope.
type base struct {
	dev bool // в dev-режиме 500-е отдают текст ошибки
}

func (b base) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPasswordMismatch),
		errors.Is(err, services.ErrInvalidInput):
		responses.Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		responses.Error(c, http.StatusBadRequest, "Invalid email or password. Kindly try again")
	case errors.Is(err, services.ErrNotApproved):
		responses.Error(c, http.StatusForbidden, "You are not yet approved to login. Kindly wait for approval")
	case errors.Is(err, services.ErrEmailTaken):
		responses.Error(c, http.StatusBadRequest, "Email already registered")
	case errors.Is(err, services.ErrDuplicate):
		responses.Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrWrongPassword):
		responses.Error(c, http.StatusBadRequest, "Current password is incorrect")
	case errors.Is(err, services.ErrInvalidOrExpiredToken):
		responses.Error(c, http.StatusBadRequest, "Invalid or expired reset token")
	case errors.Is(err, services.ErrInvalidOrExpiredCode):
		responses.Error(c, http.StatusBadRequest, "Invalid or expired verification code")
	case errors.Is(err, services.ErrAlreadyVerified):
		responses.Error(c, http.StatusBadRequest, "Email is already verified")
	case errors.Is(err, services.ErrAccountDeactivated):
		responses.Error(c, http.StatusUnauthorized, "User account is deactivated")
	case errors.Is(err, services.ErrForbidden):
		responses.Error(c, http.StatusForbidden, "You are not authorized to perform this action")
	case errors.Is(err, services.ErrNotFound):
		responses.Error(c, http.StatusNotFound, err.Error())
	default:
		log.Printf("[handlers] unexpected error: %v", err)
		if b.dev {
			responses.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		responses.Error(c, http.StatusInternalServerError, "An error occurred. Please try again.")
	}
}

func (b base) badRequest(c *gin.Context, err error) {
	responses.Error(c, http.StatusBadRequest, err.Error())
}
