package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/models"
	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/responses"
	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/services"
)

const SessionCookie = "jwt"

// tokenFromRequest — сначала cookie, потом Authorization: Bearer.
func tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie
	}
	authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// AuthMiddleware — проверяет сессионный токен и кладёт пользователя в
// контекст. Статус access здесь не смотрим: он закрывает только логин.
func AuthMiddleware(tokens services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		tokenStr := tokenFromRequest(c)
		if tokenStr == "" {
			responses.AbortError(c, http.StatusUnauthorized, "You are not logged in. Kindly log in to get access")
			return
		}

		user, err := tokens.VerifySessionToken(tokenStr)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrExpiredToken):
				responses.AbortError(c, http.StatusUnauthorized, "Token has expired")
			case errors.Is(err, services.ErrNotFound):
				responses.AbortError(c, http.StatusUnauthorized, "User not found")
			case errors.Is(err, services.ErrAccountDeactivated):
				responses.AbortError(c, http.StatusUnauthorized, "User account is deactivated")
			default:
				responses.AbortError(c, http.StatusUnauthorized, "Invalid token")
			}
			return
		}

		c.Set("user", user)
		c.Set("user_id", user.ID)
		c.Set("user_role", user.Role)
		c.Next()
	}
}

// CurrentUser — пользователь, положенный AuthMiddleware.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get("user")
	if !ok {
		return nil, false
	}
	u, ok := v.(*models.User)
	return u, ok
}
