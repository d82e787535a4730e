package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/authz"
	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/responses"
)

func roleFromCtx(c *gin.Context) string {
	v, ok := c.Get("user_role")
	if !ok {
		return ""
	}
	role, _ := v.(string)
	return role
}

func RequireRoles(allowed ...string) gin.HandlerFunc {
	allowedSet := map[string]struct{}{}
	for _, r := range allowed {
		allowedSet[r] = struct{}{}
	}
	return func(c *gin.Context) {
		role := roleFromCtx(c)
		if role == "" {
			responses.AbortError(c, http.StatusUnauthorized, "no role in context")
			return
		}
		if _, ok := allowedSet[role]; !ok {
			responses.AbortError(c, http.StatusForbidden, "You are not authorized to perform this action")
			return
		}
		c.Next()
	}
}

// RequireCan — проверка через единую точку authz.CanManage.
func RequireCan(action, resource string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := roleFromCtx(c)
		if role == "" {
			responses.AbortError(c, http.StatusUnauthorized, "no role in context")
			return
		}
		if !authz.CanManage(role, action, resource) {
			responses.AbortError(c, http.StatusForbidden, "You are not authorized to perform this action")
			return
		}
		c.Next()
	}
}
