package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/checkflowhq/checkflow_backend/internal/core/domain"
)

// RequireRoles creates a Gin middleware that rejects callers whose token
// role is not in the allowed set. It must run after AuthMiddleware.
func RequireRoles(allowed ...domain.UserRole) gin.HandlerFunc {
	allowedSet := make(map[domain.UserRole]struct{}, len(allowed))
	for _, r := range allowed {
		allowedSet[r] = struct{}{}
	}

	return func(c *gin.Context) {
		role, ok := GetUserRoleFromContext(c)
		if !ok {
			GetLoggerFromCtx(c.Request.Context()).Error("Role missing from context; is AuthMiddleware applied?")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		if _, permitted := allowedSet[role]; !permitted {
			GetLoggerFromCtx(c.Request.Context()).Warn("Role not permitted for route")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}

		c.Next()
	}
}
