package delivery

import (
	"net/http"
	"strings"

	authdomain "parkhub-backend/internal/auth/domain"
	"parkhub-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// ContextUserKey holds the authenticated user on the request context.
const ContextUserKey = "user"

func extractBearer(header string) string {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

func AuthMiddleware(authz usecase.Authorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			c.Abort()
			return
		}

		user, err := authz.GetUserByToken(authHeader)
		if err != nil || user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// AdminMiddleware layers the role check on admin-only routes. It must run
// after AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		value, ok := c.Get(ContextUserKey)
		user, _ := value.(*authdomain.User)
		if !ok || user == nil || !user.Role.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
