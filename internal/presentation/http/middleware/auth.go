package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/omondig/pulseboard-api/pkg/utils"
)

// OptionalAuthMiddleware attaches the caller's identity to the context when a
// valid Bearer token is present. Requests without one still pass; no route
// on this API rejects unauthenticated callers.
func OptionalAuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.Next()
			return
		}

		tokenString := parts[1]
		claims, err := jwtManager.ValidateAccessToken(tokenString)
		if err != nil {
			c.Next()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("user_role", claims.Role)

		c.Next()
	}
}
