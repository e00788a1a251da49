package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/daonlab/crm-calendar-backend/internal/common"
	"github.com/daonlab/crm-calendar-backend/pkg/jwt"
)

// RequireAuth rejects the request with 401 before any validation or store
// access when no valid bearer token is present. Write operations and the
// current-user endpoint run behind this.
func RequireAuth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := verifyBearer(c, jwtManager)
		if !ok {
			common.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("userEmail", claims.Email)
		c.Set("userName", claims.Name)

		c.Next()
	}
}

// OptionalAuth stores the caller identity when a valid token is present but
// never rejects — read endpoints stay public.
func OptionalAuth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := verifyBearer(c, jwtManager); ok {
			c.Set("userID", claims.UserID)
			c.Set("userEmail", claims.Email)
			c.Set("userName", claims.Name)
		}
		c.Next()
	}
}

func verifyBearer(c *gin.Context, jwtManager *jwt.Manager) (*jwt.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}

	claims, err := jwtManager.Verify(parts[1])
	if err != nil {
		return nil, false
	}
	return claims, true
}

// GetUserID extracts the authenticated user id from context
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get("userID")
	if !exists {
		return ""
	}
	if str, ok := userID.(string); ok {
		return str
	}
	return ""
}

// GetUserEmail extracts the authenticated user email from context
func GetUserEmail(c *gin.Context) string {
	email, exists := c.Get("userEmail")
	if !exists {
		return ""
	}
	if str, ok := email.(string); ok {
		return str
	}
	return ""
}
