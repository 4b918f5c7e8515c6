package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tycord/config"
	"tycord/pkg/utils"
)

const userIDKey = "userID"

// AuthMiddleware verifies the Bearer token and stashes the caller's user id
// on the request context.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing token"})
			return
		}

		userID, err := utils.ValidateJWTToken(strings.TrimPrefix(h, "Bearer "), cfg)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

func MustUserID(c *gin.Context) uuid.UUID {
	v, _ := c.Get(userIDKey)
	return v.(uuid.UUID)
}
