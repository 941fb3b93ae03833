package middleware

import (
	"errors"
	"strings"

	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware extracts the bearer token, verifies it, and stores the
// caller identity in the context. A missing token and a bad token produce
// distinct messages so clients can tell the cases apart.
func AuthMiddleware(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.TrackAuthAttempt("failure", "token")
			utils.Unauthorized(c, "Unauthorized - Token not provided")
			c.Abort()
			return
		}

		// Standard "Bearer <token>" scheme, with the raw legacy header
		// still accepted.
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		identity, err := tokens.Verify(tokenString)
		if err != nil {
			utils.TrackAuthAttempt("failure", "token")
			if errors.Is(err, services.ErrNoToken) {
				utils.Unauthorized(c, "Unauthorized - Token not provided")
			} else {
				utils.Unauthorized(c, "Unauthorized - Invalid token")
			}
			c.Abort()
			return
		}

		c.Set("user_id", identity.UserID)
		c.Set("username", identity.Username)
		c.Next()
	}
}
