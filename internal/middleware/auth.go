package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/cinepick/cinepick/internal/pkg/response"
	"github.com/cinepick/cinepick/internal/pkg/token"
)

// HeaderAuthToken is the header carrying the raw session token. The client
// sends the token bare, not wrapped in a Bearer scheme.
const HeaderAuthToken = "x-auth-token"

// Auth guards a route group: it rejects requests without a valid session
// token and exposes the embedded user ID to downstream handlers.
func Auth(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader(HeaderAuthToken)
		if tokenString == "" {
			response.Unauthorized(c, "No token, authorization denied")
			c.Abort()
			return
		}

		claims, err := tokens.Validate(tokenString)
		if err != nil {
			response.Unauthorized(c, "Token is not valid")
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Next()
	}
}
