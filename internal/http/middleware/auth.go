// README: Firebase bearer-token auth middleware.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tripgen/internal/infra"
)

// Auth verifies the Firebase ID token in the Authorization header and stores
// the caller's uid, email and display name in the context.
func Auth(verifier infra.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header"})
			return
		}

		token, err := verifier.VerifyIDToken(c.Request.Context(), strings.TrimSpace(parts[1]))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(ContextKeyUserID, token.UID)
		c.Set(ContextKeyUserEmail, token.Email())
		c.Set(ContextKeyUserName, token.Name())
		c.Next()
	}
}

func CallerUID(c *gin.Context) string   { return c.GetString(ContextKeyUserID) }
func CallerEmail(c *gin.Context) string { return c.GetString(ContextKeyUserEmail) }
func CallerName(c *gin.Context) string  { return c.GetString(ContextKeyUserName) }
