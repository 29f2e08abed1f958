package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	authctx "github.com/GoSim-25-26J-441/portfolio-backend/internal/auth"
)

const APIKeyHeader = "X-Admin-Key"

// APIKeyMiddleware accepts the shared admin key from X-Admin-Key or an
// "Authorization: Bearer" header.
func APIKeyMiddleware(key string) gin.HandlerFunc {
	want := []byte(key)
	return func(c *gin.Context) {
		got := strings.TrimSpace(c.GetHeader(APIKeyHeader))
		if got == "" {
			got = extractToken(c)
		}
		if got == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing admin key"})
			c.Abort()
			return
		}
		if len(want) == 0 || subtle.ConstantTimeCompare([]byte(got), want) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid admin key"})
			c.Abort()
			return
		}

		c.Set(authctx.CtxAdminID, "api-key")
		c.Next()
	}
}
