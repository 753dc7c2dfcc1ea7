package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireJobSecret guards the job trigger endpoints. The caller presents the
// shared secret via the X-Job-Secret header or the secret query parameter
// (the latter for schedulers that cannot set headers). An empty configured
// secret leaves the endpoint open, for local development only.
func RequireJobSecret(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}

		presented := c.GetHeader("X-Job-Secret")
		if presented == "" {
			presented = c.Query("secret")
		}

		if subtle.ConstantTimeCompare([]byte(presented), []byte(secret)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Unauthorized"},
			})
			return
		}
		c.Next()
	}
}
