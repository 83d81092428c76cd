package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"raahi/pkg/utils"
)

// APIKeyMiddleware requires a matching x-api-key header. An empty key
// disables the check.
func APIKeyMiddleware(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			c.Next()
			return
		}
		given := c.GetHeader("x-api-key")
		if given == "" || subtle.ConstantTimeCompare([]byte(given), []byte(apiKey)) != 1 {
			utils.RespondError(c, http.StatusUnauthorized, "Unauthorized: Invalid or missing API key")
			c.Abort()
			return
		}
		c.Next()
	}
}
