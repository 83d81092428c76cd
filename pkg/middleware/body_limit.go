package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"raahi/pkg/utils"
)

// DefaultBodyLimit is the largest request body the API accepts.
const DefaultBodyLimit int64 = 16 << 10

// BodyLimitMiddleware rejects declared oversize bodies up front and caps the
// rest with http.MaxBytesReader, so a decoder sees *http.MaxBytesError once
// limit bytes have been read.
func BodyLimitMiddleware(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > limit {
			utils.RespondError(c, http.StatusRequestEntityTooLarge, fmt.Sprintf("request body exceeds %d bytes", limit))
			c.Abort()
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		}
		c.Next()
	}
}
