package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SizeLimit caps request bodies at maxBodyBytes; oversized payloads fail
// with http.MaxBytesError and usually surface as 413.
func SizeLimit(maxBodyBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

		c.Next()
	}
}
