package middleware

import (
	"compress/gzip"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/milktea/internal/server/http/dto"
)

// DefaultBodyLimit caps decoded order submissions.
const DefaultBodyLimit int64 = 64 << 10

// DecompressRequest inflates gzip (or x-gzip) encoded submissions and caps the decoded
// body at limit bytes. Other encodings are refused with 415.
func DecompressRequest(limit int64) gin.HandlerFunc {
	if limit <= 0 {
		limit = DefaultBodyLimit
	}
	return func(c *gin.Context) {
		encoding := strings.ToLower(strings.TrimSpace(c.GetHeader("Content-Encoding")))
		switch encoding {
		case "", "identity":
			c.Next()
			return
		case "gzip", "x-gzip":
		default:
			c.AbortWithStatusJSON(http.StatusUnsupportedMediaType, dto.ErrorResponse{Error: "unsupported content encoding"})
			return
		}

		compressed := c.Request.Body
		defer compressed.Close()
		inflated, err := gzip.NewReader(compressed)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: "malformed gzip body"})
			return
		}
		defer inflated.Close()

		c.Request.Body = http.MaxBytesReader(c.Writer, inflated, limit)
		c.Request.Header.Del("Content-Encoding")
		c.Request.ContentLength = -1
		c.Next()
	}
}
