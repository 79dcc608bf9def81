package middleware

import (
	"compress/gzip"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// MaxDecompressedBody caps how much a gzip request body may expand to.
const MaxDecompressedBody int64 = 1 << 20

// DecompressRequest transparently handles gzip encoded requests.
// Bodies expanding beyond MaxDecompressedBody fail to read, which handlers
// report as a bad request.
func DecompressRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.Contains(strings.ToLower(c.GetHeader("Content-Encoding")), "gzip") {
			c.Next()
			return
		}

		compressed := c.Request.Body
		defer compressed.Close()

		reader, err := gzip.NewReader(compressed)
		if err != nil {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}
		defer reader.Close()

		c.Request.Body = http.MaxBytesReader(c.Writer, reader, MaxDecompressedBody)
		c.Request.Header.Del("Content-Encoding")
		c.Request.ContentLength = -1
		c.Next()
	}
}
