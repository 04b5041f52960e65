package utils

import (
	"antopolis/storage"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// UploadedFileKey is the context key under which Upload stores the saved file name.
const UploadedFileKey = "uploaded_file"

// RequestLogger writes one log line per request. Errors attached with c.Error are
// included so handlers can keep failure details out of the response body.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		var e *zerolog.Event
		switch {
		case status >= 500:
			e = log.Error()
		case status >= 400:
			e = log.Warn()
		default:
			e = log.Info()
		}
		if err := c.Errors.Last(); err != nil {
			e = e.Err(err.Err)
		}

		e.
			Dur("latency", time.Since(start)).
			Int("status", status).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent()).
			Msg("API")
	}
}

// Upload saves the file sent in the multipart field into storage.Files under a generated
// name starting with prefix. Requests without the field pass through untouched.
func Upload(field, prefix string) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile(field)
		if err != nil {
			if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Invalid multipart form",
			})
			return
		}

		src, err := file.Open()
		if err != nil {
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Failed to save upload",
			})
			return
		}
		defer src.Close()

		name, err := storage.Files.Save(c.Request.Context(), prefix, file.Filename, src, file.Size)
		if err != nil {
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Failed to save upload",
			})
			return
		}

		c.Set(UploadedFileKey, name)
		c.Next()
	}
}

// UploadedFile returns the name saved by Upload, if any.
func UploadedFile(c *gin.Context) (string, bool) {
	name := c.GetString(UploadedFileKey)
	return name, name != ""
}
