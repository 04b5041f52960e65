package controller

import (
	"antopolis/database"
	"antopolis/storage"
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":   "Server is running smoothly",
		"timestamp": time.Now(),
	})
}

// Health pings the store; it answers 503 when the database is unreachable.
func Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	start := time.Now()
	status, code := "healthy", http.StatusOK
	check := gin.H{"status": "healthy"}
	if err := database.DB.Ping(ctx); err != nil {
		_ = c.Error(err)
		status, code = "unhealthy", http.StatusServiceUnavailable
		check = gin.H{"status": "unhealthy", "error": "database unreachable"}
	}
	check["response_time"] = time.Since(start).String()

	c.JSON(code, gin.H{
		"status":    status,
		"timestamp": time.Now().UTC(),
		"checks":    gin.H{"database": check},
	})
}

// ServeUpload handles GET /uploads/:filename.
func ServeUpload(c *gin.Context) {
	f, err := storage.Files.Open(c.Request.Context(), c.Param("filename"))
	if errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrInvalidName) {
		fail(c, http.StatusNotFound, "File not found")
		return
	}
	if err != nil {
		serverError(c, err, "Failed to read file")
		return
	}
	defer f.Close()

	c.DataFromReader(http.StatusOK, f.Size, f.ContentType, f, nil)
}
