package controller

import (
	"antopolis/database"
	"antopolis/storage"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	msgInternal     = "Internal server error"
	msgInvalidID    = "Invalid ID format"
	msgFoodNotFound = "Food item not found"
)

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}

// serverError keeps err out of the response; RequestLogger picks it up from c.Errors.
func serverError(c *gin.Context, err error, message string) {
	_ = c.Error(err)
	fail(c, http.StatusInternalServerError, message)
}

func storeError(c *gin.Context, err error, notFound, fallback string) {
	switch {
	case errors.Is(err, database.ErrInvalidID):
		fail(c, http.StatusBadRequest, msgInvalidID)
	case errors.Is(err, database.ErrNotFound):
		fail(c, http.StatusNotFound, notFound)
	default:
		serverError(c, err, fallback)
	}
}

// removeFile deletes a stored upload that no record refers to.
func removeFile(c *gin.Context, name string) {
	if name == "" {
		return
	}
	err := storage.Files.Delete(c.Request.Context(), name)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		log.Warn().Err(err).Str("file", name).Msg("Failed to remove stored file")
	}
}
