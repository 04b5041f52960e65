package controller

import (
	"antopolis/database"
	"antopolis/model"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CreateCategory handles POST /category. Uniqueness of the name is left to the store,
// which reports a clash as database.ErrDuplicate.
func CreateCategory(c *gin.Context) {
	var req model.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "category is required")
		return
	}
	name := strings.TrimSpace(req.Category)
	if name == "" {
		fail(c, http.StatusBadRequest, "category is required")
		return
	}

	category := model.Category{Name: name}
	err := database.DB.InsertCategory(c.Request.Context(), &category)
	if errors.Is(err, database.ErrDuplicate) {
		fail(c, http.StatusConflict, "Category already exists")
		return
	}
	if err != nil {
		serverError(c, err, msgInternal)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    model.InsertResult{Acknowledged: true, InsertedID: category.ID},
	})
}

func GetCategories(c *gin.Context) {
	categories, err := database.DB.ListCategories(c.Request.Context())
	if err != nil {
		serverError(c, err, "Failed to fetch categories")
		return
	}
	c.JSON(http.StatusOK, categories)
}
