package controller

import (
	"antopolis/database"
	"antopolis/model"
	"antopolis/utils"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// CreateFoodItem handles POST /foodItem. The image, if any, was already stored by the
// upload middleware.
func CreateFoodItem(c *gin.Context) {
	image, _ := utils.UploadedFile(c)

	var req model.CreateFoodItemRequest
	if err := c.ShouldBind(&req); err != nil {
		removeFile(c, image)
		fail(c, http.StatusBadRequest, "foodName and category are required")
		return
	}

	item := model.FoodItem{
		FoodName:  req.FoodName,
		Category:  req.Category,
		ImagePath: image,
	}
	if err := database.DB.InsertFoodItem(c.Request.Context(), &item); err != nil {
		removeFile(c, image)
		serverError(c, err, msgInternal)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    model.InsertResult{Acknowledged: true, InsertedID: item.ID},
	})
}

func GetFoodItems(c *gin.Context) {
	items, err := database.DB.ListFoodItems(c.Request.Context())
	if err != nil {
		serverError(c, err, "Failed to fetch food items")
		return
	}
	c.JSON(http.StatusOK, items)
}

func GetFoodItemByID(c *gin.Context) {
	item, err := database.DB.GetFoodItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		storeError(c, err, msgFoodNotFound, "Failed to fetch food item")
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteFoodItem removes the record and then, best effort, its image.
func DeleteFoodItem(c *gin.Context) {
	item, err := database.DB.DeleteFoodItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		storeError(c, err, msgFoodNotFound, "Failed to delete food item")
		return
	}
	removeFile(c, item.ImagePath)

	c.JSON(http.StatusOK, gin.H{"message": "Deleted successfully"})
}

// ImportFoodItems handles POST /foodItem/import: an .xlsx workbook whose first sheet holds
// a header row followed by foodName, category and an optional imagePath column.
func ImportFoodItems(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		fail(c, http.StatusBadRequest, "Excel file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		serverError(c, err, "Unable to open Excel file")
		return
	}
	defer file.Close()

	xl, err := excelize.OpenReader(file)
	if err != nil {
		fail(c, http.StatusBadRequest, "Failed to parse Excel file")
		return
	}
	defer xl.Close()

	sheets := xl.GetSheetList()
	if len(sheets) == 0 {
		fail(c, http.StatusBadRequest, "Excel file has no sheets")
		return
	}
	rows, err := xl.GetRows(sheets[0])
	if err != nil {
		fail(c, http.StatusBadRequest, "Failed to parse Excel file")
		return
	}

	items := parseFoodRows(rows)
	if len(items) == 0 {
		fail(c, http.StatusBadRequest, "No valid rows found")
		return
	}

	ids, err := database.DB.InsertFoodItems(c.Request.Context(), items)
	if err != nil {
		serverError(c, err, "Failed to insert food items")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"count":   len(ids),
		"data":    model.InsertManyResult{Acknowledged: true, InsertedIDs: ids},
	})
}

// parseFoodRows skips the header row and any row missing a name or a category.
func parseFoodRows(rows [][]string) []model.FoodItem {
	if len(rows) < 2 {
		return nil
	}
	var items []model.FoodItem
	for _, row := range rows[1:] {
		if len(row) < 2 {
			continue
		}
		item := model.FoodItem{
			FoodName: strings.TrimSpace(row[0]),
			Category: strings.TrimSpace(row[1]),
		}
		if item.FoodName == "" || item.Category == "" {
			continue
		}
		if len(row) > 2 {
			item.ImagePath = strings.TrimSpace(row[2])
		}
		items = append(items, item)
	}
	return items
}
