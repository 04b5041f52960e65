package model

type FoodItem struct {
	ID        string `json:"_id" gorm:"primaryKey;type:uuid"`
	FoodName  string `json:"foodName" gorm:"not null"`
	Category  string `json:"category" gorm:"index"`
	ImagePath string `json:"imagePath,omitempty"`
}

// CreateFoodItemRequest is the multipart body of POST /foodItem.
type CreateFoodItemRequest struct {
	FoodName string `form:"foodName" binding:"required"`
	Category string `form:"category" binding:"required"`
}

// InsertResult mirrors the acknowledgement a document store returns for an insert.
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

type InsertManyResult struct {
	Acknowledged bool     `json:"acknowledged"`
	InsertedIDs  []string `json:"insertedIds"`
}
