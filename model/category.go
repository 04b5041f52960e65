package model

type Category struct {
	ID   string `json:"_id" gorm:"primaryKey;type:uuid"`
	Name string `json:"category" gorm:"column:category;uniqueIndex;not null"`
}

type CreateCategoryRequest struct {
	Category string `json:"category" binding:"required"`
}
