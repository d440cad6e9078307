// File: entities/recipe.go
package entities

type Recipe struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"uniqueIndex;not null" json:"name"`
	Views    int    `gorm:"not null;default:0" json:"views"`
	CookTime int    `gorm:"not null" json:"cook_time"` // minutes

	Details *RecipeDetail `gorm:"foreignKey:RecipeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"details,omitempty"`
	Timestamp
}

// RecipeDetail holds the descriptive part of exactly one Recipe. Name and
// CookTime are copies kept for display, Recipe stays the source of truth.
type RecipeDetail struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	RecipeID    uint    `gorm:"uniqueIndex;not null" json:"recipe_id"`
	Name        string  `gorm:"not null" json:"name"`
	CookTime    int     `gorm:"not null" json:"cook_time"`
	Ingredients string  `gorm:"type:text;not null" json:"ingredients"`
	Description *string `gorm:"type:text" json:"description"`

	Timestamp
}
