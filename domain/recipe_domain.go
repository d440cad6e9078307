package domain

import (
	"errors"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessCreateRecipe    = "recipe created successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedCreateRecipe    = "failed to create recipe"

	ErrRecipeNotFound      = errors.New("recipe not found")
	ErrRecipeAlreadyExists = errors.New("recipe with this name already exists")
	ErrInvalidRecipeID     = errors.New("recipe id must be an integer")
)

type (
	CreateRecipeRequest struct {
		Name        string  `json:"name" validate:"required"`
		Views       *int    `json:"views" validate:"omitempty,min=0"`
		CookTime    int     `json:"cook_time" validate:"required,gt=0"`
		Ingredients string  `json:"ingredients" validate:"required"`
		Description *string `json:"description"`
	}

	RecipeResponse struct {
		ID       uint                  `json:"id"`
		Name     string                `json:"name"`
		Views    int                   `json:"views"`
		CookTime int                   `json:"cook_time"`
		Details  *RecipeDetailResponse `json:"details"`
	}

	RecipeDetailResponse struct {
		Name        string  `json:"name"`
		CookTime    int     `json:"cook_time"`
		Ingredients string  `json:"ingredients"`
		Description *string `json:"description"`
	}
)

// ViewsOrDefault returns the requested initial view count, 0 when omitted.
func (r CreateRecipeRequest) ViewsOrDefault() int {
	if r.Views == nil {
		return 0
	}
	return *r.Views
}
