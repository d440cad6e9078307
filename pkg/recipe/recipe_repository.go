package recipe

import (
	"Recipe-Book/entities"
	"context"

	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		// Transaction runs fn against a repository bound to one database
		// transaction. It commits when fn returns nil and rolls back when fn
		// returns an error or panics.
		Transaction(ctx context.Context, fn func(repo RecipeRepository) error) error
		GetRecipes(ctx context.Context) ([]*entities.Recipe, error)
		GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error)
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		CreateRecipeDetail(ctx context.Context, detail *entities.RecipeDetail) error
		IncrementViews(ctx context.Context, id uint, delta int) error
		CountRecipes(ctx context.Context) (int64, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) Transaction(ctx context.Context, fn func(repo RecipeRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&recipeRepository{db: tx})
	})
}

func (r *recipeRepository) GetRecipes(ctx context.Context) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Order("views desc").
		Order("cook_time asc").
		Order("id asc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Details").
		Where("id = ?", id).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Omit("Details").Create(recipe).Error
}

func (r *recipeRepository) CreateRecipeDetail(ctx context.Context, detail *entities.RecipeDetail) error {
	return r.db.WithContext(ctx).Create(detail).Error
}

func (r *recipeRepository) IncrementViews(ctx context.Context, id uint, delta int) error {
	res := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id = ?", id).
		Update("views", gorm.Expr("views + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *recipeRepository) CountRecipes(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Recipe{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
