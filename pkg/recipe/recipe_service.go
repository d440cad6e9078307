package recipe

import (
	"Recipe-Book/domain"
	"Recipe-Book/entities"
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		ListRecipes(ctx context.Context) ([]domain.RecipeResponse, error)
		ViewRecipe(ctx context.Context, id uint) (domain.RecipeResponse, error)
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.RecipeResponse, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
	}
}

func (s *recipeService) ListRecipes(ctx context.Context) ([]domain.RecipeResponse, error) {
	var result []domain.RecipeResponse
	err := s.recipeRepository.Transaction(ctx, func(repo RecipeRepository) error {
		recipes, err := repo.GetRecipes(ctx)
		if err != nil {
			return err
		}
		result = make([]domain.RecipeResponse, 0, len(recipes))
		for _, recipe := range recipes {
			result = append(result, toRecipeResponse(recipe))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	return result, nil
}

// ViewRecipe counts one view of the recipe and returns it with the updated
// counter. The read, the increment and the re-read share one transaction.
func (s *recipeService) ViewRecipe(ctx context.Context, id uint) (domain.RecipeResponse, error) {
	var res domain.RecipeResponse
	err := s.recipeRepository.Transaction(ctx, func(repo RecipeRepository) error {
		if _, err := repo.GetRecipeByID(ctx, id); err != nil {
			return err
		}
		if err := repo.IncrementViews(ctx, id, 1); err != nil {
			return err
		}
		recipe, err := repo.GetRecipeByID(ctx, id)
		if err != nil {
			return err
		}
		res = toRecipeResponse(recipe)
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, fmt.Errorf("view recipe %d: %w", id, err)
	}

	recipeViewsTotal.Inc()
	return res, nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.RecipeResponse, error) {
	recipe := entities.Recipe{
		Name:     req.Name,
		Views:    req.ViewsOrDefault(),
		CookTime: req.CookTime,
	}

	err := s.recipeRepository.Transaction(ctx, func(repo RecipeRepository) error {
		if err := repo.CreateRecipe(ctx, &recipe); err != nil {
			return err
		}

		detail := entities.RecipeDetail{
			RecipeID:    recipe.ID,
			Name:        req.Name,
			CookTime:    req.CookTime,
			Ingredients: req.Ingredients,
			Description: req.Description,
		}
		if err := repo.CreateRecipeDetail(ctx, &detail); err != nil {
			return err
		}
		recipe.Details = &detail
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			recipeConflictsTotal.Inc()
			log.Infof("recipe %q already exists", req.Name)
			return domain.RecipeResponse{}, domain.ErrRecipeAlreadyExists
		}
		return domain.RecipeResponse{}, fmt.Errorf("create recipe: %w", err)
	}

	recipesCreatedTotal.Inc()
	return toRecipeResponse(&recipe), nil
}

func toRecipeResponse(recipe *entities.Recipe) domain.RecipeResponse {
	res := domain.RecipeResponse{
		ID:       recipe.ID,
		Name:     recipe.Name,
		Views:    recipe.Views,
		CookTime: recipe.CookTime,
	}
	if recipe.Details != nil {
		res.Details = &domain.RecipeDetailResponse{
			Name:        recipe.Details.Name,
			CookTime:    recipe.Details.CookTime,
			Ingredients: recipe.Details.Ingredients,
			Description: recipe.Details.Description,
		}
	}
	return res
}
