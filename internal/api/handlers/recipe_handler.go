package handlers

import (
	"Recipe-Book/domain"
	"Recipe-Book/internal/api/presenters"
	"Recipe-Book/internal/api/views"
	"Recipe-Book/internal/utils"
	"Recipe-Book/pkg/recipe"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type (
	RecipeHandler interface {
		ListRecipes(c *fiber.Ctx) error
		GetRecipeDetail(c *fiber.Ctx) error
		CreateRecipe(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

func (h *recipeHandler) ListRecipes(c *fiber.Ctx) error {
	recipes, err := h.recipeService.ListRecipes(c.UserContext())
	if err != nil {
		log.Errorf("list recipes: %v", err)
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRecipes, domain.ErrInternal)
	}

	return c.Render("recipes_list", fiber.Map{
		"Title":   "Recipes List",
		"Recipes": recipes,
	}, views.Layout)
}

func (h *recipeHandler) GetRecipeDetail(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnprocessableEntity, domain.MessageFailedGetRecipeDetail, domain.ErrInvalidRecipeID)
	}
	if id <= 0 {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetRecipeDetail, domain.ErrRecipeNotFound)
	}

	res, err := h.recipeService.ViewRecipe(c.UserContext(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetRecipeDetail, err)
		}
		log.Errorf("view recipe: %v", err)
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRecipeDetail, domain.ErrInternal)
	}

	return c.Render("recipe_detail", fiber.Map{
		"Title":  res.Name,
		"Recipe": res,
	}, views.Layout)
}

func (h *recipeHandler) CreateRecipe(c *fiber.Ctx) error {
	req := new(domain.CreateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnprocessableEntity, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ValidationErrorResponse(c, domain.MessageFailedValidation, utils.FieldErrors(err))
	}

	res, err := h.recipeService.CreateRecipe(c.UserContext(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeAlreadyExists) {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedCreateRecipe, err)
		}
		log.Errorf("create recipe: %v", err)
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateRecipe, domain.ErrInternal)
	}

	return c.Status(fiber.StatusCreated).JSON(res)
}
