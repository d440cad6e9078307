package routes

import (
	"Recipe-Book/domain"
	"Recipe-Book/internal/api/handlers"
	"Recipe-Book/internal/api/presenters"
	"Recipe-Book/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Config struct {
	App           *fiber.App
	RecipeHandler handlers.RecipeHandler
	Middleware    middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Recipes()
	c.GuestRoute()
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/recipes")
	{
		recipes.Get("", c.RecipeHandler.ListRecipes)
		recipes.Post("", c.RecipeHandler.CreateRecipe)
		recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessPing)
	})
	c.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
