package config

import (
	"Recipe-Book/domain"
	"Recipe-Book/internal/api/handlers"
	"Recipe-Book/internal/api/presenters"
	"Recipe-Book/internal/api/routes"
	"Recipe-Book/internal/api/views"
	"Recipe-Book/internal/middleware"
	"Recipe-Book/internal/utils"
	"Recipe-Book/internal/utils/i18n"
	"Recipe-Book/pkg/recipe"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB, cfg utils.Config) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		AppName:           cfg.AppName,
		EnablePrintRoutes: cfg.PrintRoutes,
		Views:             views.NewEngine(),
		ErrorHandler:      errorHandler,
	})
	translator := i18n.New(cfg.DefaultLang)
	middlewares := middleware.NewMiddleware(cfg.CORSAllowOrigins, translator)
	validator := utils.Validate

	app.Use(middlewares.RecoverMiddleware())
	app.Use(middlewares.RequestIDMiddleware())
	app.Use(middlewares.LocaleMiddleware())

	// setting up logging and limiter
	if cfg.LogFile != "" {
		out, err := openLogOutput(cfg.LogFile)
		if err != nil {
			return nil, err
		}
		app.Use(logger.New(logger.Config{
			Format:     "${time} | ${locals:requestid} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${error}\n",
			TimeFormat: "2006-01-02 15:04:05",
			TimeZone:   "Local",
			Output:     out,
		}))
	}

	if cfg.RateLimitMax > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimitMax,
			Expiration: 1 * time.Second,
			LimitReached: func(c *fiber.Ctx) error {
				return presenters.ErrorResponse(c, fiber.StatusTooManyRequests, domain.MessageTooManyRequests, domain.ErrTooManyRequests)
			},
		}))
	}

	// Repository
	recipeRepository := recipe.NewRecipeRepository(db)

	// Service
	recipeService := recipe.NewRecipeService(recipeRepository)

	// Handler
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)

	// routes
	routesConfig := routes.Config{
		App:           app,
		RecipeHandler: recipeHandler,
		Middleware:    middlewares,
	}
	routesConfig.Setup()
	return app, nil
}

// openLogOutput resolves LOG_FILE: "-" is stdout, anything else a file
// opened for appending.
func openLogOutput(path string) (io.Writer, error) {
	if path == "-" {
		return os.Stdout, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, fmt.Errorf("error creating logs directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("error opening log file: %w", err)
	}
	return file, nil
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	switch code {
	case fiber.StatusNotFound:
		return presenters.ErrorResponse(c, code, domain.MessageFailedProcessRequest, domain.ErrRouteNotFound)
	case fiber.StatusInternalServerError:
		log.Errorf("%s %s: %v", c.Method(), c.Path(), err)
		return presenters.ErrorResponse(c, code, domain.MessageFailedProcessRequest, domain.ErrInternal)
	default:
		return presenters.ErrorResponse(c, code, domain.MessageFailedProcessRequest, err)
	}
}
