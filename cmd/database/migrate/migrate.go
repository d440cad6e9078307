package migration

import (
	"Recipe-Book/entities"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

// Migrate creates the recipe tables when they are absent.
func Migrate(db *gorm.DB) error {
	// one call so GORM orders the tables by their foreign keys
	if err := db.AutoMigrate(&entities.Recipe{}, &entities.RecipeDetail{}); err != nil {
		return fmt.Errorf("error migrating recipe tables: %w", err)
	}

	log.Info("Database migration complete")
	return nil
}
