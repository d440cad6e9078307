package cmd

import (
	"Recipe-Book/cmd/config"
	migration "Recipe-Book/cmd/database/migrate"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the recipe tables if they do not exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		db, err := config.ConnectDB(cfg)
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		defer sqlDB.Close()

		if err := migration.Migrate(db); err != nil {
			return err
		}

		color.Green("recipes and recipe_details are up to date (%s)", cfg.DBDriver)
		return nil
	},
}
