package cmd

import (
	"fmt"
	"os"

	"Recipe-Book/internal/utils"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "recipe-book",
	Short: "Recipe book web service",
	Long: `recipe-book serves a recipe list, recipe detail pages with view
counters and a JSON endpoint for creating recipes.

Examples:

  recipe-book serve
  recipe-book migrate --config config.yaml
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		color.Red("error: %v", err)
		os.Exit(1)
	}
}

func loadConfig() (utils.Config, error) {
	cfg, err := utils.LoadConfig(configPath)
	if err != nil {
		return cfg, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// Register subcommands
func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", utils.DefaultConfigPath, "path to the YAML config file")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}
