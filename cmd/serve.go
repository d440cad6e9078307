package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"Recipe-Book/cmd/config"
	migration "Recipe-Book/cmd/database/migrate"

	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Create missing tables and start the HTTP server",
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

		app, err := config.NewApp(db, cfg)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			errCh <- app.Listen(":" + cfg.AppPort)
		}()

		select {
		case err := <-errCh:
			if err != nil {
				return fmt.Errorf("server failed: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		log.Info("shutting down server")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		if err := <-errCh; err != nil && !errors.Is(err, os.ErrClosed) {
			log.Warnf("listener stopped with error: %v", err)
		}
		return nil
	},
}
