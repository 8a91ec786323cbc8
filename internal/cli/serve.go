package cli

import (
	"context"
	"log/slog"

	"delivery-booking/cmd/bootstrap"
	"delivery-booking/internal/pkg/config"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func NewServeCmd() *cobra.Command {
	var backend string
	c := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(backend)
			if err != nil {
				return err
			}

			app := fx.New(
				bootstrap.Module(cfg),
			)

			if err := app.Start(cmd.Context()); err != nil {
				slog.Error("failed to start application", "error", err)
				return err
			}

			<-app.Done()

			if err := app.Stop(context.Background()); err != nil {
				slog.Error("failed to stop application cleanly", "error", err)
			}

			slog.Info("application stopped")
			return nil
		},
	}
	c.Flags().StringVar(&backend, "store", "", "store backend override: memory, postgres or redis")
	return c
}

// loadConfig reads the environment and applies a --store override before validation.
func loadConfig(backend string) (config.Config, error) {
	if backend == "" {
		return config.LoadConfig()
	}
	return config.LoadConfigWith(func(c *config.Config) {
		c.Store.Backend = backend
	})
}
