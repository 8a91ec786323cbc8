package cli

import (
	"context"
	"fmt"
	"time"

	"delivery-booking/cmd/bootstrap"
	"delivery-booking/internal/usecase/commands"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func NewSeedCmd() *cobra.Command {
	var (
		backend string
		days    int
	)
	c := &cobra.Command{
		Use:   "seed",
		Short: "Provision a demo schedule of time slots",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(backend)
			if err != nil {
				return err
			}

			var slotCmds commands.SlotCommands
			app := fx.New(
				bootstrap.CoreModule(cfg),
				fx.Populate(&slotCmds),
			)

			ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
			defer cancel()

			// starting runs the store hooks, including Postgres migrations
			if err := app.Start(ctx); err != nil {
				return err
			}
			defer func() { _ = app.Stop(context.Background()) }()

			slots, err := slotCmds.SeedDemo(ctx, days)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "provisioned %d time slots\n", len(slots))
			return nil
		},
	}
	c.Flags().StringVar(&backend, "store", "", "store backend override: postgres or redis")
	c.Flags().IntVar(&days, "days", 7, "number of days to schedule, starting today")
	return c
}
