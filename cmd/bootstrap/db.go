package bootstrap

import (
	"context"
	"log/slog"

	"delivery-booking/internal/infra/db"
	"delivery-booking/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
		func(pool *pgxpool.Pool) db.TxBeginner {
			return pool
		},
	),
	fx.Invoke(registerMigrations),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}

func registerMigrations(lc fx.Lifecycle, cfg config.Config, pool db.TxBeginner, logger *slog.Logger) {
	if !cfg.DB.AutoMigrate {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			applied, err := db.Migrate(ctx, pool)
			if err != nil {
				return err
			}
			logger.Info("database schema is up to date", "applied", len(applied))
			return nil
		},
	})
}
