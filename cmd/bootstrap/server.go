package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"delivery-booking/internal/handler/middleware"
	"delivery-booking/internal/pkg/config"
	"delivery-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var ServerModule = fx.Module("server",
	fx.Provide(
		func() *gin.Engine {
			return gin.New()
		},
	),
	fx.Invoke(
		seedDemoSlots,
		startRateLimiterJanitor,
		startServer,
	),
)

func startServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("starting server", "address", srv.Addr, "mode", gin.Mode(), "store", cfg.Store.Backend)
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("server stopped unexpectedly", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping server")
			return srv.Shutdown(ctx)
		},
	})
}

func startRateLimiterJanitor(lc fx.Lifecycle, limiter *middleware.RateLimiter) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			limiter.StartJanitor(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}

// seedDemoSlots runs after the store hooks, so Postgres migrations are already applied.
func seedDemoSlots(lc fx.Lifecycle, cfg config.Config, slots commands.SlotCommands) {
	if !cfg.Store.SeedDemo {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			_, err := slots.SeedDemo(ctx, cfg.Store.SeedDays)
			return err
		},
	})
}
