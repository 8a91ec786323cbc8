package bootstrap

import (
	"delivery-booking/cmd/bootstrap/components"
	"delivery-booking/internal/pkg/config"

	"go.uber.org/fx"
)

// CoreModule is everything below the HTTP layer: store backend and use cases.
func CoreModule(cfg config.Config) fx.Option {
	return fx.Options(
		ConfigModule(cfg),
		LoggerModule,
		storeModule(cfg.Store.Backend),
		components.UseCaseModule,
	)
}

// Module is the full server graph.
func Module(cfg config.Config) fx.Option {
	return fx.Options(
		CoreModule(cfg),
		components.HandlerModule,
		ServerModule,
	)
}

func storeModule(backend string) fx.Option {
	switch backend {
	case config.BackendMemory:
		return components.MemoryStoreModule
	case config.BackendRedis:
		return fx.Options(RedisModule, components.RedisStoreModule)
	default:
		return fx.Options(DBModule, components.PostgresStoreModule)
	}
}
