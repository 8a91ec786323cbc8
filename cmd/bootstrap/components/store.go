package components

import (
	"delivery-booking/internal/infra/memstore"
	"delivery-booking/internal/infra/redisstore"
	"delivery-booking/internal/infra/uow"
	"delivery-booking/internal/pkg/config"
	"delivery-booking/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// storeUoW is what every backend's unit of work offers beyond shared.UnitOfWork.
type storeUoW interface {
	shared.UnitOfWork
	Provisioner() shared.TimeSlotProvisioner
}

var storeBaseOption = fx.Provide(
	func(u storeUoW) shared.UnitOfWork {
		return u
	},
	func(u storeUoW) shared.TimeSlotProvisioner {
		return u.Provisioner()
	},
)

var MemoryStoreModule = fx.Module("store/memory",
	storeBaseOption,
	fx.Provide(
		memstore.NewTimeSlotStore,
		memstore.NewBookingStore,
		fx.Annotate(
			memstore.NewUoW,
			fx.As(new(storeUoW)),
		),
	),
)

var PostgresStoreModule = fx.Module("store/postgres",
	storeBaseOption,
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(storeUoW)),
		),
	),
)

var RedisStoreModule = fx.Module("store/redis",
	storeBaseOption,
	fx.Provide(
		func(rdb redis.UniversalClient, cfg config.Config) *redisstore.Stores {
			return redisstore.New(rdb, redisstore.WithKeyPrefix(cfg.Redis.KeyPrefix))
		},
		fx.Annotate(
			redisstore.NewUoW,
			fx.As(new(storeUoW)),
		),
	),
)
