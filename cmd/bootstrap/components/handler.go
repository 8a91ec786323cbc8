package components

import (
	"delivery-booking/internal/handler"
	"delivery-booking/internal/handler/api"
	"delivery-booking/internal/handler/middleware"
	"delivery-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewDeliveryHandler,
		func(cfg config.Config) *middleware.RateLimiter {
			return middleware.NewRateLimiter(cfg.RateLimit)
		},
	),
	fx.Invoke(handler.NewRouter),
)
