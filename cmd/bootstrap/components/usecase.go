package components

import (
	"delivery-booking/internal/pkg/clock"
	"delivery-booking/internal/pkg/config"
	"delivery-booking/internal/usecase/commands"
	"delivery-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) commands.BookingOptions {
		return commands.BookingOptions{StrictMethod: cfg.Booking.StrictMethod}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewSlotCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewDeliveryQueries,
	),
)
