package components

import (
	"appointment-booking/internal/domain/booking"
	"appointment-booking/internal/pkg/clock"
	"appointment-booking/internal/pkg/config"
	"appointment-booking/internal/usecase/commands"
	"appointment-booking/internal/usecase/queries"
	"appointment-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		NewGrid,
		NewBookingCommands,
		queries.NewBookingQueries,
	),
)

func NewGrid(cfg config.Config) (booking.Grid, error) {
	return booking.NewGrid(cfg.Schedule.OpenHour, cfg.Schedule.CloseHour, cfg.Schedule.SlotMinutes)
}

func NewBookingCommands(
	store shared.BookingStore,
	notifier shared.Notifier,
	clk clock.Clock,
	grid booking.Grid,
	cfg config.Config,
) commands.BookingCommands {
	return commands.NewBookingCommands(store, notifier, clk, grid, cfg.Schedule.DefaultLabel)
}
