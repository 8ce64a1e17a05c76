package bootstrap

import (
	"context"
	"log/slog"

	"appointment-booking/internal/infra/notify"
	"appointment-booking/internal/pkg/config"
	"appointment-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		NewDispatcher,
		func(d *notify.Dispatcher) shared.Notifier { return d },
	),
)

// NewDispatcher starts the notification worker with the application and
// drains it on stop.
func NewDispatcher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *notify.Dispatcher {
	d := notify.NewDispatcher(notify.NewLogSink(logger), cfg.Notify.QueueSize)

	workerCtx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			d.Start(workerCtx)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			defer cancel()
			return d.Stop(ctx)
		},
	})
	return d
}
