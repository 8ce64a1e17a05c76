package bootstrap

import (
	"log/slog"

	"appointment-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logConfig),
)

// logConfig records the settings that change behaviour; credentials are left out.
func logConfig(cfg config.Config, logger *slog.Logger) {
	logger.Info("configuration loaded",
		"port", cfg.Server.Port,
		"store_driver", cfg.Store.Driver,
		"open_hour", cfg.Schedule.OpenHour,
		"close_hour", cfg.Schedule.CloseHour,
		"slot_minutes", cfg.Schedule.SlotMinutes,
		"rate_limit_rps", cfg.RateLimit.RPS,
		"notify_queue_size", cfg.Notify.QueueSize,
	)
}
