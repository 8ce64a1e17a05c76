package bootstrap

import (
	"appointment-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	StoreModule,
	NotifyModule,
	components.UseCaseModule,
	components.HandlerModule,
)
