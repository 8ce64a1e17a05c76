package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"appointment-booking/internal/infra/db"
	"appointment-booking/internal/infra/memstore"
	"appointment-booking/internal/infra/mongostore"
	"appointment-booking/internal/infra/pgstore"
	"appointment-booking/internal/pkg/config"
	"appointment-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewBookingStore,
	),
)

// NewBookingStore selects the backend named by STORE_DRIVER. Connections are
// opened and schemas ensured here; they are closed on application stop.
func NewBookingStore(lc fx.Lifecycle, cfg config.Config) (shared.BookingStore, error) {
	ctx := context.Background()

	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		pool, cleanup, err := db.Connect(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		appendCleanup(lc, cleanup)

		store := pgstore.NewBookingStore(pgstore.NewQueries(), pool)
		if err := store.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		slog.Info("booking store ready", "driver", cfg.Store.Driver, "host", cfg.DB.Host, "database", cfg.DB.DBName)
		return store, nil

	case config.StoreDriverMongo:
		database, cleanup, err := db.ConnectMongo(ctx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		appendCleanup(lc, cleanup)

		store := mongostore.NewBookingStore(database)
		indexCtx, cancel := context.WithTimeout(ctx, cfg.Mongo.Timeout)
		defer cancel()
		if err := store.EnsureIndexes(indexCtx); err != nil {
			return nil, err
		}
		slog.Info("booking store ready", "driver", cfg.Store.Driver, "database", cfg.Mongo.Database)
		return store, nil

	case config.StoreDriverMemory:
		slog.Info("booking store ready", "driver", cfg.Store.Driver)
		return memstore.NewBookingStore(), nil
	}

	return nil, fmt.Errorf("unsupported STORE_DRIVER %q", cfg.Store.Driver)
}

func appendCleanup(lc fx.Lifecycle, cleanup func()) {
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})
}
