package store

import (
	"context"

	"github.com/brizzai/map-signin/internal/config"
	"github.com/brizzai/map-signin/internal/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func newStore(lc fx.Lifecycle, cfg *config.Config) (Store, error) {
	kv, err := Open(&cfg.Store)
	if err != nil {
		return nil, err
	}
	logger.Info("Opened local profile store", zap.String("driver", string(cfg.Store.Driver)))
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return kv.Close()
		},
	})
	return kv, nil
}

// Module provides the local profile store
var Module = fx.Module("store",
	fx.Provide(
		newStore,
		NewProfileStore,
	),
)
