package auth

import (
	"context"

	"github.com/brizzai/map-signin/internal/auth/providers"
	"github.com/brizzai/map-signin/internal/config"
	"github.com/brizzai/map-signin/internal/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func newProvider(cfg *config.Config) (providers.Provider, error) {
	p, err := providers.New(context.Background(), &cfg.OAuth)
	if err != nil {
		return nil, err
	}
	if !p.Ready() {
		logger.Warn("Sign-in disabled, no client id configured",
			zap.String("provider", p.Name()),
			zap.String("platform", string(cfg.OAuth.Platform)),
		)
	}
	return p, nil
}

func newSession(cfg *config.Config, p providers.Provider) *Session {
	return NewSession(&cfg.OAuth, p, OpenBrowser)
}

// Module provides the identity provider and the sign-in session
var Module = fx.Module("auth",
	fx.Provide(
		newProvider,
		newSession,
	),
)
