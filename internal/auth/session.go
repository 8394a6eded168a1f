// Package auth runs the interactive sign-in: the user approves access in a
// browser and the identity provider redirects back to a loopback listener.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/brizzai/map-signin/internal/apperror"
	"github.com/brizzai/map-signin/internal/auth/constants"
	"github.com/brizzai/map-signin/internal/auth/models"
	"github.com/brizzai/map-signin/internal/auth/providers"
	"github.com/brizzai/map-signin/internal/config"
	"github.com/brizzai/map-signin/internal/logger"
	"github.com/rs/xid"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

const (
	// shutdownTimeout bounds how long the callback listener may take to stop
	shutdownTimeout = 2 * time.Second
)

// ErrProviderNotReady means no client identifier is configured for the platform
var ErrProviderNotReady = errors.New("identity provider is not configured")

// URLOpener shows the authorization URL to the user
type URLOpener func(ctx context.Context, url string) error

// Session performs one authorization attempt per Authorize call
type Session struct {
	provider providers.Provider
	host     string
	port     int
	open     URLOpener
}

// NewSession creates a session for the given provider. A nil opener
// falls back to the system browser.
func NewSession(cfg *config.OAuthConfig, provider providers.Provider, open URLOpener) *Session {
	host := cfg.CallbackHost
	if host == "" {
		host = constants.DefaultCallbackHost
	}
	if open == nil {
		open = OpenBrowser
	}
	return &Session{
		provider: provider,
		host:     host,
		port:     cfg.CallbackPort,
		open:     open,
	}
}

// Ready reports whether Authorize can start a request
func (s *Session) Ready() bool {
	return s.provider != nil && s.provider.Ready()
}

// Authorize runs the authorization code flow with PKCE and returns the
// outcome. Cancelling ctx ends the attempt with a cancelled result.
func (s *Session) Authorize(ctx context.Context) models.AuthResult {
	if !s.Ready() {
		return models.Failure(apperror.AuthFailed("authorize", ErrProviderNotReady))
	}

	ln, err := net.Listen("tcp", net.JoinHostPort(s.host, strconv.Itoa(s.port)))
	if err != nil {
		return models.Failure(apperror.AuthFailed("listen for callback", err))
	}

	redirectURI := fmt.Sprintf("http://%s%s", ln.Addr().String(), constants.CallbackPath)
	state := xid.New().String()
	verifier := oauth2.GenerateVerifier()

	results := make(chan callbackResult, 1)
	mux := http.NewServeMux()
	mux.Handle(constants.CallbackPath, newCallbackHandler(state, results))
	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Callback listener stopped", zap.Error(err))
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Failed to stop callback listener", zap.Error(err))
		}
	}()

	authURL := s.provider.GetAuthURL(state, oauth2.S256ChallengeFromVerifier(verifier), constants.PKCEMethod, redirectURI)
	logger.Info("Starting authorization",
		zap.String("provider", s.provider.Name()),
		zap.String("redirect_uri", redirectURI),
	)
	if err := s.open(ctx, authURL); err != nil {
		// The user can still finish by visiting the URL by hand
		logger.Warn("Failed to open browser", zap.Error(err), zap.String("url", authURL))
	}

	var cb callbackResult
	select {
	case <-ctx.Done():
		return models.Cancelled(apperror.Cancelled("authorize"))
	case cb = <-results:
	}

	switch {
	case cb.cancelled:
		return models.Cancelled(apperror.New(apperror.KindAuthCancelled, "authorize", cb.err))
	case cb.err != nil:
		return models.Failure(apperror.AuthFailed("authorize", cb.err))
	}

	token, err := s.provider.ExchangeCode(ctx, cb.code, verifier, redirectURI)
	if err != nil {
		if ctx.Err() != nil {
			return models.Cancelled(apperror.Cancelled("exchange code"))
		}
		return models.Failure(apperror.AuthFailed("exchange code", err))
	}
	if token.AccessToken == "" {
		return models.Failure(apperror.AuthFailed("exchange code", errors.New("token response has no access token")))
	}

	logger.Info("Authorization succeeded", zap.String("provider", s.provider.Name()))
	return models.Success(token.AccessToken)
}
