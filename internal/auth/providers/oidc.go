package providers

import (
	"context"
	"fmt"

	"github.com/brizzai/map-signin/internal/config"
	"github.com/coreos/go-oidc/v3/oidc"
)

// OIDCProvider works with any issuer that publishes a discovery document
type OIDCProvider struct {
	oauth2Provider
	issuer string
}

// NewOIDCProvider fetches the issuer's discovery document to find its endpoints
func NewOIDCProvider(ctx context.Context, cfg *config.OAuthConfig) (*OIDCProvider, error) {
	provider, err := oidc.NewProvider(ctx, cfg.IssuerURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create OIDC provider: %w", err)
	}

	var discovery struct {
		UserInfoURL string `json:"userinfo_endpoint"`
	}
	if err := provider.Claims(&discovery); err != nil {
		return nil, fmt.Errorf("failed to parse discovery document: %w", err)
	}
	if discovery.UserInfoURL == "" {
		return nil, fmt.Errorf("issuer %s does not advertise a userinfo endpoint", cfg.IssuerURL)
	}

	scopes := []string{oidc.ScopeOpenID, "profile", "email"}
	return &OIDCProvider{
		oauth2Provider: newOAuth2Provider("oidc", cfg, provider.Endpoint(), scopes, discovery.UserInfoURL),
		issuer:         cfg.IssuerURL,
	}, nil
}

// Issuer returns the configured issuer URL
func (p *OIDCProvider) Issuer() string {
	return p.issuer
}
