package providers

import (
	"github.com/brizzai/map-signin/internal/auth/constants"
	"github.com/brizzai/map-signin/internal/config"
	"golang.org/x/oauth2/google"
)

type GoogleProvider struct {
	oauth2Provider
}

func NewGoogleProvider(cfg *config.OAuthConfig) *GoogleProvider {
	return &GoogleProvider{
		oauth2Provider: newOAuth2Provider("google", cfg, google.Endpoint, constants.GoogleScopes, constants.GoogleUserInfoURL),
	}
}
