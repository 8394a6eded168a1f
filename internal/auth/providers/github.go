package providers

import (
	"github.com/brizzai/map-signin/internal/auth/constants"
	"github.com/brizzai/map-signin/internal/config"
	"golang.org/x/oauth2/github"
)

type GitHubProvider struct {
	oauth2Provider
}

func NewGitHubProvider(cfg *config.OAuthConfig) *GitHubProvider {
	return &GitHubProvider{
		oauth2Provider: newOAuth2Provider("github", cfg, github.Endpoint, constants.GitHubScopes, constants.GitHubUserInfoURL),
	}
}
