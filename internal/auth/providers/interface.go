package providers

import (
	"context"
	"fmt"

	"github.com/brizzai/map-signin/internal/config"
	"golang.org/x/oauth2"
)

// Provider defines the interface that all OAuth providers must implement
type Provider interface {
	// Name identifies the provider in logs
	Name() string

	// Ready reports whether the provider has what it needs to start a request
	Ready() bool

	// GetAuthURL returns the authorization URL for the provider
	GetAuthURL(state, codeChallenge, codeChallengeMethod, redirectURI string) string

	// ExchangeCode exchanges an authorization code for tokens
	ExchangeCode(ctx context.Context, code, codeVerifier, redirectURI string) (*oauth2.Token, error)

	// UserInfoURL is the endpoint that returns the signed-in user's profile
	UserInfoURL() string
}

// New builds the provider named by cfg.Provider
func New(ctx context.Context, cfg *config.OAuthConfig) (Provider, error) {
	switch cfg.Provider {
	case "google", "":
		return NewGoogleProvider(cfg), nil
	case "github":
		return NewGitHubProvider(cfg), nil
	case "oidc":
		return NewOIDCProvider(ctx, cfg)
	default:
		return nil, fmt.Errorf("%w: %s", config.ErrUnsupportedProvider, cfg.Provider)
	}
}

// oauth2Provider holds what every provider shares: the client config and
// the user info endpoint
type oauth2Provider struct {
	name         string
	oauth2Config *oauth2.Config
	userInfoURL  string
}

func newOAuth2Provider(name string, cfg *config.OAuthConfig, endpoint oauth2.Endpoint, scopes []string, userInfoURL string) oauth2Provider {
	if cfg.AuthURL != "" {
		endpoint.AuthURL = cfg.AuthURL
	}
	if cfg.TokenURL != "" {
		endpoint.TokenURL = cfg.TokenURL
	}
	if len(cfg.Scopes) > 0 {
		scopes = cfg.Scopes
	}
	return oauth2Provider{
		name: name,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.ClientID(),
			ClientSecret: cfg.ClientSecret,
			Endpoint:     endpoint,
			Scopes:       scopes,
		},
		userInfoURL: userInfoURL,
	}
}

func (p oauth2Provider) Name() string {
	return p.name
}

func (p oauth2Provider) Ready() bool {
	return p.oauth2Config.ClientID != ""
}

func (p oauth2Provider) UserInfoURL() string {
	return p.userInfoURL
}

func (p oauth2Provider) GetAuthURL(state, codeChallenge, codeChallengeMethod, redirectURI string) string {
	opts := []oauth2.AuthCodeOption{}
	if redirectURI != "" {
		opts = append(opts, oauth2.SetAuthURLParam("redirect_uri", redirectURI))
	}
	if codeChallenge != "" {
		opts = append(opts,
			oauth2.SetAuthURLParam("code_challenge", codeChallenge),
			oauth2.SetAuthURLParam("code_challenge_method", codeChallengeMethod),
		)
	}
	return p.oauth2Config.AuthCodeURL(state, opts...)
}

func (p oauth2Provider) ExchangeCode(ctx context.Context, code, codeVerifier, redirectURI string) (*oauth2.Token, error) {
	cfg := *p.oauth2Config // copy
	if redirectURI != "" {
		cfg.RedirectURL = redirectURI
	}

	opts := []oauth2.AuthCodeOption{}
	if codeVerifier != "" {
		opts = append(opts, oauth2.VerifierOption(codeVerifier))
	}

	return cfg.Exchange(ctx, code, opts...)
}
