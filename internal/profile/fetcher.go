// Package profile loads the signed-in user's profile from the identity
// provider and caches it in the local store.
package profile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/brizzai/map-signin/internal/apperror"
	"github.com/brizzai/map-signin/internal/auth/constants"
	"github.com/brizzai/map-signin/internal/auth/providers"
	"github.com/brizzai/map-signin/internal/config"
	"github.com/brizzai/map-signin/internal/logger"
	"github.com/brizzai/map-signin/internal/models"
	"github.com/brizzai/map-signin/internal/store"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// maxProfileSize caps how much of the response body is read
const maxProfileSize = 1 << 20

// ErrEmptyToken is returned when there is no access token to send
var ErrEmptyToken = errors.New("access token is empty")

// Fetcher calls the user info endpoint and stores the result
type Fetcher struct {
	client      *http.Client
	userInfoURL string
	profiles    *store.ProfileStore
}

type FetcherParams struct {
	fx.In

	Config   *config.Config
	Provider providers.Provider
	Profiles *store.ProfileStore
}

// NewFetcher creates a Fetcher. The configured userinfo URL wins over the
// provider's default.
func NewFetcher(params FetcherParams) *Fetcher {
	url := params.Config.Profile.UserInfoURL
	if url == "" && params.Provider != nil {
		url = params.Provider.UserInfoURL()
	}
	return &Fetcher{
		client: &http.Client{
			Timeout: params.Config.Profile.Timeout,
		},
		userInfoURL: url,
		profiles:    params.Profiles,
	}
}

// UserInfoURL returns the endpoint the fetcher calls
func (f *Fetcher) UserInfoURL() string {
	return f.userInfoURL
}

// Fetch requests the profile with the bearer token and parses it. The body
// must be a JSON object; nothing else about it is checked.
func (f *Fetcher) Fetch(ctx context.Context, accessToken string) (models.UserProfile, error) {
	profile, _, err := f.fetch(ctx, accessToken)
	return profile, err
}

// fetch returns the parsed profile together with the body it came from
func (f *Fetcher) fetch(ctx context.Context, accessToken string) (models.UserProfile, []byte, error) {
	if accessToken == "" {
		return nil, nil, apperror.AuthFailed("fetch profile", ErrEmptyToken)
	}

	if f.client.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.client.Timeout)
		defer cancel()
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, f.client)
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: accessToken,
		TokenType:   constants.TokenType,
	}))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.userInfoURL, nil)
	if err != nil {
		return nil, nil, apperror.Network("fetch profile", fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, apperror.Network("fetch profile", fmt.Errorf("request failed: %w", err))
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Error("Failed to close response body", zap.Error(err))
		}
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxProfileSize))
	if err != nil {
		return nil, nil, apperror.Network("fetch profile", fmt.Errorf("failed to read response body: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		return nil, nil, apperror.Network("fetch profile", fmt.Errorf("user info request failed with status %d", resp.StatusCode))
	}

	profile, err := models.ParseUserProfile(body)
	if err != nil {
		return nil, nil, apperror.Parse("fetch profile", err)
	}
	return profile, body, nil
}

// FetchAndStore fetches the profile and writes the response body to the
// local store unchanged. Nothing is stored when the fetch fails.
func (f *Fetcher) FetchAndStore(ctx context.Context, accessToken string) (models.UserProfile, error) {
	profile, body, err := f.fetch(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	if err := f.profiles.SaveRaw(ctx, body); err != nil {
		return nil, err
	}
	logger.Info("Stored user profile", zap.String("user", profile.DisplayName()))
	return profile, nil
}
