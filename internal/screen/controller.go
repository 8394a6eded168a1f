package screen

import (
	"context"

	authmodels "github.com/brizzai/map-signin/internal/auth/models"
	"github.com/brizzai/map-signin/internal/catalog"
	"github.com/brizzai/map-signin/internal/config"
	"github.com/brizzai/map-signin/internal/logger"
	"github.com/brizzai/map-signin/internal/models"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Authorizer runs one interactive authorization
type Authorizer interface {
	Ready() bool
	Authorize(ctx context.Context) authmodels.AuthResult
}

// ProfileFetcher loads the profile for a token and stores it locally
type ProfileFetcher interface {
	FetchAndStore(ctx context.Context, accessToken string) (models.UserProfile, error)
}

// ProfileRepository is the local profile store
type ProfileRepository interface {
	Load(ctx context.Context) (models.UserProfile, error)
	Clear(ctx context.Context) error
}

// Controller performs the screen's side effects. Every failure is logged
// and otherwise dropped; the caller's state stays where it was.
type Controller struct {
	catalog  catalog.Catalog
	auth     Authorizer
	fetcher  ProfileFetcher
	profiles ProfileRepository
	latDelta float64
	lonDelta float64
}

type ControllerParams struct {
	fx.In

	Config   *config.Config
	Auth     Authorizer
	Fetcher  ProfileFetcher
	Profiles ProfileRepository
}

func NewController(params ControllerParams) *Controller {
	return &Controller{
		catalog:  catalog.Default(),
		auth:     params.Auth,
		fetcher:  params.Fetcher,
		profiles: params.Profiles,
		latDelta: params.Config.Map.LatitudeDelta,
		lonDelta: params.Config.Map.LongitudeDelta,
	}
}

// Catalog returns the locations shown on the map
func (c *Controller) Catalog() catalog.Catalog {
	return c.catalog
}

// Initial returns the state before anything is loaded
func (c *Controller) Initial() State {
	return NewState(c.catalog)
}

// Region returns the map region for s
func (c *Controller) Region(s State) catalog.Region {
	return s.Region(c.latDelta, c.lonDelta)
}

// CanSignIn reports whether the identity provider is configured
func (c *Controller) CanSignIn() bool {
	return c.auth != nil && c.auth.Ready()
}

// LoadLocal returns the stored profile, or nil if there is none or it
// cannot be read
func (c *Controller) LoadLocal(ctx context.Context) models.UserProfile {
	p, err := c.profiles.Load(ctx)
	if err != nil {
		logger.Warn("Failed to read local profile", zap.Error(err))
		return nil
	}
	if p != nil {
		logger.Info("Loaded profile from local store")
	}
	return p
}

// Authorize runs the identity provider session
func (c *Controller) Authorize(ctx context.Context) authmodels.AuthResult {
	res := c.auth.Authorize(ctx)
	if !res.OK() {
		logger.Info("Authorization did not succeed",
			zap.Stringer("status", res.Status),
			zap.Error(res.Err),
		)
	}
	return res
}

// FetchProfile fetches and stores the profile for accessToken
func (c *Controller) FetchProfile(ctx context.Context, accessToken string) (models.UserProfile, error) {
	p, err := c.fetcher.FetchAndStore(ctx, accessToken)
	if err != nil {
		logger.Warn("Failed to fetch user profile", zap.Error(err))
		return nil, err
	}
	return p, nil
}

// RemoveLocal deletes the stored profile
func (c *Controller) RemoveLocal(ctx context.Context) error {
	if err := c.profiles.Clear(ctx); err != nil {
		logger.Warn("Failed to remove local profile", zap.Error(err))
		return err
	}
	logger.Info("Removed local profile")
	return nil
}
