package screen

import (
	"github.com/brizzai/map-signin/internal/auth"
	"github.com/brizzai/map-signin/internal/profile"
	"github.com/brizzai/map-signin/internal/store"
	"go.uber.org/fx"
)

// Module provides the screen controller, binding it to the concrete
// session, fetcher and store
var Module = fx.Module("screen",
	fx.Provide(
		func(s *auth.Session) Authorizer { return s },
		func(f *profile.Fetcher) ProfileFetcher { return f },
		func(p *store.ProfileStore) ProfileRepository { return p },
		NewController,
	),
)
