package profile

import "go.uber.org/fx"

// Module provides the profile fetcher
var Module = fx.Module("profile",
	fx.Provide(NewFetcher),
)
