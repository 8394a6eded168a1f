// Package screen models the sign-in screen as an explicit state value
// changed only by the transition methods below, and runs the side effects
// (local profile, authorization, profile fetch) that feed those transitions.
package screen

import (
	authmodels "github.com/brizzai/map-signin/internal/auth/models"
	"github.com/brizzai/map-signin/internal/catalog"
	"github.com/brizzai/map-signin/internal/models"
)

// Phase is the visible state of the screen
type Phase int

const (
	LoggedOut Phase = iota
	Authenticating
	MapClosed
	MapOpen
)

func (p Phase) String() string {
	switch p {
	case LoggedOut:
		return "logged_out"
	case Authenticating:
		return "authenticating"
	case MapClosed:
		return "logged_in_map_closed"
	case MapOpen:
		return "logged_in_map_open"
	default:
		return "unknown"
	}
}

// State is everything the screen renders from.
// Attempt numbers sign-in attempts so late completions can be recognised.
type State struct {
	Phase   Phase
	Profile models.UserProfile
	Focused catalog.LocationPoint
	Attempt uint64
}

// NewState returns the logged-out state focused on the first catalog entry
func NewState(c catalog.Catalog) State {
	return State{Phase: LoggedOut, Focused: c.First()}
}

// LoggedIn reports whether a profile is being shown
func (s State) LoggedIn() bool {
	return s.Phase == MapClosed || s.Phase == MapOpen
}

// LocalProfileLoaded applies the startup read of the local store, tagged
// with the attempt it was requested in. A stored profile signs the user in
// directly. The result is dropped once the user has signed in, removed the
// store or started a sign-in since; nil changes nothing.
func (s State) LocalProfileLoaded(attempt uint64, p models.UserProfile) State {
	if p == nil || attempt != s.Attempt || s.Phase != LoggedOut {
		return s
	}
	s.Profile = p
	s.Phase = MapClosed
	return s
}

// BeginSignIn starts a new authorization attempt from the logged-out page
func (s State) BeginSignIn() State {
	if s.Phase != LoggedOut {
		return s
	}
	s.Attempt++
	s.Phase = Authenticating
	return s
}

// AuthFinished applies an authorization result. Anything but success
// returns to the logged-out page; success keeps waiting for the profile.
func (s State) AuthFinished(attempt uint64, res authmodels.AuthResult) State {
	if s.stale(attempt) {
		return s
	}
	if !res.OK() {
		s.Phase = LoggedOut
	}
	return s
}

// ProfileFetched applies the outcome of fetching and storing the profile.
// A failure is not reported; the screen goes back to logged out.
func (s State) ProfileFetched(attempt uint64, p models.UserProfile, err error) State {
	if s.stale(attempt) {
		return s
	}
	if err != nil || p == nil {
		s.Phase = LoggedOut
		return s
	}
	s.Profile = p
	s.Phase = MapClosed
	return s
}

// OpenMap shows the map
func (s State) OpenMap() State {
	if s.Phase == MapClosed {
		s.Phase = MapOpen
	}
	return s
}

// PressMap handles a press on the map background, which closes it
func (s State) PressMap() State {
	if s.Phase == MapOpen {
		s.Phase = MapClosed
	}
	return s
}

// LocalStoreRemoved signs the user out once the stored profile is gone.
// The attempt counter moves on so an in-flight sign-in cannot land afterwards.
func (s State) LocalStoreRemoved() State {
	s.Phase = LoggedOut
	s.Profile = nil
	s.Attempt++
	return s
}

// Viewed applies a carousel viewability event to the focused location
func (s State) Viewed(ev ViewabilityEvent) State {
	s.Focused = Synchronize(s.Focused, ev)
	return s
}

// Region is the map region for the focused location
func (s State) Region(latDelta, lonDelta float64) catalog.Region {
	return catalog.RegionFor(s.Focused, latDelta, lonDelta)
}

func (s State) stale(attempt uint64) bool {
	return attempt != s.Attempt || s.Phase != Authenticating
}
