package screen

import (
	"errors"
	"testing"

	authmodels "github.com/brizzai/map-signin/internal/auth/models"
	"github.com/brizzai/map-signin/internal/catalog"
	"github.com/brizzai/map-signin/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewState(t *testing.T) {
	s := NewState(catalog.Default())
	assert.Equal(t, LoggedOut, s.Phase)
	assert.Equal(t, catalog.Default().First(), s.Focused)
	assert.Nil(t, s.Profile)
	assert.False(t, s.LoggedIn())
}

func TestLocalProfileLoaded(t *testing.T) {
	s := NewState(catalog.Default())
	assert.Equal(t, s, s.LocalProfileLoaded(0, nil))

	s = s.LocalProfileLoaded(0, models.UserProfile{"id": "1"})
	assert.Equal(t, MapClosed, s.Phase)
	assert.Equal(t, "1", s.Profile.ID())

	// a second load does not replace the shown profile
	s = s.OpenMap().LocalProfileLoaded(0, models.UserProfile{"id": "2"})
	assert.Equal(t, MapOpen, s.Phase)
	assert.Equal(t, "1", s.Profile.ID())
}

func TestLocalProfileLoaded_Late(t *testing.T) {
	p := models.UserProfile{"id": "1"}

	// the store was removed before the read came back
	removed := NewState(catalog.Default()).LocalStoreRemoved()
	assert.Equal(t, removed, removed.LocalProfileLoaded(0, p))

	// a sign-in started before the read came back
	signingIn := NewState(catalog.Default()).BeginSignIn()
	assert.Equal(t, signingIn, signingIn.LocalProfileLoaded(0, p))

	// the same sign-in was given up; the attempt has still moved on
	abandoned := signingIn.AuthFinished(signingIn.Attempt, authmodels.Cancelled(nil))
	require.Equal(t, LoggedOut, abandoned.Phase)
	assert.Equal(t, abandoned, abandoned.LocalProfileLoaded(0, p))
}

func TestSignInFlow(t *testing.T) {
	s := NewState(catalog.Default()).BeginSignIn()
	assert.Equal(t, Authenticating, s.Phase)
	attempt := s.Attempt

	s = s.AuthFinished(attempt, authmodels.Success("T"))
	assert.Equal(t, Authenticating, s.Phase)

	s = s.ProfileFetched(attempt, models.UserProfile{"id": "1", "name": "Alice"}, nil)
	assert.Equal(t, MapClosed, s.Phase)
	assert.Equal(t, "Alice", s.Profile.Name())
}

func TestAuthFinished_NonSuccess(t *testing.T) {
	for _, res := range []authmodels.AuthResult{
		authmodels.Failure(errors.New("boom")),
		authmodels.Cancelled(nil),
		authmodels.Pending(),
		{Status: authmodels.AuthSuccess}, // success without a token
	} {
		s := NewState(catalog.Default()).BeginSignIn()
		s = s.AuthFinished(s.Attempt, res)
		assert.Equal(t, LoggedOut, s.Phase, res.Status.String())
	}
}

func TestProfileFetched_FailureStaysLoggedOut(t *testing.T) {
	s := NewState(catalog.Default()).BeginSignIn()
	s = s.AuthFinished(s.Attempt, authmodels.Success("T"))
	s = s.ProfileFetched(s.Attempt, nil, errors.New("network down"))
	assert.Equal(t, LoggedOut, s.Phase)
	assert.Nil(t, s.Profile)
}

func TestBeginSignIn_OnlyFromLoggedOut(t *testing.T) {
	s := NewState(catalog.Default()).BeginSignIn()
	again := s.BeginSignIn()
	assert.Equal(t, s, again)

	loggedIn := NewState(catalog.Default()).LocalProfileLoaded(0, models.UserProfile{"id": "1"})
	assert.Equal(t, loggedIn, loggedIn.BeginSignIn())
}

func TestStaleCompletionsAreDropped(t *testing.T) {
	s := NewState(catalog.Default()).BeginSignIn()
	first := s.Attempt

	// the user removes the local store and signs in again
	s = s.LocalStoreRemoved().BeginSignIn()
	second := s.Attempt
	assert.NotEqual(t, first, second)

	// the first attempt's profile arrives late
	s = s.ProfileFetched(first, models.UserProfile{"id": "old"}, nil)
	assert.Equal(t, Authenticating, s.Phase)
	assert.Nil(t, s.Profile)

	s = s.AuthFinished(first, authmodels.Failure(errors.New("late")))
	assert.Equal(t, Authenticating, s.Phase)

	s = s.AuthFinished(second, authmodels.Success("T2"))
	s = s.ProfileFetched(second, models.UserProfile{"id": "new"}, nil)
	assert.Equal(t, MapClosed, s.Phase)
	assert.Equal(t, "new", s.Profile.ID())
}

func TestMapOpenAndClose(t *testing.T) {
	c := catalog.Default()
	s := NewState(c)

	// not logged in: the map cannot open
	assert.Equal(t, LoggedOut, s.OpenMap().Phase)

	s = s.LocalProfileLoaded(0, models.UserProfile{"id": "1"})
	s = s.Viewed(ViewabilityEvent{Changed: []ViewToken{{Index: 4, Item: c.At(4), IsViewable: true}}})
	focused := s.Focused

	s = s.OpenMap()
	assert.Equal(t, MapOpen, s.Phase)
	s = s.PressMap()
	assert.Equal(t, MapClosed, s.Phase)
	assert.Equal(t, focused, s.Focused)

	// pressing a closed map does nothing
	assert.Equal(t, s, s.PressMap())
}

func TestLocalStoreRemoved(t *testing.T) {
	c := catalog.Default()
	s := NewState(c).LocalProfileLoaded(0, models.UserProfile{"id": "1"}).OpenMap()
	s = s.Viewed(ViewabilityEvent{Changed: []ViewToken{{Index: 2, Item: c.At(2), IsViewable: true}}})

	s = s.LocalStoreRemoved()
	assert.Equal(t, LoggedOut, s.Phase)
	assert.Nil(t, s.Profile)
	assert.Equal(t, c.At(2), s.Focused)
}

func TestRegion(t *testing.T) {
	c := catalog.Default()
	s := NewState(c)
	r := s.Region(0.3, 0.3)
	assert.Equal(t, c.First().Coordinate(), r.Center)
	assert.Equal(t, 0.3, r.LatitudeDelta)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "logged_out", LoggedOut.String())
	assert.Equal(t, "authenticating", Authenticating.String())
	assert.Equal(t, "logged_in_map_closed", MapClosed.String())
	assert.Equal(t, "logged_in_map_open", MapOpen.String())
	assert.Equal(t, "unknown", Phase(99).String())
}
