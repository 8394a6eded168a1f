package profile

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/brizzai/map-signin/internal/apperror"
	"github.com/brizzai/map-signin/internal/auth/constants"
	"github.com/brizzai/map-signin/internal/auth/providers"
	"github.com/brizzai/map-signin/internal/config"
	"github.com/brizzai/map-signin/internal/models"
	"github.com/brizzai/map-signin/internal/store"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFetcher(t *testing.T, url string, timeout time.Duration) (*Fetcher, *store.ProfileStore) {
	t.Helper()
	profiles := store.NewProfileStore(store.NewMemoryStore())
	f := NewFetcher(FetcherParams{
		Config: &config.Config{
			Profile: config.ProfileConfig{UserInfoURL: url, Timeout: timeout},
		},
		Profiles: profiles,
	})
	return f, profiles
}

func TestFetchAndStore(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "Bearer T", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"1","name":"Alice"}`))
	}))
	defer srv.Close()

	f, profiles := newFetcher(t, srv.URL, 0)

	got, err := f.FetchAndStore(context.Background(), "T")
	require.NoError(t, err)
	want := models.UserProfile{"id": "1", "name": "Alice"}
	assert.Empty(t, cmp.Diff(want, got))

	stored, err := profiles.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(want, stored))
}

func TestFetchAndStore_StoresBodyUnchanged(t *testing.T) {
	body := `{"sub":"x","id":98765432109876543210,"name":"Bob"}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	kv := store.NewMemoryStore()
	f := NewFetcher(FetcherParams{
		Config:   &config.Config{Profile: config.ProfileConfig{UserInfoURL: srv.URL}},
		Profiles: store.NewProfileStore(kv),
	})

	got, err := f.FetchAndStore(context.Background(), "T")
	require.NoError(t, err)
	assert.Equal(t, "98765432109876543210", got.ID())

	raw, ok, err := kv.Get(context.Background(), store.UserKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, body, raw)
}

func TestFetch_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
	}{
		{
			name: "unauthorized",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"invalid_token"}`))
			},
			wantErr: apperror.ErrNetwork,
		},
		{
			name: "not json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`<html>oops</html>`))
			},
			wantErr: apperror.ErrParse,
		},
		{
			name: "json array",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`[{"id":"1"}]`))
			},
			wantErr: apperror.ErrParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			f, profiles := newFetcher(t, srv.URL, 0)
			_, err := f.FetchAndStore(context.Background(), "T")
			assert.ErrorIs(t, err, tt.wantErr)

			stored, err := profiles.Load(context.Background())
			require.NoError(t, err)
			assert.Nil(t, stored, "nothing is stored on failure")
		})
	}
}

func TestFetch_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	f, _ := newFetcher(t, url, 0)
	_, err := f.Fetch(context.Background(), "T")
	assert.ErrorIs(t, err, apperror.ErrNetwork)
}

func TestFetch_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	f, _ := newFetcher(t, srv.URL, 50*time.Millisecond)
	_, err := f.Fetch(context.Background(), "T")
	assert.ErrorIs(t, err, apperror.ErrNetwork)
}

func TestFetch_EmptyToken(t *testing.T) {
	f, _ := newFetcher(t, "http://127.0.0.1:1", 0)
	_, err := f.Fetch(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyToken)
	assert.ErrorIs(t, err, apperror.ErrAuthFailed)
}

func TestNewFetcher_ProviderDefaultURL(t *testing.T) {
	p := providers.NewGoogleProvider(&config.OAuthConfig{})
	f := NewFetcher(FetcherParams{Config: &config.Config{}, Provider: p})
	assert.Equal(t, constants.GoogleUserInfoURL, f.UserInfoURL())

	f = NewFetcher(FetcherParams{
		Config:   &config.Config{Profile: config.ProfileConfig{UserInfoURL: "http://override"}},
		Provider: p,
	})
	assert.Equal(t, "http://override", f.UserInfoURL())
}
