package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/brizzai/map-signin/internal/auth/constants"
	"github.com/brizzai/map-signin/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func oauthConfig(provider string) *config.OAuthConfig {
	return &config.OAuthConfig{
		Provider: provider,
		Platform: config.PlatformWeb,
		ClientIDs: config.ClientIDs{
			Android: "android-client",
			IOS:     "ios-client",
			Web:     "web-client",
		},
	}
}

func TestNew(t *testing.T) {
	p, err := New(context.Background(), oauthConfig("google"))
	require.NoError(t, err)
	assert.Equal(t, "google", p.Name())
	assert.Equal(t, constants.GoogleUserInfoURL, p.UserInfoURL())

	p, err = New(context.Background(), oauthConfig("github"))
	require.NoError(t, err)
	assert.Equal(t, "github", p.Name())
	assert.Equal(t, constants.GitHubUserInfoURL, p.UserInfoURL())

	_, err = New(context.Background(), oauthConfig("myspace"))
	assert.ErrorIs(t, err, config.ErrUnsupportedProvider)
}

func TestReady(t *testing.T) {
	cfg := oauthConfig("google")
	assert.True(t, NewGoogleProvider(cfg).Ready())

	cfg.Platform = config.PlatformIOS
	cfg.ClientIDs.IOS = ""
	assert.False(t, NewGoogleProvider(cfg).Ready())
}

func TestGetAuthURL(t *testing.T) {
	cfg := oauthConfig("google")
	cfg.Platform = config.PlatformAndroid
	p := NewGoogleProvider(cfg)

	raw := p.GetAuthURL("state-1", "challenge", constants.PKCEMethod, "http://127.0.0.1:5000/oauth/callback")
	u, err := url.Parse(raw)
	require.NoError(t, err)

	q := u.Query()
	assert.Equal(t, "accounts.google.com", u.Host)
	assert.Equal(t, "android-client", q.Get("client_id"))
	assert.Equal(t, "state-1", q.Get("state"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "challenge", q.Get("code_challenge"))
	assert.Equal(t, "S256", q.Get("code_challenge_method"))
	assert.Equal(t, "http://127.0.0.1:5000/oauth/callback", q.Get("redirect_uri"))
	assert.Equal(t, "openid profile email", q.Get("scope"))
}

func TestGetAuthURL_WithoutPKCE(t *testing.T) {
	p := NewGitHubProvider(oauthConfig("github"))
	u, err := url.Parse(p.GetAuthURL("s", "", "", ""))
	require.NoError(t, err)
	assert.Empty(t, u.Query().Get("code_challenge"))
	assert.Empty(t, u.Query().Get("redirect_uri"))
	assert.Equal(t, "read:user user:email", u.Query().Get("scope"))
}

func TestExchangeCode(t *testing.T) {
	var form url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		form = r.PostForm
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "T",
			"token_type":   "Bearer",
			"expires_in":   3600,
		})
	}))
	defer srv.Close()

	cfg := oauthConfig("google")
	cfg.TokenURL = srv.URL + "/token"
	cfg.Scopes = []string{"email"}
	p := NewGoogleProvider(cfg)

	token, err := p.ExchangeCode(context.Background(), "the-code", "the-verifier", "http://127.0.0.1:1/oauth/callback")
	require.NoError(t, err)
	assert.Equal(t, "T", token.AccessToken)

	assert.Equal(t, "authorization_code", form.Get("grant_type"))
	assert.Equal(t, "the-code", form.Get("code"))
	assert.Equal(t, "the-verifier", form.Get("code_verifier"))
	assert.Equal(t, "http://127.0.0.1:1/oauth/callback", form.Get("redirect_uri"))
}

func TestExchangeCode_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
	}))
	defer srv.Close()

	cfg := oauthConfig("github")
	cfg.TokenURL = srv.URL
	_, err := NewGitHubProvider(cfg).ExchangeCode(context.Background(), "bad", "", "")
	assert.Error(t, err)
}

func newDiscoveryServer(t *testing.T, withUserInfo bool) *httptest.Server {
	t.Helper()
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/.well-known/openid-configuration" {
			http.NotFound(w, r)
			return
		}
		doc := map[string]interface{}{
			"issuer":                 srv.URL,
			"authorization_endpoint": srv.URL + "/authorize",
			"token_endpoint":         srv.URL + "/token",
			"jwks_uri":               srv.URL + "/keys",
		}
		if withUserInfo {
			doc["userinfo_endpoint"] = srv.URL + "/userinfo"
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(doc)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestOIDCProvider(t *testing.T) {
	srv := newDiscoveryServer(t, true)
	cfg := oauthConfig("oidc")
	cfg.IssuerURL = srv.URL

	p, err := New(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "oidc", p.Name())
	assert.Equal(t, srv.URL+"/userinfo", p.UserInfoURL())
	assert.Equal(t, srv.URL, p.(*OIDCProvider).Issuer())

	u, err := url.Parse(p.GetAuthURL("s", "c", "S256", ""))
	require.NoError(t, err)
	assert.Equal(t, "/authorize", u.Path)
	assert.Equal(t, "openid profile email", u.Query().Get("scope"))
}

func TestOIDCProvider_NoUserInfo(t *testing.T) {
	srv := newDiscoveryServer(t, false)
	cfg := oauthConfig("oidc")
	cfg.IssuerURL = srv.URL

	_, err := NewOIDCProvider(context.Background(), cfg)
	assert.Error(t, err)
}
