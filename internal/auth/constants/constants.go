package constants

const (
	// DefaultCallbackHost is the loopback host the redirect listener binds to
	DefaultCallbackHost = "127.0.0.1"

	// CallbackPath receives the authorization response
	CallbackPath = "/oauth/callback"

	// TokenType for Bearer authentication
	TokenType = "Bearer"

	// PKCEMethod is the only code challenge method used
	PKCEMethod = "S256"
)

// User info endpoints queried with the access token
const (
	GoogleUserInfoURL = "https://www.googleapis.com/userinfo/v2/me"
	GitHubUserInfoURL = "https://api.github.com/user"
)

// Default scopes per provider
var (
	GoogleScopes = []string{"openid", "profile", "email"}
	GitHubScopes = []string{"read:user", "user:email"}
)
