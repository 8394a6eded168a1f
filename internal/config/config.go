package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Version information - set by GoReleaser during build
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// GetVersionInfo returns a formatted version string
func GetVersionInfo() string {
	return fmt.Sprintf("map-signin version %s, commit %s, built at %s", version, commit, date)
}

type Config struct {
	OAuth   OAuthConfig   `mapstructure:"oauth"`
	Profile ProfileConfig `mapstructure:"profile"`
	Store   StoreConfig   `mapstructure:"store"`
	Map     MapConfig     `mapstructure:"map"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Platform selects which client identifier slot is used for authorization
type Platform string

const (
	PlatformAndroid Platform = "android"
	PlatformIOS     Platform = "ios"
	PlatformWeb     Platform = "web"
)

// ClientIDs holds one client identifier per platform, mirroring how the
// identity provider registers a separate client for each of them.
type ClientIDs struct {
	Android string `mapstructure:"android"`
	IOS     string `mapstructure:"ios"`
	Web     string `mapstructure:"web"`
}

type OAuthConfig struct {
	Provider     string    `mapstructure:"provider"` // google, github, oidc
	Platform     Platform  `mapstructure:"platform"`
	ClientIDs    ClientIDs `mapstructure:"client_ids"`
	ClientSecret string    `mapstructure:"client_secret"`
	Scopes       []string  `mapstructure:"scopes"`
	CallbackHost string    `mapstructure:"callback_host"`
	CallbackPort int       `mapstructure:"callback_port"` // 0 picks a free port
	AuthURL      string    `mapstructure:"auth_url"`      // overrides the provider endpoint
	TokenURL     string    `mapstructure:"token_url"`     // overrides the provider endpoint
	IssuerURL    string    `mapstructure:"issuer_url"`    // required for oidc
}

// ClientID returns the client identifier for the configured platform
func (c *OAuthConfig) ClientID() string {
	switch c.Platform {
	case PlatformAndroid:
		return c.ClientIDs.Android
	case PlatformIOS:
		return c.ClientIDs.IOS
	default:
		return c.ClientIDs.Web
	}
}

type ProfileConfig struct {
	UserInfoURL string        `mapstructure:"userinfo_url"` // empty means the provider default
	Timeout     time.Duration `mapstructure:"timeout"`      // 0 leaves the client without a timeout
}

// StoreDriver represents the backend of the local profile store
type StoreDriver string

const (
	StoreDriverSQLite StoreDriver = "sqlite"
	StoreDriverMemory StoreDriver = "memory"
)

type StoreConfig struct {
	Driver StoreDriver `mapstructure:"driver"`
	Path   string      `mapstructure:"path"`
}

type MapConfig struct {
	LatitudeDelta  float64 `mapstructure:"latitude_delta"`
	LongitudeDelta float64 `mapstructure:"longitude_delta"`
}

type LoggingConfig struct {
	Level             string `mapstructure:"level"`
	Format            string `mapstructure:"format"`
	Color             bool   `mapstructure:"color"`
	DisableStacktrace bool   `mapstructure:"disable_stacktrace"`
	OutputPath        string `mapstructure:"output_path"`
	AppendToFile      bool   `mapstructure:"append_to_file"`
	DisableConsole    bool   `mapstructure:"disable_console"`
}

// ErrUnsupportedProvider indicates an unknown oauth.provider value
var ErrUnsupportedProvider = errors.New("unsupported oauth provider")

// InitFlags initializes command line flags (without parsing)
func InitFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "Path to a config file")
	fs.String("oauth.provider", "google", "Identity provider (google|github|oidc)")
	fs.String("oauth.platform", string(PlatformWeb), "Client identifier slot (android|ios|web)")
	fs.String("store.driver", string(StoreDriverSQLite), "Local profile store backend (sqlite|memory)")
	fs.String("store.path", "", "Path to the local profile database")
	fs.String("logging.level", "info", "Log level")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("oauth.provider", "google")
	v.SetDefault("oauth.platform", string(PlatformWeb))
	v.SetDefault("oauth.client_ids.android", "")
	v.SetDefault("oauth.client_ids.ios", "")
	v.SetDefault("oauth.client_ids.web", "")
	v.SetDefault("oauth.client_secret", "")
	v.SetDefault("oauth.scopes", []string{})
	v.SetDefault("oauth.callback_host", "127.0.0.1")
	v.SetDefault("oauth.callback_port", 0)
	v.SetDefault("oauth.auth_url", "")
	v.SetDefault("oauth.token_url", "")
	v.SetDefault("oauth.issuer_url", "")
	v.SetDefault("profile.userinfo_url", "")
	v.SetDefault("profile.timeout", time.Duration(0))
	v.SetDefault("store.driver", string(StoreDriverSQLite))
	v.SetDefault("store.path", defaultStorePath())
	v.SetDefault("map.latitude_delta", 0.3)
	v.SetDefault("map.longitude_delta", 0.3)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output_path", "map-signin.log")
	v.SetDefault("logging.append_to_file", true)
}

func defaultStorePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "map-signin.db"
	}
	return filepath.Join(dir, "map-signin", "profile.db")
}

// Load reads the configuration from flags, environment and an optional
// config file. A missing config file is not an error.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("MAP_SIGNIN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, err
		}
	}

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "map-signin"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks the values that cannot be defaulted
func (c *Config) Validate() error {
	switch c.OAuth.Provider {
	case "google", "github":
	case "oidc":
		if c.OAuth.IssuerURL == "" {
			return fmt.Errorf("oauth.issuer_url is required for the oidc provider, please adjust the config or set MAP_SIGNIN_OAUTH_ISSUER_URL")
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedProvider, c.OAuth.Provider)
	}

	switch c.OAuth.Platform {
	case PlatformAndroid, PlatformIOS, PlatformWeb:
	default:
		return fmt.Errorf("unsupported oauth.platform %q", c.OAuth.Platform)
	}

	switch c.Store.Driver {
	case StoreDriverSQLite:
		if c.Store.Path == "" {
			return fmt.Errorf("store.path is required for the sqlite driver")
		}
	case StoreDriverMemory:
	default:
		return fmt.Errorf("unsupported store.driver %q", c.Store.Driver)
	}

	if c.Map.LatitudeDelta <= 0 || c.Map.LongitudeDelta <= 0 {
		return fmt.Errorf("map deltas must be positive")
	}
	return nil
}
