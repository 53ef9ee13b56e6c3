package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rhythmiq/controlplane/internal/controlplane/service"
	"github.com/rhythmiq/controlplane/internal/controlplane/spotify"
	"github.com/rhythmiq/controlplane/pkg/httpx"
)

// Credential sources accepted by CREDENTIAL_SOURCE.
const (
	CredentialSourceParams = "params"
	CredentialSourceFile   = "file"
)

type Config struct {
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text, pretty) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)

	DatabaseFile  string // Path to SQLite database file (default: ./controlplane.db)
	MasterKey     string // Optional: key material sealing secure parameters
	MasterKeyPath string // Optional: file holding the master key, created on first use
	PepperFile    string // Path to file containing pepper for password hashing (default: ./pepper)

	CredentialSource       string // params or file (default: params)
	SpotifyCredentialsFile string // TOML file, required when CredentialSource is file
	SpotifyAccountsURL     string
	SpotifyAPIURL          string
	SpotifyScopes          []string
	PostLoginRedirectURL   string // Optional: browser destination after the callback

	ReplayWindow                    time.Duration // How long a redeemed code stays burned (default: 60s)
	SessionWindow                   time.Duration // Session lifetime (default: 1h)
	StateTTL                        time.Duration // Login state lifetime (default: 10m)
	SweepInterval                   time.Duration // Housekeeping period (default: 60s)
	UpstreamTimeout                 time.Duration // Timeout for Spotify calls (default: 10s)
	ExchangeReleaseOnTransportError bool          // Unburn a code when Spotify was unreachable (default: false)

	RateLimits httpx.RateLimits
}

// LoadConfig reads the environment, after merging an optional .env file from
// the working directory. Variables already set win over the file.
func LoadConfig() Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "ignoring unreadable .env: %v\n", err)
	}

	return Config{
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),

		DatabaseFile:  getEnvOrDefault("DATABASE_FILE", "controlplane.db"),
		MasterKey:     os.Getenv("MASTER_KEY"),
		MasterKeyPath: os.Getenv("MASTER_KEY_PATH"),
		PepperFile:    getEnvOrDefault("PEPPER_FILE", "pepper"),

		CredentialSource:       strings.ToLower(getEnvOrDefault("CREDENTIAL_SOURCE", CredentialSourceParams)),
		SpotifyCredentialsFile: os.Getenv("SPOTIFY_CREDENTIALS_FILE"),
		SpotifyAccountsURL:     getEnvOrDefault("SPOTIFY_ACCOUNTS_URL", spotify.DefaultAccountsURL),
		SpotifyAPIURL:          getEnvOrDefault("SPOTIFY_API_URL", spotify.DefaultAPIURL),
		SpotifyScopes:          strings.Fields(getEnvOrDefault("SPOTIFY_SCOPES", strings.Join(service.DefaultScopes, " "))),
		PostLoginRedirectURL:   os.Getenv("POST_LOGIN_REDIRECT_URL"),

		ReplayWindow:                    getEnvDurationOrDefault("REPLAY_WINDOW", service.DefaultReplayWindow),
		SessionWindow:                   getEnvDurationOrDefault("SESSION_WINDOW", service.DefaultSessionWindow),
		StateTTL:                        getEnvDurationOrDefault("STATE_TTL", service.DefaultStateTTL),
		SweepInterval:                   getEnvDurationOrDefault("SWEEP_INTERVAL", service.DefaultSweepInterval),
		UpstreamTimeout:                 getEnvDurationOrDefault("UPSTREAM_TIMEOUT", 10*time.Second),
		ExchangeReleaseOnTransportError: getEnvBoolOrDefault("EXCHANGE_RELEASE_ON_TRANSPORT_ERROR", false),

		RateLimits: httpx.LoadRateLimits(),
	}
}

// Validate reports configuration that cannot work at all. Missing Spotify
// credentials are not an error here; they surface per request and on /readyz.
func (c Config) Validate() error {
	var errs []error

	switch c.CredentialSource {
	case CredentialSourceParams:
	case CredentialSourceFile:
		if c.SpotifyCredentialsFile == "" {
			errs = append(errs, errors.New("SPOTIFY_CREDENTIALS_FILE is required when CREDENTIAL_SOURCE=file"))
		}
	default:
		errs = append(errs, fmt.Errorf("CREDENTIAL_SOURCE must be %q or %q, got %q",
			CredentialSourceParams, CredentialSourceFile, c.CredentialSource))
	}

	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT out of range: %d", c.Port))
	}
	if c.ReplayWindow <= 0 || c.SessionWindow <= 0 || c.StateTTL <= 0 {
		errs = append(errs, errors.New("REPLAY_WINDOW, SESSION_WINDOW and STATE_TTL must be positive"))
	}
	if c.PostLoginRedirectURL != "" && !strings.HasPrefix(c.PostLoginRedirectURL, "http") {
		errs = append(errs, fmt.Errorf("POST_LOGIN_REDIRECT_URL must be an absolute URL"))
	}

	return errors.Join(errs...)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are seconds
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
