package app

import (
	"testing"
	"time"

	"github.com/rhythmiq/controlplane/internal/controlplane/service"
	"github.com/rhythmiq/controlplane/internal/controlplane/spotify"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{
		"ENV", "PORT", "DATABASE_FILE", "MASTER_KEY", "CREDENTIAL_SOURCE",
		"SPOTIFY_SCOPES", "REPLAY_WINDOW", "SESSION_WINDOW", "STATE_TTL",
		"EXCHANGE_RELEASE_ON_TRANSPORT_ERROR",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, "controlplane.db", cfg.DatabaseFile)
	require.Equal(t, CredentialSourceParams, cfg.CredentialSource)
	require.Equal(t, spotify.DefaultAccountsURL, cfg.SpotifyAccountsURL)
	require.Equal(t, service.DefaultScopes, cfg.SpotifyScopes)
	require.Equal(t, service.DefaultReplayWindow, cfg.ReplayWindow)
	require.Equal(t, service.DefaultSessionWindow, cfg.SessionWindow)
	require.Equal(t, service.DefaultStateTTL, cfg.StateTTL)
	require.False(t, cfg.ExchangeReleaseOnTransportError)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("CREDENTIAL_SOURCE", "FILE")
	t.Setenv("SPOTIFY_CREDENTIALS_FILE", "/etc/rhythmiq/spotify.toml")
	t.Setenv("SPOTIFY_SCOPES", "user-read-email  user-top-read")
	t.Setenv("REPLAY_WINDOW", "90")
	t.Setenv("SESSION_WINDOW", "2h")
	t.Setenv("STATE_TTL", "not-a-duration")
	t.Setenv("EXCHANGE_RELEASE_ON_TRANSPORT_ERROR", "true")

	cfg := LoadConfig()

	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, CredentialSourceFile, cfg.CredentialSource)
	require.Equal(t, []string{"user-read-email", "user-top-read"}, cfg.SpotifyScopes)
	require.Equal(t, 90*time.Second, cfg.ReplayWindow)
	require.Equal(t, 2*time.Hour, cfg.SessionWindow)
	require.Equal(t, service.DefaultStateTTL, cfg.StateTTL, "unparseable values fall back")
	require.True(t, cfg.ExchangeReleaseOnTransportError)
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	valid := Config{
		Port:             8080,
		CredentialSource: CredentialSourceParams,
		ReplayWindow:     time.Minute,
		SessionWindow:    time.Hour,
		StateTTL:         10 * time.Minute,
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"unknown source", func(c *Config) { c.CredentialSource = "vault" }, "CREDENTIAL_SOURCE"},
		{"file without path", func(c *Config) { c.CredentialSource = CredentialSourceFile }, "SPOTIFY_CREDENTIALS_FILE"},
		{"port", func(c *Config) { c.Port = 0 }, "PORT"},
		{"zero replay window", func(c *Config) { c.ReplayWindow = 0 }, "REPLAY_WINDOW"},
		{"relative redirect", func(c *Config) { c.PostLoginRedirectURL = "/home" }, "POST_LOGIN_REDIRECT_URL"},
		{"absolute redirect", func(c *Config) { c.PostLoginRedirectURL = "https://app.example.com/" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoadSealer(t *testing.T) {
	t.Parallel()

	sealer, err := loadSealer(Config{})
	require.NoError(t, err)
	require.Nil(t, sealer)

	sealer, err = loadSealer(Config{MasterKey: "0123456789abcdef0123456789abcdef"})
	require.NoError(t, err)
	require.NotNil(t, sealer)

	path := t.TempDir() + "/master.key"
	sealer, err = loadSealer(Config{MasterKeyPath: path})
	require.NoError(t, err)
	require.NotNil(t, sealer)
	require.FileExists(t, path)
}
