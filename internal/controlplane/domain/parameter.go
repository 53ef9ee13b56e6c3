package domain

import "time"

// Fixed parameter names for the Spotify application credentials.
const (
	ParamSpotifyClientID     = "/rhythmiq/spotify/client_id"
	ParamSpotifyClientSecret = "/rhythmiq/spotify/client_secret"
	ParamSpotifyRedirectURI  = "/rhythmiq/spotify/redirect_uri"
)

// Parameter is a named configuration value. Secure values are sealed at rest.
type Parameter struct {
	Name      string
	Value     string
	Secure    bool
	UpdatedAt time.Time
}
