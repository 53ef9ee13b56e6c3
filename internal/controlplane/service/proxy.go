package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/rhythmiq/controlplane/internal/controlplane/domain"
	"github.com/rhythmiq/controlplane/internal/controlplane/spotify"
	"github.com/rhythmiq/controlplane/pkg/slogx"
)

// WebAPI is the subset of the Spotify Web API the proxy forwards to.
type WebAPI interface {
	SavedTracks(ctx context.Context, accessToken string, offset, limit int) (json.RawMessage, error)
	Playlists(ctx context.Context, accessToken string) (json.RawMessage, error)
	CurrentUser(ctx context.Context, accessToken string) (json.RawMessage, error)
	Search(ctx context.Context, accessToken, q, kinds string, limit int) (json.RawMessage, error)
	Recommendations(ctx context.Context, accessToken string, seeds url.Values) (json.RawMessage, error)
}

// ClientTokens hands out the cached client-credentials token.
type ClientTokens interface {
	ClientToken(ctx context.Context, creds domain.ClientCredentials) (string, error)
	InvalidateClientToken(stale string)
}

const (
	defaultPageLimit = 20
	maxPageLimit     = 50
)

var searchKinds = map[string]bool{
	"album": true, "artist": true, "playlist": true, "track": true,
	"show": true, "episode": true, "audiobook": true,
}

// ProxyService forwards reads to the Spotify Web API on behalf of a session,
// or with the application token for catalog search.
type ProxyService struct {
	Sessions     *SessionStore
	API          WebAPI
	ClientTokens ClientTokens
	Credentials  CredentialSource
}

// accessToken resolves the bearer token for sessionID.
func (p *ProxyService) accessToken(sessionID string) (string, error) {
	if sessionID == "" {
		return "", ErrMissingSessionID
	}
	tokens, ok := p.Sessions.Get(sessionID)
	if !ok {
		return "", domain.ErrSessionNotFound
	}
	return tokens.AccessToken, nil
}

// LikedSongs pages through the session user's saved tracks. limit is clamped
// to 1..50 and defaults to 20.
func (p *ProxyService) LikedSongs(ctx context.Context, sessionID string, offset, limit int) (json.RawMessage, error) {
	token, err := p.accessToken(sessionID)
	if err != nil {
		return nil, err
	}
	if offset < 0 {
		return nil, fmt.Errorf("%w: offset must not be negative", ErrInvalidInput)
	}
	switch {
	case limit <= 0:
		limit = defaultPageLimit
	case limit > maxPageLimit:
		limit = maxPageLimit
	}
	return p.API.SavedTracks(ctx, token, offset, limit)
}

func (p *ProxyService) Playlists(ctx context.Context, sessionID string) (json.RawMessage, error) {
	token, err := p.accessToken(sessionID)
	if err != nil {
		return nil, err
	}
	return p.API.Playlists(ctx, token)
}

func (p *ProxyService) CurrentUser(ctx context.Context, sessionID string) (json.RawMessage, error) {
	token, err := p.accessToken(sessionID)
	if err != nil {
		return nil, err
	}
	return p.API.CurrentUser(ctx, token)
}

// Search queries the catalog with the application token. A 401 drops the
// cached token and the search is tried once more with a fresh one.
func (p *ProxyService) Search(ctx context.Context, q, kinds string, limit int) (json.RawMessage, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, fmt.Errorf("%w: q is required", ErrInvalidInput)
	}
	if kinds == "" {
		kinds = "track"
	}
	for _, k := range strings.Split(kinds, ",") {
		if !searchKinds[k] {
			return nil, fmt.Errorf("%w: unsupported search type %q", ErrInvalidInput, k)
		}
	}
	if limit <= 0 || limit > maxPageLimit {
		limit = defaultPageLimit
	}

	creds, err := resolveCredentials(ctx, p.Credentials)
	if err != nil {
		return nil, err
	}

	token, err := p.ClientTokens.ClientToken(ctx, creds)
	if err != nil {
		return nil, err
	}

	body, err := p.API.Search(ctx, token, q, kinds, limit)
	if !spotify.IsUnauthorized(err) {
		return body, err
	}

	slogx.FromContext(ctx).Info("client token rejected, refreshing")
	p.ClientTokens.InvalidateClientToken(token)

	token, err = p.ClientTokens.ClientToken(ctx, creds)
	if err != nil {
		return nil, err
	}
	return p.API.Search(ctx, token, q, kinds, limit)
}
