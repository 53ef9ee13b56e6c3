package cpsdk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Login starts the Spotify authorization flow and returns the consent URL
// together with the state the callback must carry.
func (c *SDKClient) Login(ctx context.Context) (*LoginResponse, error) {
	var out LoginResponse
	if err := c.doJSON(ctx, http.MethodGet, "/v1/spotify/login?format=json", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// StateCookieName is the cookie the login sets and the callback checks.
const StateCookieName = "spotify_auth_state"

// Callback replays the browser leg of the flow, presenting state both as the
// query parameter and as the state cookie a browser would hold. It only
// succeeds when the server answers with JSON, i.e. no post-login redirect is
// configured.
func (c *SDKClient) Callback(ctx context.Context, code, state string) (*CallbackResponse, error) {
	q := url.Values{"code": {code}, "state": {state}}

	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/spotify/callback?"+q.Encode(), nil, map[string]string{
		"Cookie": (&http.Cookie{Name: StateCookieName, Value: state}).String(),
	})
	if err != nil {
		return nil, err
	}

	var out CallbackResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout drops the bound session.
func (c *SDKClient) Logout(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, c.sessionPath("/v1/spotify/logout", nil), nil, nil, http.StatusNoContent)
}

// LikedSongs proxies /me/tracks for the bound session.
func (c *SDKClient) LikedSongs(ctx context.Context, offset, limit int) (json.RawMessage, error) {
	q := url.Values{
		"offset": {fmt.Sprint(offset)},
		"limit":  {fmt.Sprint(limit)},
	}
	return c.getRaw(ctx, c.sessionPath("/v1/spotify/liked-songs", q))
}

func (c *SDKClient) Playlists(ctx context.Context) (json.RawMessage, error) {
	return c.getRaw(ctx, c.sessionPath("/v1/spotify/playlists", nil))
}

func (c *SDKClient) CurrentUser(ctx context.Context) (json.RawMessage, error) {
	return c.getRaw(ctx, c.sessionPath("/v1/spotify/me", nil))
}

// Search queries the Spotify catalog. It needs no session.
func (c *SDKClient) Search(ctx context.Context, q, kinds string) (json.RawMessage, error) {
	v := url.Values{"q": {q}}
	if kinds != "" {
		v.Set("type", kinds)
	}
	return c.getRaw(ctx, "/v1/spotify/search?"+v.Encode())
}

// Recommendations returns tracks seeded from a profile's preferences.
func (c *SDKClient) Recommendations(ctx context.Context, profileID string, limit int) (json.RawMessage, error) {
	q := url.Values{"limit": {fmt.Sprint(limit)}}
	return c.getRaw(ctx, c.sessionPath("/v1/profiles/"+url.PathEscape(profileID)+"/recommendations", q))
}

func (c *SDKClient) sessionPath(path string, q url.Values) string {
	if c.SessionID != "" {
		if q == nil {
			q = url.Values{}
		}
		q.Set("sessionId", c.SessionID)
	}
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

func (c *SDKClient) getRaw(ctx context.Context, path string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}
