package spotify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rhythmiq/controlplane/internal/controlplane/domain"
)

// MaxResponseBody bounds how much of a Web API response is buffered.
const MaxResponseBody = 4 << 20

// ErrResponseTooLarge wraps a transport error for a 2xx body over MaxResponseBody.
var ErrResponseTooLarge = errors.New("spotify: response body exceeds limit")

// APIClient performs bearer-authenticated reads against the Spotify Web API.
// Response bodies are returned untouched so handlers can pass them through.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewAPIClient(endpoints Endpoints, httpClient *http.Client) *APIClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &APIClient{
		baseURL:    strings.TrimRight(endpoints.APIURL, "/"),
		httpClient: httpClient,
	}
}

// Get issues GET {base}{path}?{query} with the given access token.
// Non-2xx answers become UpstreamRejected, anything else TransportError.
func (c *APIClient) Get(ctx context.Context, accessToken, path string, query url.Values) (json.RawMessage, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.TransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, domain.UpstreamRejected(resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBody+1))
	if err != nil {
		return nil, domain.TransportError(err)
	}
	if len(body) > MaxResponseBody {
		return nil, &domain.Error{
			Kind:    domain.KindTransportError,
			Message: fmt.Sprintf("upstream response larger than %d bytes", MaxResponseBody),
			Err:     ErrResponseTooLarge,
		}
	}
	if !json.Valid(body) {
		return nil, domain.UpstreamRejected(resp.StatusCode, truncate(string(body)))
	}
	return body, nil
}

// IsUnauthorized reports whether err is a 401 from the Web API.
func IsUnauthorized(err error) bool {
	var e *domain.Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == domain.KindUpstreamRejected && e.UpstreamStatus == http.StatusUnauthorized
}

// SavedTracks lists the user's liked songs.
func (c *APIClient) SavedTracks(ctx context.Context, accessToken string, offset, limit int) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("offset", strconv.Itoa(offset))
	q.Set("limit", strconv.Itoa(limit))
	return c.Get(ctx, accessToken, "/me/tracks", q)
}

// Playlists lists the first page of the user's playlists.
func (c *APIClient) Playlists(ctx context.Context, accessToken string) (json.RawMessage, error) {
	return c.Get(ctx, accessToken, "/me/playlists", url.Values{"limit": {"50"}})
}

func (c *APIClient) CurrentUser(ctx context.Context, accessToken string) (json.RawMessage, error) {
	return c.Get(ctx, accessToken, "/me", nil)
}

// Search queries the catalog. kinds is a comma separated list such as
// "track,artist".
func (c *APIClient) Search(ctx context.Context, accessToken, q, kinds string, limit int) (json.RawMessage, error) {
	query := url.Values{}
	query.Set("q", q)
	query.Set("type", kinds)
	query.Set("limit", strconv.Itoa(limit))
	return c.Get(ctx, accessToken, "/search", query)
}

// Recommendations asks for tracks seeded by the given genre, artist and
// tuning parameters.
func (c *APIClient) Recommendations(ctx context.Context, accessToken string, seeds url.Values) (json.RawMessage, error) {
	return c.Get(ctx, accessToken, "/recommendations", seeds)
}
