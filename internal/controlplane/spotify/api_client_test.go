package spotify_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rhythmiq/controlplane/internal/controlplane/domain"
	"github.com/rhythmiq/controlplane/internal/controlplane/spotify"
	"github.com/stretchr/testify/require"
)

func TestAPIClient(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer good" {
			writeJSON(w, http.StatusUnauthorized, `{"error":{"status":401,"message":"The access token expired"}}`)
			return
		}

		switch r.URL.Path {
		case "/me":
			writeJSON(w, http.StatusOK, `{"id":"user-1"}`)
		case "/me/tracks":
			require.Equal(t, "5", r.URL.Query().Get("offset"))
			require.Equal(t, "10", r.URL.Query().Get("limit"))
			writeJSON(w, http.StatusOK, `{"items":[]}`)
		case "/me/playlists":
			require.Equal(t, "50", r.URL.Query().Get("limit"))
			writeJSON(w, http.StatusOK, `{"items":[]}`)
		case "/search":
			require.Equal(t, "daft punk", r.URL.Query().Get("q"))
			require.Equal(t, "artist", r.URL.Query().Get("type"))
			writeJSON(w, http.StatusOK, `{"artists":{"items":[]}}`)
		default:
			writeJSON(w, http.StatusNotFound, `{"error":{"status":404}}`)
		}
	}))
	t.Cleanup(srv.Close)

	api := spotify.NewAPIClient(spotify.Endpoints{APIURL: srv.URL + "/"}, srv.Client())
	ctx := context.Background()

	t.Run("current user", func(t *testing.T) {
		body, err := api.CurrentUser(ctx, "good")
		require.NoError(t, err)
		require.JSONEq(t, `{"id":"user-1"}`, string(body))
	})

	t.Run("saved tracks", func(t *testing.T) {
		body, err := api.SavedTracks(ctx, "good", 5, 10)
		require.NoError(t, err)
		require.JSONEq(t, `{"items":[]}`, string(body))
	})

	t.Run("playlists", func(t *testing.T) {
		_, err := api.Playlists(ctx, "good")
		require.NoError(t, err)
	})

	t.Run("search", func(t *testing.T) {
		_, err := api.Search(ctx, "good", "daft punk", "artist", 20)
		require.NoError(t, err)
	})

	t.Run("unauthorized", func(t *testing.T) {
		_, err := api.CurrentUser(ctx, "expired")
		require.ErrorIs(t, err, domain.ErrUpstreamRejected)
		require.True(t, spotify.IsUnauthorized(err))
	})

	t.Run("not found", func(t *testing.T) {
		_, err := api.Get(ctx, "good", "/nope", nil)
		require.ErrorIs(t, err, domain.ErrUpstreamRejected)
		require.False(t, spotify.IsUnauthorized(err))
	})
}

func TestAPIClientOversizedResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{"at limit", spotify.MaxResponseBody, false},
		{"over limit", spotify.MaxResponseBody + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// a JSON string literal padded to exactly tt.size bytes
			body := `"` + strings.Repeat("a", tt.size-2) + `"`
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, body)
			}))
			t.Cleanup(srv.Close)

			client := spotify.NewAPIClient(spotify.Endpoints{APIURL: srv.URL}, srv.Client())
			raw, err := client.CurrentUser(context.Background(), "good")
			if !tt.wantErr {
				require.NoError(t, err)
				require.Len(t, raw, tt.size)
				return
			}

			require.ErrorIs(t, err, domain.ErrTransport)
			require.True(t, errors.Is(err, spotify.ErrResponseTooLarge), "got %v", err)
			require.NotEqual(t, domain.KindUpstreamRejected, domain.KindOf(err))
		})
	}
}
