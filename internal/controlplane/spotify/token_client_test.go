package spotify_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rhythmiq/controlplane/internal/controlplane/domain"
	"github.com/rhythmiq/controlplane/internal/controlplane/spotify"
	"github.com/stretchr/testify/require"
)

var testCreds = domain.ClientCredentials{
	ClientID:     "client-123",
	ClientSecret: "secret-456",
	RedirectURI:  "https://app.example.com/v1/spotify/callback",
}

func newTokenServer(t *testing.T, handler http.HandlerFunc) (*spotify.TokenClient, *atomic.Int32) {
	t.Helper()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	client := spotify.NewTokenClient(spotify.Endpoints{AccountsURL: srv.URL, APIURL: srv.URL}, srv.Client())
	return client, &calls
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func TestExchangeAuthorizationCode(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		client, calls := newTokenServer(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/api/token", r.URL.Path)

			user, pass, ok := r.BasicAuth()
			require.True(t, ok)
			require.Equal(t, testCreds.ClientID, user)
			require.Equal(t, testCreds.ClientSecret, pass)

			require.NoError(t, r.ParseForm())
			require.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
			require.Equal(t, "code-1", r.PostForm.Get("code"))
			require.Equal(t, testCreds.RedirectURI, r.PostForm.Get("redirect_uri"))
			require.Empty(t, r.PostForm.Get("client_secret"))

			writeJSON(w, http.StatusOK, `{"access_token":"AT1","refresh_token":"RT1","expires_in":3600,"token_type":"Bearer","scope":"user-read-email"}`)
		})

		pair, err := client.ExchangeAuthorizationCode(context.Background(), "code-1", testCreds)
		require.NoError(t, err)
		require.Equal(t, "AT1", pair.AccessToken)
		require.Equal(t, "RT1", pair.RefreshToken)
		require.Equal(t, time.Hour, pair.ExpiresIn)
		require.Equal(t, "user-read-email", pair.Scope)
		require.False(t, pair.IssuedAt.IsZero())
		require.EqualValues(t, 1, calls.Load())
	})

	t.Run("non-2xx is upstream rejected", func(t *testing.T) {
		t.Parallel()

		client, calls := newTokenServer(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusBadRequest, `{"error":"invalid_grant","error_description":"Invalid authorization code"}`)
		})

		_, err := client.ExchangeAuthorizationCode(context.Background(), "bad", testCreds)
		require.ErrorIs(t, err, domain.ErrUpstreamRejected)

		var de *domain.Error
		require.ErrorAs(t, err, &de)
		require.Equal(t, http.StatusBadRequest, de.UpstreamStatus)
		require.Contains(t, de.UpstreamBody, "invalid_grant")
		require.NotContains(t, de.Error(), testCreds.ClientSecret)
		require.EqualValues(t, 1, calls.Load(), "no retry")
	})

	t.Run("upstream body is truncated", func(t *testing.T) {
		t.Parallel()

		client, _ := newTokenServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(strings.Repeat("x", 5000)))
		})

		_, err := client.ExchangeAuthorizationCode(context.Background(), "c", testCreds)

		var de *domain.Error
		require.ErrorAs(t, err, &de)
		require.Equal(t, domain.KindUpstreamRejected, de.Kind)
		require.Len(t, de.UpstreamBody, 1024)
	})

	t.Run("missing access token", func(t *testing.T) {
		t.Parallel()

		client, _ := newTokenServer(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `{"token_type":"Bearer","expires_in":3600}`)
		})

		_, err := client.ExchangeAuthorizationCode(context.Background(), "c", testCreds)

		var de *domain.Error
		require.ErrorAs(t, err, &de)
		require.Equal(t, domain.KindUpstreamRejected, de.Kind)
		require.Equal(t, http.StatusOK, de.UpstreamStatus)
	})

	t.Run("unreachable endpoint is transport error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		client := spotify.NewTokenClient(spotify.Endpoints{AccountsURL: url}, &http.Client{Timeout: time.Second})

		_, err := client.ExchangeAuthorizationCode(context.Background(), "c", testCreds)
		require.ErrorIs(t, err, domain.ErrTransport)
	})
}

func TestClientTokenCache(t *testing.T) {
	t.Parallel()

	var issued atomic.Int32
	now := time.Unix(1700000000, 0)
	var clock atomic.Int64
	clock.Store(now.UnixNano())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		require.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))

		n := issued.Add(1)
		writeJSON(w, http.StatusOK, `{"access_token":"CT`+string(rune('0'+n))+`","token_type":"Bearer","expires_in":3600}`)
	}))
	t.Cleanup(srv.Close)

	client := spotify.NewTokenClient(
		spotify.Endpoints{AccountsURL: srv.URL},
		srv.Client(),
		spotify.WithClock(func() time.Time { return time.Unix(0, clock.Load()) }),
	)
	ctx := context.Background()

	tok, err := client.ClientToken(ctx, testCreds)
	require.NoError(t, err)
	require.Equal(t, "CT1", tok)

	tok, err = client.ClientToken(ctx, testCreds)
	require.NoError(t, err)
	require.Equal(t, "CT1", tok, "served from cache")
	require.EqualValues(t, 1, issued.Load())

	// invalidating a token that is no longer cached is a no-op
	client.InvalidateClientToken("something-else")
	tok, err = client.ClientToken(ctx, testCreds)
	require.NoError(t, err)
	require.Equal(t, "CT1", tok)

	client.InvalidateClientToken("CT1")
	tok, err = client.ClientToken(ctx, testCreds)
	require.NoError(t, err)
	require.Equal(t, "CT2", tok)

	// within the refresh skew of expiry
	clock.Store(now.Add(time.Hour - 10*time.Second).UnixNano())
	tok, err = client.ClientToken(ctx, testCreds)
	require.NoError(t, err)
	require.Equal(t, "CT3", tok)
	require.EqualValues(t, 3, issued.Load())
}

func TestClientCredentialsLifetimeIgnoresWallClock(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"access_token":"CT","token_type":"Bearer","expires_in":1800}`)
	}))
	t.Cleanup(srv.Close)

	// an injected clock decades away from the wall clock
	issuedAt := time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)
	client := spotify.NewTokenClient(
		spotify.Endpoints{AccountsURL: srv.URL},
		srv.Client(),
		spotify.WithClock(func() time.Time { return issuedAt }),
	)

	pair, err := client.ExchangeClientCredentials(context.Background(), testCreds)
	require.NoError(t, err)
	require.Equal(t, 30*time.Minute, pair.ExpiresIn)
	require.Equal(t, issuedAt, pair.IssuedAt)
	require.Equal(t, issuedAt.Add(30*time.Minute), pair.ExpiresAt())
}

func TestAuthCodeURL(t *testing.T) {
	t.Parallel()

	client := spotify.NewTokenClient(spotify.DefaultEndpoints(), nil)
	u := client.AuthCodeURL(testCreds, "state-xyz", []string{"user-read-email", "user-library-read"})

	require.True(t, strings.HasPrefix(u, "https://accounts.spotify.com/authorize?"))
	require.Contains(t, u, "client_id=client-123")
	require.Contains(t, u, "state=state-xyz")
	require.Contains(t, u, "response_type=code")
	require.Contains(t, u, "scope=user-read-email+user-library-read")
	require.Contains(t, u, "redirect_uri=https%3A%2F%2Fapp.example.com%2Fv1%2Fspotify%2Fcallback")
}
