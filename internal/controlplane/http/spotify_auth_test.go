package http_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	cphttp "github.com/rhythmiq/controlplane/internal/controlplane/http"
	"github.com/rhythmiq/controlplane/pkg/cpsdk"
	"github.com/rhythmiq/controlplane/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func TestLoginRedirect(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, testOptions{})
	rec := s.do(t, http.MethodGet, "/v1/spotify/login", "")

	require.Equal(t, http.StatusFound, rec.Code)
	loc, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	require.Equal(t, "/authorize", loc.Path)
	require.Equal(t, "client", loc.Query().Get("client_id"))
	require.Equal(t, testRedirectURI, loc.Query().Get("redirect_uri"))
	require.Equal(t, "code", loc.Query().Get("response_type"))
	require.Contains(t, loc.Query().Get("scope"), "user-library-read")

	c := findCookie(rec.Result().Cookies(), cphttp.StateCookie)
	require.NotNil(t, c)
	require.Equal(t, loc.Query().Get("state"), c.Value)
	require.True(t, c.HttpOnly)
	require.True(t, c.Secure)
	require.Equal(t, http.SameSiteLaxMode, c.SameSite)
	require.Equal(t, 600, c.MaxAge)
}

func TestLoginMissingConfiguration(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, testOptions{skipCredentials: true})
	rec := s.do(t, http.MethodGet, "/v1/spotify/login", "")

	requireErrorCode(t, rec, http.StatusInternalServerError, cpsdk.ErrorCodeMissingConfiguration)
	require.Nil(t, findCookie(rec.Result().Cookies(), cphttp.StateCookie))
}

func TestCallbackSetsCookies(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, testOptions{})
	rec := s.callback(t, "good-code")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	var resp cpsdk.CallbackResponse
	decode(t, rec, &resp)
	require.NotEmpty(t, resp.SessionID)
	require.Equal(t, 3600, resp.ExpiresIn)

	tokens, ok := s.sessions.Get(resp.SessionID)
	require.True(t, ok)
	require.Equal(t, "user-good-code", tokens.AccessToken)

	cookies := rec.Result().Cookies()
	tests := []struct {
		name   string
		value  string
		maxAge int
	}{
		{cphttp.AccessTokenCookie, "user-good-code", 3600},
		{cphttp.RefreshTokenCookie, "refresh-good-code", 30 * 24 * 3600},
		{httpx.SessionCookieName, resp.SessionID, 3600},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := findCookie(cookies, tt.name)
			require.NotNil(t, c)
			require.Equal(t, tt.value, c.Value)
			require.Equal(t, tt.maxAge, c.MaxAge)
			require.Equal(t, "/", c.Path)
			require.True(t, c.HttpOnly)
			require.True(t, c.Secure)
			require.Equal(t, http.SameSiteStrictMode, c.SameSite)
		})
	}

	state := findCookie(cookies, cphttp.StateCookie)
	require.NotNil(t, state)
	require.Equal(t, -1, state.MaxAge)
}

func TestCallbackWithoutExpiresInKeepsAccessCookie(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, testOptions{})
	rec := s.callback(t, "no-expiry")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp cpsdk.CallbackResponse
	decode(t, rec, &resp)
	require.Zero(t, resp.ExpiresIn)

	access := findCookie(rec.Result().Cookies(), cphttp.AccessTokenCookie)
	require.NotNil(t, access)
	require.Equal(t, "user-no-expiry", access.Value)

	session := findCookie(rec.Result().Cookies(), httpx.SessionCookieName)
	require.NotNil(t, session)
	require.Positive(t, access.MaxAge)
	require.Equal(t, session.MaxAge, access.MaxAge, "falls back to the session window")

	// no refresh token came back, so no refresh cookie is written
	require.Nil(t, findCookie(rec.Result().Cookies(), cphttp.RefreshTokenCookie))
}

func TestCallbackReplayRejected(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, testOptions{})
	require.Equal(t, http.StatusOK, s.callback(t, "once").Code)
	calls := s.spotify.tokenCalls.Load()

	rec := s.callback(t, "once")
	requireErrorCode(t, rec, http.StatusBadRequest, cpsdk.ErrorCodeReplayRejected)
	require.Equal(t, calls, s.spotify.tokenCalls.Load())
	require.Nil(t, findCookie(rec.Result().Cookies(), httpx.SessionCookieName))
}

func TestCallbackRejectsBadRequests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		target string
		code   string
	}{
		{"provider error", "/v1/spotify/callback?error=access_denied&state=x", cpsdk.ErrorCodeAccessDenied},
		{"missing code", "/v1/spotify/callback?state=x", cpsdk.ErrorCodeInvalidRequest},
		{"missing state", "/v1/spotify/callback?code=abc", cpsdk.ErrorCodeInvalidState},
		{"unknown state", "/v1/spotify/callback?code=abc&state=forged", cpsdk.ErrorCodeInvalidState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := newTestServer(t, testOptions{})
			requireErrorCode(t, s.do(t, http.MethodGet, tt.target, ""), http.StatusBadRequest, tt.code)
			require.Zero(t, s.spotify.tokenCalls.Load())
		})
	}
}

func TestCallbackWithoutStateCookieIsRejected(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, testOptions{})
	state, cookie := s.login(t)

	// a valid state from someone else's login, replayed without its cookie
	q := url.Values{"code": {"attacker-code"}, "state": {state}}
	rec := s.do(t, http.MethodGet, "/v1/spotify/callback?"+q.Encode(), "")
	requireErrorCode(t, rec, http.StatusBadRequest, cpsdk.ErrorCodeInvalidState)
	require.Zero(t, s.spotify.tokenCalls.Load())
	require.Zero(t, s.sessions.Len())
	require.Nil(t, findCookie(rec.Result().Cookies(), httpx.SessionCookieName))

	// the owner of the cookie can still finish the login
	q.Set("code", "owner-code")
	require.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/v1/spotify/callback?"+q.Encode(), "", cookie).Code)
}

func TestCallbackStateMismatchLeavesCodeUsable(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, testOptions{})
	state, _ := s.login(t)

	q := url.Values{"code": {"reusable"}, "state": {state}}
	wrong := &http.Cookie{Name: cphttp.StateCookie, Value: "someone-else"}
	requireErrorCode(t, s.do(t, http.MethodGet, "/v1/spotify/callback?"+q.Encode(), "", wrong),
		http.StatusBadRequest, cpsdk.ErrorCodeInvalidState)

	// the code was never marked, so a proper attempt still works
	require.Equal(t, http.StatusOK, s.callback(t, "reusable").Code)
}

func TestCallbackUpstreamRejected(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, testOptions{})
	rec := s.callback(t, "rejected")

	resp := requireErrorCode(t, rec, http.StatusBadGateway, cpsdk.ErrorCodeUpstreamRejected)
	require.Equal(t, http.StatusBadRequest, resp.UpstreamStatus)
	require.Contains(t, resp.UpstreamBody, "invalid_grant")
	require.Zero(t, s.sessions.Len())

	// burned regardless of the upstream answer
	requireErrorCode(t, s.callback(t, "rejected"), http.StatusBadRequest, cpsdk.ErrorCodeReplayRejected)
}

func TestCallbackPostLoginRedirect(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, testOptions{postLoginRedirect: "https://app.example.com/home?tab=library"})
	rec := s.callback(t, "redirected")
	require.Equal(t, http.StatusFound, rec.Code)

	loc, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	require.Equal(t, "app.example.com", loc.Host)
	require.Equal(t, "library", loc.Query().Get("tab"))

	sid := loc.Query().Get("sessionId")
	require.NotEmpty(t, sid)
	_, ok := s.sessions.Get(sid)
	require.True(t, ok)
	require.NotNil(t, findCookie(rec.Result().Cookies(), httpx.SessionCookieName))
}

func TestLogoutClearsCookiesAndSession(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, testOptions{})
	sid := s.newSession(t, "logout-code")

	rec := s.do(t, http.MethodPost, "/v1/spotify/logout", "",
		&http.Cookie{Name: httpx.SessionCookieName, Value: sid})
	require.Equal(t, http.StatusNoContent, rec.Code)

	cookies := rec.Result().Cookies()
	for _, name := range []string{cphttp.AccessTokenCookie, cphttp.RefreshTokenCookie, httpx.SessionCookieName} {
		c := findCookie(cookies, name)
		require.NotNil(t, c, name)
		require.Empty(t, c.Value)
		require.Equal(t, -1, c.MaxAge, name)
		require.True(t, c.HttpOnly)
		require.True(t, c.Secure)
		require.Equal(t, http.SameSiteStrictMode, c.SameSite)
	}
	require.True(t, strings.Contains(rec.Header().Values("Set-Cookie")[0], "Max-Age=0"))

	_, ok := s.sessions.Get(sid)
	require.False(t, ok)
	requireErrorCode(t, s.do(t, http.MethodGet, "/v1/spotify/me?sessionId="+sid, ""),
		http.StatusUnauthorized, cpsdk.ErrorCodeSessionNotFound)
}

func TestLogoutWithoutSession(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, testOptions{})
	rec := s.do(t, http.MethodPost, "/v1/spotify/logout", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Len(t, rec.Result().Cookies(), 3)
}
