package http

import (
	"net/http"
	"time"

	"github.com/rhythmiq/controlplane/pkg/cpsdk"
	"github.com/rhythmiq/controlplane/pkg/httpx"
)

const (
	AccessTokenCookie  = "spotify_access_token"
	RefreshTokenCookie = "spotify_refresh_token"
	StateCookie        = cpsdk.StateCookieName

	refreshTokenMaxAge = 30 * 24 * time.Hour
)

// setSessionCookie writes one of the credential cookies. maxAge of zero or
// less expires the cookie immediately.
func setSessionCookie(w http.ResponseWriter, name, value string, maxAge time.Duration) {
	c := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(maxAge / time.Second),
	}
	if maxAge <= 0 {
		c.Value = ""
		c.MaxAge = -1
	}
	http.SetCookie(w, c)
}

// setStateCookie uses SameSite=Lax because the callback arrives as a
// cross-site top-level navigation from Spotify.
func setStateCookie(w http.ResponseWriter, state string, ttl time.Duration) {
	c := &http.Cookie{
		Name:     StateCookie,
		Value:    state,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(ttl / time.Second),
	}
	if ttl <= 0 {
		c.Value = ""
		c.MaxAge = -1
	}
	http.SetCookie(w, c)
}

func clearCredentialCookies(w http.ResponseWriter) {
	for _, name := range []string{AccessTokenCookie, RefreshTokenCookie, httpx.SessionCookieName} {
		setSessionCookie(w, name, "", 0)
	}
}
