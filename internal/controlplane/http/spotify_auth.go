package http

import (
	"net/http"
	"net/url"
	"time"

	"github.com/rhythmiq/controlplane/internal/controlplane/service"
	"github.com/rhythmiq/controlplane/pkg/cpsdk"
	"github.com/rhythmiq/controlplane/pkg/httpx"
	"github.com/rhythmiq/controlplane/pkg/slogx"
)

// SpotifyAuthHandler serves the login, callback and logout endpoints.
type SpotifyAuthHandler struct {
	LoginService *service.LoginService
	Exchanger    *service.Exchanger
	Sessions     *service.SessionStore

	StateTTL      time.Duration
	SessionWindow time.Duration

	// PostLoginRedirect, when set, receives the browser after a successful
	// callback with the session id appended as sessionId.
	PostLoginRedirect string
}

// HandleLogin handles GET /v1/spotify/login
//
//	@Summary		Start Spotify Login
//	@Description	Issues a one-shot state, stores it in the spotify_auth_state cookie and redirects to the Spotify consent page.
//	@Description	With format=json the consent URL is returned instead of a redirect.
//	@Tags			Spotify
//	@Produce		json
//	@Param			format	query		string					false	"json to receive the URL instead of a redirect"
//	@Success		200		{object}	cpsdk.LoginResponse		"authorize_url, state"
//	@Success		302		"Redirect to Spotify"
//	@Failure		500		{object}	cpsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/spotify/login [get].
func (h *SpotifyAuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	authorizeURL, state, err := h.LoginService.Begin(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	setStateCookie(w, state, h.StateTTL)

	if r.URL.Query().Get("format") == "json" {
		httpx.WriteJSON(w, http.StatusOK, cpsdk.LoginResponse{
			AuthorizeURL: authorizeURL,
			State:        state,
		})
		return
	}

	httpx.NoCache(w)
	http.Redirect(w, r, authorizeURL, http.StatusFound)
}

// HandleCallback handles GET /v1/spotify/callback
//
//	@Summary		Spotify Authorization Callback
//	@Description	Validates the state, redeems the authorization code exactly once and starts a session.
//	@Description	Sets spotify_access_token, spotify_refresh_token and rhythmiq_session cookies.
//	@Tags			Spotify
//	@Produce		json
//	@Param			code	query		string					true	"Authorization code"
//	@Param			state	query		string					true	"State issued by /v1/spotify/login"
//	@Success		200		{object}	cpsdk.CallbackResponse	"session_id, expires_in"
//	@Success		302		"Redirect to the post-login URL"
//	@Failure		400		{object}	cpsdk.ErrorResponse		"invalid_request, invalid_state, access_denied or replay_rejected"
//	@Failure		500		{object}	cpsdk.ErrorResponse		"missing_configuration"
//	@Failure		502		{object}	cpsdk.ErrorResponse		"upstream_rejected or transport_error"
//	@Router			/v1/spotify/callback [get].
func (h *SpotifyAuthHandler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	q := r.URL.Query()

	if providerErr := q.Get("error"); providerErr != "" {
		log.Info("spotify authorization declined", "reason", providerErr)
		setStateCookie(w, "", 0)
		writeErrorCode(w, http.StatusBadRequest, cpsdk.ErrorCodeAccessDenied, providerErr)
		return
	}

	code := q.Get("code")
	if code == "" {
		writeErrorCode(w, http.StatusBadRequest, cpsdk.ErrorCodeInvalidRequest, "code is required")
		return
	}

	var cookieState string
	if c, err := r.Cookie(StateCookie); err == nil {
		cookieState = c.Value
	}
	if err := h.LoginService.VerifyState(ctx, q.Get("state"), cookieState); err != nil {
		writeError(w, r, err)
		return
	}
	setStateCookie(w, "", 0)

	session, err := h.Exchanger.Exchange(ctx, code)
	if err != nil {
		writeError(w, r, err)
		return
	}

	// a token response without expires_in still gets a usable cookie
	accessMaxAge := session.Tokens.ExpiresIn
	if accessMaxAge <= 0 {
		accessMaxAge = h.SessionWindow
	}
	setSessionCookie(w, AccessTokenCookie, session.Tokens.AccessToken, accessMaxAge)
	if session.Tokens.RefreshToken != "" {
		setSessionCookie(w, RefreshTokenCookie, session.Tokens.RefreshToken, refreshTokenMaxAge)
	}
	setSessionCookie(w, httpx.SessionCookieName, session.ID, h.SessionWindow)

	if h.PostLoginRedirect != "" {
		target, err := url.Parse(h.PostLoginRedirect)
		if err != nil {
			writeError(w, r, err)
			return
		}
		v := target.Query()
		v.Set("sessionId", session.ID)
		target.RawQuery = v.Encode()

		httpx.NoCache(w)
		http.Redirect(w, r, target.String(), http.StatusFound)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, cpsdk.CallbackResponse{
		SessionID: session.ID,
		ExpiresIn: int(session.Tokens.ExpiresIn / time.Second),
	})
}

// HandleLogout handles POST /v1/spotify/logout
//
//	@Summary		Log Out
//	@Description	Expires the credential cookies and drops the server-side session.
//	@Tags			Spotify
//	@Param			sessionId	query	string	false	"Session id when no cookie is sent"
//	@Success		204			"No Content"
//	@Router			/v1/spotify/logout [post].
func (h *SpotifyAuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if sid := httpx.SessionIDFromRequest(r); sid != "" {
		h.Sessions.Delete(sid)
		slogx.FromContext(r.Context()).Info("session ended")
	}

	clearCredentialCookies(w)
	httpx.NoCache(w)
	w.WriteHeader(http.StatusNoContent)
}
