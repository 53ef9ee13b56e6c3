package http

import (
	"net/http"
	"strconv"

	"github.com/rhythmiq/controlplane/internal/controlplane/service"
	"github.com/rhythmiq/controlplane/pkg/cpsdk"
	"github.com/rhythmiq/controlplane/pkg/httpx"
)

// SpotifyAPIHandler relays Web API reads. Upstream bodies are passed through
// untouched.
type SpotifyAPIHandler struct {
	Proxy           *service.ProxyService
	Recommendations *service.RecommendationService
}

// queryInt reads an optional integer query parameter. ok is false when the
// value is present but not a number; the 400 has already been written.
func queryInt(w http.ResponseWriter, r *http.Request, name string) (n int, ok bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		writeErrorCode(w, http.StatusBadRequest, cpsdk.ErrorCodeInvalidRequest, name+" must be an integer")
		return 0, false
	}
	return n, true
}

// HandleLikedSongs handles GET /v1/spotify/liked-songs
//
//	@Summary		Liked Songs
//	@Description	Pages through the session user's saved tracks.
//	@Tags			Spotify
//	@Produce		json
//	@Param			sessionId	query		string				false	"Session id (or rhythmiq_session cookie)"
//	@Param			offset		query		int					false	"Offset"
//	@Param			limit		query		int					false	"Page size, 1-50"
//	@Success		200			{object}	object				"Spotify paging object"
//	@Failure		400			{object}	cpsdk.ErrorResponse	"missing session id"
//	@Failure		401			{object}	cpsdk.ErrorResponse	"session_not_found"
//	@Failure		502			{object}	cpsdk.ErrorResponse	"upstream_rejected or transport_error"
//	@Router			/v1/spotify/liked-songs [get].
func (h *SpotifyAPIHandler) HandleLikedSongs(w http.ResponseWriter, r *http.Request) {
	offset, ok := queryInt(w, r, "offset")
	if !ok {
		return
	}
	limit, ok := queryInt(w, r, "limit")
	if !ok {
		return
	}

	body, err := h.Proxy.LikedSongs(r.Context(), httpx.SessionIDFromRequest(r), offset, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteRawJSON(w, http.StatusOK, body)
}

// HandlePlaylists handles GET /v1/spotify/playlists
//
//	@Summary		Playlists
//	@Tags			Spotify
//	@Produce		json
//	@Param			sessionId	query		string				false	"Session id (or rhythmiq_session cookie)"
//	@Success		200			{object}	object				"Spotify paging object"
//	@Failure		401			{object}	cpsdk.ErrorResponse	"session_not_found"
//	@Router			/v1/spotify/playlists [get].
func (h *SpotifyAPIHandler) HandlePlaylists(w http.ResponseWriter, r *http.Request) {
	body, err := h.Proxy.Playlists(r.Context(), httpx.SessionIDFromRequest(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteRawJSON(w, http.StatusOK, body)
}

// HandleMe handles GET /v1/spotify/me
//
//	@Summary		Current Spotify User
//	@Tags			Spotify
//	@Produce		json
//	@Param			sessionId	query		string				false	"Session id (or rhythmiq_session cookie)"
//	@Success		200			{object}	object				"Spotify user object"
//	@Failure		401			{object}	cpsdk.ErrorResponse	"session_not_found"
//	@Router			/v1/spotify/me [get].
func (h *SpotifyAPIHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	body, err := h.Proxy.CurrentUser(r.Context(), httpx.SessionIDFromRequest(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteRawJSON(w, http.StatusOK, body)
}

// HandleSearch handles GET /v1/spotify/search
//
//	@Summary		Catalog Search
//	@Description	Searches the Spotify catalog with the application token. No session is needed.
//	@Tags			Spotify
//	@Produce		json
//	@Param			q		query		string				true	"Search query"
//	@Param			type	query		string				false	"Comma separated item types, default track"
//	@Param			limit	query		int					false	"Page size, 1-50"
//	@Success		200		{object}	object				"Spotify search result"
//	@Failure		400		{object}	cpsdk.ErrorResponse	"invalid_request"
//	@Failure		502		{object}	cpsdk.ErrorResponse	"upstream_rejected or transport_error"
//	@Router			/v1/spotify/search [get].
func (h *SpotifyAPIHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(w, r, "limit")
	if !ok {
		return
	}

	q := r.URL.Query()
	body, err := h.Proxy.Search(r.Context(), q.Get("q"), q.Get("type"), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteRawJSON(w, http.StatusOK, body)
}

// HandleRecommendations handles GET /v1/profiles/{id}/recommendations
//
//	@Summary		Recommendations
//	@Description	Fetches Spotify recommendations seeded from the profile's stored preferences.
//	@Tags			Profiles
//	@Produce		json
//	@Param			id			path		string				true	"Profile id"
//	@Param			sessionId	query		string				false	"Session id (or rhythmiq_session cookie)"
//	@Param			limit		query		int					false	"Number of tracks, 1-50"
//	@Success		200			{object}	object				"Spotify recommendations object"
//	@Failure		401			{object}	cpsdk.ErrorResponse	"session_not_found"
//	@Failure		404			{object}	cpsdk.ErrorResponse	"not_found"
//	@Failure		422			{object}	cpsdk.ErrorResponse	"no_preferences"
//	@Router			/v1/profiles/{id}/recommendations [get].
func (h *SpotifyAPIHandler) HandleRecommendations(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(w, r, "limit")
	if !ok {
		return
	}

	body, err := h.Recommendations.Recommendations(r.Context(), httpx.SessionIDFromRequest(r), r.PathValue("id"), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteRawJSON(w, http.StatusOK, body)
}
