package http

import (
	"net/http"

	"github.com/rhythmiq/controlplane/internal/controlplane/domain"
	"github.com/rhythmiq/controlplane/internal/controlplane/service"
	"github.com/rhythmiq/controlplane/pkg/cpsdk"
	"github.com/rhythmiq/controlplane/pkg/httpx"
)

type PreferencesHandler struct {
	PreferenceService *service.PreferenceService
}

func toPreferenceResponse(p domain.Preference) cpsdk.PreferenceResponse {
	return cpsdk.PreferenceResponse{
		PreferenceID: p.ID,
		ProfileID:    p.ProfileID,
		Type:         string(p.Type),
		Value:        p.Value,
		Index:        p.Index,
		Weight:       p.Weight,
		IsUserSet:    p.IsUserSet,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// HandleCreate handles POST /v1/profiles/{id}/preferences
//
//	@Summary		Add Preference
//	@Tags			Preferences
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Profile id"
//	@Param			request	body		cpsdk.CreatePreferenceRequest	true	"Preference"
//	@Success		201		{object}	cpsdk.PreferenceResponse
//	@Failure		400		{object}	cpsdk.ValidationErrorResponse
//	@Failure		404		{object}	cpsdk.ErrorResponse	"unknown profile"
//	@Router			/v1/profiles/{id}/preferences [post].
func (h *PreferencesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	req, err := httpx.BindJSON[cpsdk.CreatePreferenceRequest](w, r)
	if err != nil {
		return
	}

	p, err := h.PreferenceService.CreatePreference(r.Context(), r.PathValue("id"), service.CreatePreferenceInput{
		Type:      domain.PreferenceType(req.Type),
		Value:     req.Value,
		Index:     req.Index,
		Weight:    req.Weight,
		IsUserSet: req.IsUserSet,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toPreferenceResponse(p))
}

// HandleList handles GET /v1/profiles/{id}/preferences
//
//	@Summary		List Preferences
//	@Tags			Preferences
//	@Produce		json
//	@Param			id	path		string	true	"Profile id"
//	@Success		200	{object}	cpsdk.ListPreferencesResponse
//	@Failure		404	{object}	cpsdk.ErrorResponse
//	@Router			/v1/profiles/{id}/preferences [get].
func (h *PreferencesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.PreferenceService.ListPreferences(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := cpsdk.ListPreferencesResponse{Preferences: make([]cpsdk.PreferenceResponse, 0, len(prefs))}
	for _, p := range prefs {
		resp.Preferences = append(resp.Preferences, toPreferenceResponse(p))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleGet handles GET /v1/profiles/{id}/preferences/{pid}
//
//	@Summary		Get Preference
//	@Tags			Preferences
//	@Produce		json
//	@Param			id	path		string	true	"Profile id"
//	@Param			pid	path		string	true	"Preference id"
//	@Success		200	{object}	cpsdk.PreferenceResponse
//	@Failure		404	{object}	cpsdk.ErrorResponse
//	@Router			/v1/profiles/{id}/preferences/{pid} [get].
func (h *PreferencesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	p, err := h.PreferenceService.GetPreference(r.Context(), r.PathValue("id"), r.PathValue("pid"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPreferenceResponse(p))
}

// HandleUpdate handles PUT /v1/profiles/{id}/preferences/{pid}
//
//	@Summary		Update Preference
//	@Tags			Preferences
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Profile id"
//	@Param			pid		path		string							true	"Preference id"
//	@Param			request	body		cpsdk.UpdatePreferenceRequest	true	"Fields to change"
//	@Success		200		{object}	cpsdk.PreferenceResponse
//	@Failure		404		{object}	cpsdk.ErrorResponse
//	@Router			/v1/profiles/{id}/preferences/{pid} [put].
func (h *PreferencesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	req, err := httpx.BindJSON[cpsdk.UpdatePreferenceRequest](w, r)
	if err != nil {
		return
	}

	in := service.UpdatePreferenceInput{
		Value:     req.Value,
		Index:     req.Index,
		Weight:    req.Weight,
		IsUserSet: req.IsUserSet,
	}
	if req.Type != nil {
		t := domain.PreferenceType(*req.Type)
		in.Type = &t
	}

	p, err := h.PreferenceService.UpdatePreference(r.Context(), r.PathValue("id"), r.PathValue("pid"), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPreferenceResponse(p))
}

// HandleDelete handles DELETE /v1/profiles/{id}/preferences/{pid}
//
//	@Summary		Delete Preference
//	@Tags			Preferences
//	@Param			id	path	string	true	"Profile id"
//	@Param			pid	path	string	true	"Preference id"
//	@Success		204	"No Content"
//	@Failure		404	{object}	cpsdk.ErrorResponse
//	@Router			/v1/profiles/{id}/preferences/{pid} [delete].
func (h *PreferencesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.PreferenceService.DeletePreference(r.Context(), r.PathValue("id"), r.PathValue("pid")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
