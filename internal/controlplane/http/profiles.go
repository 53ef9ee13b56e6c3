package http

import (
	"net/http"

	"github.com/rhythmiq/controlplane/internal/controlplane/domain"
	"github.com/rhythmiq/controlplane/internal/controlplane/service"
	"github.com/rhythmiq/controlplane/pkg/cpsdk"
	"github.com/rhythmiq/controlplane/pkg/httpx"
)

// ProfilesHandler handles all profile management endpoints.
type ProfilesHandler struct {
	ProfileService *service.ProfileService
}

func toProfileResponse(p domain.Profile) cpsdk.ProfileResponse {
	return cpsdk.ProfileResponse{
		ProfileID:   p.ID,
		Email:       p.Email,
		Username:    p.Username,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		PhoneNumber: p.PhoneNumber,
		HasPassword: p.PasswordHash != "",
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// HandleCreate handles POST /v1/profiles
//
//	@Summary		Create Profile
//	@Tags			Profiles
//	@Accept			json
//	@Produce		json
//	@Param			request	body		cpsdk.CreateProfileRequest		true	"Profile"
//	@Success		201		{object}	cpsdk.ProfileResponse
//	@Failure		400		{object}	cpsdk.ValidationErrorResponse	"invalid_request or validation_failed"
//	@Failure		409		{object}	cpsdk.ErrorResponse				"email or username taken"
//	@Router			/v1/profiles [post].
func (h *ProfilesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	req, err := httpx.BindJSON[cpsdk.CreateProfileRequest](w, r)
	if err != nil {
		return
	}

	p, err := h.ProfileService.CreateProfile(r.Context(), service.CreateProfileInput{
		Email:       req.Email,
		Username:    req.Username,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toProfileResponse(p))
}

// HandleList handles GET /v1/profiles
//
//	@Summary		List Profiles
//	@Tags			Profiles
//	@Produce		json
//	@Param			limit	query		int	false	"Page size, default 20, max 100"
//	@Param			offset	query		int	false	"Offset"
//	@Success		200		{object}	cpsdk.ListProfilesResponse
//	@Router			/v1/profiles [get].
func (h *ProfilesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(w, r, "limit")
	if !ok {
		return
	}
	offset, ok := queryInt(w, r, "offset")
	if !ok {
		return
	}

	profiles, err := h.ProfileService.ListProfiles(r.Context(), limit, offset)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := cpsdk.ListProfilesResponse{Profiles: make([]cpsdk.ProfileResponse, 0, len(profiles))}
	for _, p := range profiles {
		resp.Profiles = append(resp.Profiles, toProfileResponse(p))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleGet handles GET /v1/profiles/{id}
//
//	@Summary		Get Profile
//	@Tags			Profiles
//	@Produce		json
//	@Param			id	path		string	true	"Profile id"
//	@Success		200	{object}	cpsdk.ProfileResponse
//	@Failure		404	{object}	cpsdk.ErrorResponse
//	@Router			/v1/profiles/{id} [get].
func (h *ProfilesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	p, err := h.ProfileService.GetProfile(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProfileResponse(p))
}

// HandleUpdate handles PUT /v1/profiles/{id}
//
//	@Summary		Update Profile
//	@Description	Partial update. Omitted fields keep their value.
//	@Tags			Profiles
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Profile id"
//	@Param			request	body		cpsdk.UpdateProfileRequest	true	"Fields to change"
//	@Success		200		{object}	cpsdk.ProfileResponse
//	@Failure		404		{object}	cpsdk.ErrorResponse
//	@Failure		409		{object}	cpsdk.ErrorResponse
//	@Router			/v1/profiles/{id} [put].
func (h *ProfilesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	req, err := httpx.BindJSON[cpsdk.UpdateProfileRequest](w, r)
	if err != nil {
		return
	}

	p, err := h.ProfileService.UpdateProfile(r.Context(), r.PathValue("id"), service.UpdateProfileInput{
		Email:       req.Email,
		Username:    req.Username,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProfileResponse(p))
}

// HandleDelete handles DELETE /v1/profiles/{id}
//
//	@Summary		Delete Profile
//	@Description	Deletes the profile and all of its preferences.
//	@Tags			Profiles
//	@Param			id	path	string	true	"Profile id"
//	@Success		204	"No Content"
//	@Failure		404	{object}	cpsdk.ErrorResponse
//	@Router			/v1/profiles/{id} [delete].
func (h *ProfilesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.ProfileService.DeleteProfile(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
