package http

import (
	"net/http"

	"github.com/rhythmiq/controlplane/internal/controlplane/domain"
	"github.com/rhythmiq/controlplane/internal/controlplane/service"
	"github.com/rhythmiq/controlplane/pkg/cpsdk"
	"github.com/rhythmiq/controlplane/pkg/httpx"
)

type InteractionsHandler struct {
	InteractionService *service.InteractionService
}

func toInteractionResponse(i domain.Interaction) cpsdk.InteractionResponse {
	return cpsdk.InteractionResponse{
		InteractionID: i.ID,
		ProfileID:     i.ProfileID,
		SongID:        i.SongID,
		Type:          string(i.Type),
		Rating:        i.Rating,
		Feedback:      i.Feedback,
		CreatedAt:     i.CreatedAt,
	}
}

// HandleCreate handles POST /v1/profiles/{id}/interactions
//
//	@Summary		Record Interaction
//	@Description	Records a LIKE, DISLIKE or SKIP for a track. Liked tracks are used as recommendation seeds.
//	@Tags			Interactions
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Profile id"
//	@Param			request	body		cpsdk.CreateInteractionRequest	true	"Interaction"
//	@Success		201		{object}	cpsdk.InteractionResponse
//	@Failure		400		{object}	cpsdk.ValidationErrorResponse
//	@Failure		404		{object}	cpsdk.ErrorResponse	"unknown profile"
//	@Router			/v1/profiles/{id}/interactions [post].
func (h *InteractionsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	req, err := httpx.BindJSON[cpsdk.CreateInteractionRequest](w, r)
	if err != nil {
		return
	}

	i, err := h.InteractionService.CreateInteraction(r.Context(), r.PathValue("id"), service.CreateInteractionInput{
		SongID:   req.SongID,
		Type:     domain.InteractionType(req.Type),
		Rating:   req.Rating,
		Feedback: req.Feedback,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toInteractionResponse(i))
}

// HandleList handles GET /v1/profiles/{id}/interactions
//
//	@Summary		List Interactions
//	@Tags			Interactions
//	@Produce		json
//	@Param			id		path		string	true	"Profile id"
//	@Param			song_id	query		string	false	"Only interactions with this track"
//	@Success		200		{object}	cpsdk.ListInteractionsResponse
//	@Failure		404		{object}	cpsdk.ErrorResponse
//	@Router			/v1/profiles/{id}/interactions [get].
func (h *InteractionsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	items, err := h.InteractionService.ListInteractions(r.Context(), r.PathValue("id"), r.URL.Query().Get("song_id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := cpsdk.ListInteractionsResponse{Interactions: make([]cpsdk.InteractionResponse, 0, len(items))}
	for _, i := range items {
		resp.Interactions = append(resp.Interactions, toInteractionResponse(i))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleGet handles GET /v1/profiles/{id}/interactions/{iid}
//
//	@Summary		Get Interaction
//	@Tags			Interactions
//	@Produce		json
//	@Param			id	path		string	true	"Profile id"
//	@Param			iid	path		string	true	"Interaction id"
//	@Success		200	{object}	cpsdk.InteractionResponse
//	@Failure		404	{object}	cpsdk.ErrorResponse
//	@Router			/v1/profiles/{id}/interactions/{iid} [get].
func (h *InteractionsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	i, err := h.InteractionService.GetInteraction(r.Context(), r.PathValue("id"), r.PathValue("iid"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toInteractionResponse(i))
}

// HandleDelete handles DELETE /v1/profiles/{id}/interactions/{iid}
//
//	@Summary		Delete Interaction
//	@Tags			Interactions
//	@Param			id	path	string	true	"Profile id"
//	@Param			iid	path	string	true	"Interaction id"
//	@Success		204	"No Content"
//	@Failure		404	{object}	cpsdk.ErrorResponse
//	@Router			/v1/profiles/{id}/interactions/{iid} [delete].
func (h *InteractionsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.InteractionService.DeleteInteraction(r.Context(), r.PathValue("id"), r.PathValue("iid")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
