package http

import (
	"net/http"
	"strconv"

	"github.com/rhythmiq/controlplane/internal/controlplane/domain"
	"github.com/rhythmiq/controlplane/internal/controlplane/service"
	"github.com/rhythmiq/controlplane/pkg/cpsdk"
	"github.com/rhythmiq/controlplane/pkg/httpx"
)

type AiRulesHandler struct {
	AiRuleService *service.AiRuleService
}

func toAiRuleResponse(r domain.AiRule) cpsdk.AiRuleResponse {
	return cpsdk.AiRuleResponse{
		RuleID:      r.ID,
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Content:     r.Content,
		IsActive:    r.IsActive,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// HandleCreate handles POST /v1/ai-rules
//
//	@Summary		Create AI Rule
//	@Tags			AI Rules
//	@Accept			json
//	@Produce		json
//	@Param			request	body		cpsdk.CreateAiRuleRequest	true	"Rule"
//	@Success		201		{object}	cpsdk.AiRuleResponse
//	@Failure		400		{object}	cpsdk.ValidationErrorResponse
//	@Router			/v1/ai-rules [post].
func (h *AiRulesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	req, err := httpx.BindJSON[cpsdk.CreateAiRuleRequest](w, r)
	if err != nil {
		return
	}

	rule, err := h.AiRuleService.CreateAiRule(r.Context(), service.CreateAiRuleInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Content:     req.Content,
		IsActive:    req.IsActive,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toAiRuleResponse(rule))
}

// HandleList handles GET /v1/ai-rules
//
//	@Summary		List AI Rules
//	@Tags			AI Rules
//	@Produce		json
//	@Param			active	query		bool	false	"Only active rules"
//	@Success		200		{object}	cpsdk.ListAiRulesResponse
//	@Router			/v1/ai-rules [get].
func (h *AiRulesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	var activeOnly bool
	if raw := r.URL.Query().Get("active"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			writeErrorCode(w, http.StatusBadRequest, cpsdk.ErrorCodeInvalidRequest, "active must be a boolean")
			return
		}
		activeOnly = v
	}

	rules, err := h.AiRuleService.ListAiRules(r.Context(), activeOnly)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := cpsdk.ListAiRulesResponse{Rules: make([]cpsdk.AiRuleResponse, 0, len(rules))}
	for _, rule := range rules {
		resp.Rules = append(resp.Rules, toAiRuleResponse(rule))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleGet handles GET /v1/ai-rules/{id}
//
//	@Summary		Get AI Rule
//	@Tags			AI Rules
//	@Produce		json
//	@Param			id	path		string	true	"Rule id"
//	@Success		200	{object}	cpsdk.AiRuleResponse
//	@Failure		404	{object}	cpsdk.ErrorResponse
//	@Router			/v1/ai-rules/{id} [get].
func (h *AiRulesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	rule, err := h.AiRuleService.GetAiRule(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toAiRuleResponse(rule))
}

// HandleUpdate handles PUT /v1/ai-rules/{id}
//
//	@Summary		Update AI Rule
//	@Tags			AI Rules
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Rule id"
//	@Param			request	body		cpsdk.UpdateAiRuleRequest	true	"Fields to change"
//	@Success		200		{object}	cpsdk.AiRuleResponse
//	@Failure		404		{object}	cpsdk.ErrorResponse
//	@Router			/v1/ai-rules/{id} [put].
func (h *AiRulesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	req, err := httpx.BindJSON[cpsdk.UpdateAiRuleRequest](w, r)
	if err != nil {
		return
	}

	rule, err := h.AiRuleService.UpdateAiRule(r.Context(), r.PathValue("id"), service.UpdateAiRuleInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Content:     req.Content,
		IsActive:    req.IsActive,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toAiRuleResponse(rule))
}

// HandleDelete handles DELETE /v1/ai-rules/{id}
//
//	@Summary		Delete AI Rule
//	@Tags			AI Rules
//	@Param			id	path	string	true	"Rule id"
//	@Success		204	"No Content"
//	@Failure		404	{object}	cpsdk.ErrorResponse
//	@Router			/v1/ai-rules/{id} [delete].
func (h *AiRulesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.AiRuleService.DeleteAiRule(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
