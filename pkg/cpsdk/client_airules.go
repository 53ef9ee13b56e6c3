package cpsdk

import (
	"context"
	"net/http"
	"net/url"
)

func (c *SDKClient) CreateAiRule(ctx context.Context, req CreateAiRuleRequest) (*AiRuleResponse, error) {
	var out AiRuleResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v1/ai-rules", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SDKClient) GetAiRule(ctx context.Context, id string) (*AiRuleResponse, error) {
	var out AiRuleResponse
	if err := c.doJSON(ctx, http.MethodGet, "/v1/ai-rules/"+url.PathEscape(id), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAiRules returns all rules, or only active ones when activeOnly is set.
func (c *SDKClient) ListAiRules(ctx context.Context, activeOnly bool) (*ListAiRulesResponse, error) {
	path := "/v1/ai-rules"
	if activeOnly {
		path += "?active=true"
	}

	var out ListAiRulesResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SDKClient) UpdateAiRule(ctx context.Context, id string, req UpdateAiRuleRequest) (*AiRuleResponse, error) {
	var out AiRuleResponse
	if err := c.doJSON(ctx, http.MethodPut, "/v1/ai-rules/"+url.PathEscape(id), req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SDKClient) DeleteAiRule(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/v1/ai-rules/"+url.PathEscape(id), nil, nil, http.StatusNoContent)
}
