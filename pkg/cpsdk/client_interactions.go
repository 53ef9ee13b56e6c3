package cpsdk

import (
	"context"
	"net/http"
	"net/url"
)

func interactionsPath(profileID string) string {
	return "/v1/profiles/" + url.PathEscape(profileID) + "/interactions"
}

func (c *SDKClient) CreateInteraction(ctx context.Context, profileID string, req CreateInteractionRequest) (*InteractionResponse, error) {
	var out InteractionResponse
	if err := c.doJSON(ctx, http.MethodPost, interactionsPath(profileID), req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SDKClient) GetInteraction(ctx context.Context, profileID, id string) (*InteractionResponse, error) {
	var out InteractionResponse
	path := interactionsPath(profileID) + "/" + url.PathEscape(id)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListInteractions returns a profile's interactions, newest first. A non-empty
// songID limits the list to that track.
func (c *SDKClient) ListInteractions(ctx context.Context, profileID, songID string) (*ListInteractionsResponse, error) {
	path := interactionsPath(profileID)
	if songID != "" {
		path += "?" + url.Values{"song_id": {songID}}.Encode()
	}

	var out ListInteractionsResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SDKClient) DeleteInteraction(ctx context.Context, profileID, id string) error {
	path := interactionsPath(profileID) + "/" + url.PathEscape(id)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil, http.StatusNoContent)
}
