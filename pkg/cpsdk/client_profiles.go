package cpsdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// CreateProfile creates a listener profile.
func (c *SDKClient) CreateProfile(ctx context.Context, req CreateProfileRequest) (*ProfileResponse, error) {
	var out ProfileResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v1/profiles", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetProfile fetches a profile by id.
func (c *SDKClient) GetProfile(ctx context.Context, id string) (*ProfileResponse, error) {
	var out ProfileResponse
	if err := c.doJSON(ctx, http.MethodGet, "/v1/profiles/"+url.PathEscape(id), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListProfiles pages through profiles ordered by creation time.
func (c *SDKClient) ListProfiles(ctx context.Context, limit, offset int) (*ListProfilesResponse, error) {
	path := fmt.Sprintf("/v1/profiles?limit=%d&offset=%d", limit, offset)

	var out ListProfilesResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile applies a partial update.
func (c *SDKClient) UpdateProfile(ctx context.Context, id string, req UpdateProfileRequest) (*ProfileResponse, error) {
	var out ProfileResponse
	if err := c.doJSON(ctx, http.MethodPut, "/v1/profiles/"+url.PathEscape(id), req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProfile removes a profile and its preferences.
func (c *SDKClient) DeleteProfile(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/v1/profiles/"+url.PathEscape(id), nil, nil, http.StatusNoContent)
}
