package cpsdk

import (
	"context"
	"net/http"
	"net/url"
)

func preferencesPath(profileID string) string {
	return "/v1/profiles/" + url.PathEscape(profileID) + "/preferences"
}

func (c *SDKClient) CreatePreference(ctx context.Context, profileID string, req CreatePreferenceRequest) (*PreferenceResponse, error) {
	var out PreferenceResponse
	if err := c.doJSON(ctx, http.MethodPost, preferencesPath(profileID), req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SDKClient) GetPreference(ctx context.Context, profileID, id string) (*PreferenceResponse, error) {
	var out PreferenceResponse
	path := preferencesPath(profileID) + "/" + url.PathEscape(id)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListPreferences returns a profile's preferences ordered by type then index.
func (c *SDKClient) ListPreferences(ctx context.Context, profileID string) (*ListPreferencesResponse, error) {
	var out ListPreferencesResponse
	if err := c.doJSON(ctx, http.MethodGet, preferencesPath(profileID), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SDKClient) UpdatePreference(ctx context.Context, profileID, id string, req UpdatePreferenceRequest) (*PreferenceResponse, error) {
	var out PreferenceResponse
	path := preferencesPath(profileID) + "/" + url.PathEscape(id)
	if err := c.doJSON(ctx, http.MethodPut, path, req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SDKClient) DeletePreference(ctx context.Context, profileID, id string) error {
	path := preferencesPath(profileID) + "/" + url.PathEscape(id)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil, http.StatusNoContent)
}
