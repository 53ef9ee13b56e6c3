package cpsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error codes written in ErrorResponse.Error.
const (
	ErrorCodeInvalidRequest       = "invalid_request"
	ErrorCodeValidationFailed     = "validation_failed"
	ErrorCodeInvalidState         = "invalid_state"
	ErrorCodeAccessDenied         = "access_denied"
	ErrorCodeNotFound             = "not_found"
	ErrorCodeConflict             = "conflict"
	ErrorCodeNoPreferences        = "no_preferences"
	ErrorCodeServerError          = "server_error"
	ErrorCodeReplayRejected       = "replay_rejected"
	ErrorCodeMissingConfiguration = "missing_configuration"
	ErrorCodeUpstreamRejected     = "upstream_rejected"
	ErrorCodeTransportError       = "transport_error"
	ErrorCodeSessionNotFound      = "session_not_found"
	ErrorCodeRateLimitExceeded    = "rate_limit_exceeded"
)

// APIError is a non-2xx response from the control plane.
type APIError struct {
	StatusCode     int
	Code           string
	Description    string
	UpstreamStatus int
	UpstreamBody   string
	Fields         map[string]string
}

func (e *APIError) Error() string {
	if e.UpstreamStatus != 0 {
		return fmt.Sprintf("%s: %s (upstream status %d)", e.Code, e.Description, e.UpstreamStatus)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// parseErrorResponse turns a non-2xx response into an *APIError.
// Returns nil if the response indicates success (2xx status code).
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp struct {
		ErrorResponse
		Fields map[string]string `json:"fields"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:     resp.StatusCode,
			Code:           errResp.Error,
			Description:    errResp.ErrorDescription,
			UpstreamStatus: errResp.UpstreamStatus,
			UpstreamBody:   errResp.UpstreamBody,
			Fields:         errResp.Fields,
		}
	}

	// Fallback: create generic error from status code
	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
