package cpsdk

import "time"

// ============================================================================
// Error Types
// ============================================================================

// ErrorResponse is the error body every endpoint returns.
type ErrorResponse struct {
	// Error is the machine readable code (e.g., "invalid_request", "session_not_found")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`

	// UpstreamStatus is the Spotify status code when Error is "upstream_rejected"
	UpstreamStatus int `json:"upstream_status,omitempty"`

	// UpstreamBody is the truncated Spotify response body when Error is "upstream_rejected"
	UpstreamBody string `json:"upstream_body,omitempty"`
}

// ValidationErrorResponse is returned when a JSON body fails validation.
type ValidationErrorResponse struct {
	Error            string            `json:"error"`
	ErrorDescription string            `json:"error_description"`
	Fields           map[string]string `json:"fields,omitempty"`
}

// ============================================================================
// Spotify Authorization Types
// ============================================================================

// LoginResponse is returned by GET /v1/spotify/login?format=json.
type LoginResponse struct {
	// AuthorizeURL is the Spotify consent page the browser should visit
	AuthorizeURL string `json:"authorize_url"`

	// State is the one-shot value the callback must echo back
	State string `json:"state"`
}

// CallbackResponse is returned by the callback when no post-login redirect is configured.
type CallbackResponse struct {
	// SessionID names the server-side session holding the Spotify tokens
	SessionID string `json:"session_id"`

	// ExpiresIn is the access token lifetime in seconds
	ExpiresIn int `json:"expires_in"`
}

// ============================================================================
// Profile Types
// ============================================================================

type ProfileResponse struct {
	ProfileID   string    `json:"profile_id"`
	Email       string    `json:"email"`
	Username    string    `json:"username"`
	FirstName   string    `json:"first_name,omitempty"`
	LastName    string    `json:"last_name,omitempty"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	HasPassword bool      `json:"has_password"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateProfileRequest creates a listener profile. Password is optional.
type CreateProfileRequest struct {
	Email       string `json:"email" validate:"required,email,max=254"`
	Username    string `json:"username" validate:"required,min=3,max=32"`
	FirstName   string `json:"first_name,omitempty" validate:"max=64"`
	LastName    string `json:"last_name,omitempty" validate:"max=64"`
	PhoneNumber string `json:"phone_number,omitempty" validate:"max=32"`
	Password    string `json:"password,omitempty" validate:"omitempty,min=8,max=128"`
}

// UpdateProfileRequest is a partial update. Omitted fields are left unchanged.
type UpdateProfileRequest struct {
	Email       *string `json:"email,omitempty" validate:"omitempty,email,max=254"`
	Username    *string `json:"username,omitempty" validate:"omitempty,min=3,max=32"`
	FirstName   *string `json:"first_name,omitempty" validate:"omitempty,max=64"`
	LastName    *string `json:"last_name,omitempty" validate:"omitempty,max=64"`
	PhoneNumber *string `json:"phone_number,omitempty" validate:"omitempty,max=32"`
	Password    *string `json:"password,omitempty" validate:"omitempty,min=8,max=128"`
}

type ListProfilesResponse struct {
	Profiles []ProfileResponse `json:"profiles"`
}

// ============================================================================
// Preference Types
// ============================================================================

type PreferenceResponse struct {
	PreferenceID string    `json:"preference_id"`
	ProfileID    string    `json:"profile_id"`
	Type         string    `json:"type"`
	Value        string    `json:"value"`
	Index        int       `json:"index"`
	Weight       float64   `json:"weight"`
	IsUserSet    bool      `json:"is_user_set"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreatePreferenceRequest adds a preference to a profile.
// Weight defaults to 1 and IsUserSet to true when omitted.
type CreatePreferenceRequest struct {
	Type      string   `json:"type" validate:"required,oneof=GENRE TEMPO INSTRUMENT ARTIST"`
	Value     string   `json:"value" validate:"required,max=128"`
	Index     int      `json:"index" validate:"gte=0"`
	Weight    *float64 `json:"weight,omitempty" validate:"omitempty,gte=0,lte=1"`
	IsUserSet *bool    `json:"is_user_set,omitempty"`
}

type UpdatePreferenceRequest struct {
	Type      *string  `json:"type,omitempty" validate:"omitempty,oneof=GENRE TEMPO INSTRUMENT ARTIST"`
	Value     *string  `json:"value,omitempty" validate:"omitempty,max=128"`
	Index     *int     `json:"index,omitempty" validate:"omitempty,gte=0"`
	Weight    *float64 `json:"weight,omitempty" validate:"omitempty,gte=0,lte=1"`
	IsUserSet *bool    `json:"is_user_set,omitempty"`
}

type ListPreferencesResponse struct {
	Preferences []PreferenceResponse `json:"preferences"`
}

// ============================================================================
// Interaction Types
// ============================================================================

type InteractionResponse struct {
	InteractionID string    `json:"interaction_id"`
	ProfileID     string    `json:"profile_id"`
	SongID        string    `json:"song_id"`
	Type          string    `json:"type"`
	Rating        *float64  `json:"rating,omitempty"`
	Feedback      string    `json:"feedback,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreateInteractionRequest records a reaction to a Spotify track.
type CreateInteractionRequest struct {
	SongID   string   `json:"song_id" validate:"required,max=64"`
	Type     string   `json:"type" validate:"required,oneof=LIKE DISLIKE SKIP"`
	Rating   *float64 `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	Feedback string   `json:"feedback,omitempty" validate:"max=512"`
}

type ListInteractionsResponse struct {
	Interactions []InteractionResponse `json:"interactions"`
}

// ============================================================================
// AI Rule Types
// ============================================================================

type AiRuleResponse struct {
	RuleID      string    `json:"rule_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	Content     string    `json:"content"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateAiRuleRequest creates a rule. IsActive defaults to true.
type CreateAiRuleRequest struct {
	Name        string `json:"name" validate:"required,max=128"`
	Description string `json:"description,omitempty" validate:"max=512"`
	Category    string `json:"category,omitempty" validate:"max=64"`
	Content     string `json:"content" validate:"required,max=4096"`
	IsActive    *bool  `json:"is_active,omitempty"`
}

type UpdateAiRuleRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=128"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=512"`
	Category    *string `json:"category,omitempty" validate:"omitempty,max=64"`
	Content     *string `json:"content,omitempty" validate:"omitempty,max=4096"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

type ListAiRulesResponse struct {
	Rules []AiRuleResponse `json:"rules"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains readiness check results for critical dependencies (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks represents the status of critical service dependencies.
type HealthChecks struct {
	// Database indicates the database connection status
	Database string `json:"database"`

	// Credentials indicates whether the Spotify application credentials resolve
	Credentials string `json:"credentials"`

	// Sessions is the number of live sessions held in memory
	Sessions int `json:"sessions"`
}
