package domain

import "time"

// TokenPair is what the Spotify token endpoint hands back for a grant.
type TokenPair struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token,omitempty"` // authorization_code grant only
	TokenType    string        `json:"token_type,omitempty"`    // typically "Bearer"
	Scope        string        `json:"scope,omitempty"`         // space-delimited
	ExpiresIn    time.Duration `json:"expires_in"`
	IssuedAt     time.Time     `json:"issued_at"`
}

// ExpiresAt is the absolute expiry of the access token.
func (tp TokenPair) ExpiresAt() time.Time {
	return tp.IssuedAt.Add(tp.ExpiresIn)
}

// Session binds an opaque session id to the token pair obtained for it.
type Session struct {
	ID        string // UUIDv4
	Tokens    TokenPair
	CreatedAt time.Time
}

// ClientCredentials are the registered Spotify application credentials.
type ClientCredentials struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
}

// Missing returns the names of any unset fields.
func (c ClientCredentials) Missing() []string {
	var missing []string
	if c.ClientID == "" {
		missing = append(missing, "client_id")
	}
	if c.ClientSecret == "" {
		missing = append(missing, "client_secret")
	}
	if c.RedirectURI == "" {
		missing = append(missing, "redirect_uri")
	}
	return missing
}
