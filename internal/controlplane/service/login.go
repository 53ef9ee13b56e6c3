package service

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/rhythmiq/controlplane/internal/controlplane/domain"
	"github.com/rhythmiq/controlplane/pkg/slogx"
)

// DefaultScopes are requested when none are configured.
var DefaultScopes = []string{
	"user-read-private",
	"user-read-email",
	"user-library-read",
	"playlist-read-private",
}

// AuthURLBuilder renders the provider consent URL.
type AuthURLBuilder interface {
	AuthCodeURL(creds domain.ClientCredentials, state string, scopes []string) string
}

// LoginService starts the authorization flow and validates the state that
// comes back on the callback.
type LoginService struct {
	Credentials CredentialSource
	URLs        AuthURLBuilder
	States      *StateStore
	Scopes      []string
}

// Begin issues a state and returns the consent URL carrying it.
func (s *LoginService) Begin(ctx context.Context) (authorizeURL, state string, err error) {
	creds, err := resolveCredentials(ctx, s.Credentials)
	if err != nil {
		slogx.FromContext(ctx).Error("spotify credentials unavailable", "error", err)
		return "", "", err
	}

	state, err = s.States.Issue()
	if err != nil {
		return "", "", fmt.Errorf("issue state: %w", err)
	}

	scopes := s.Scopes
	if len(scopes) == 0 {
		scopes = DefaultScopes
	}
	return s.URLs.AuthCodeURL(creds, state, scopes), state, nil
}

// VerifyState checks a callback's state. The state must match the cookie set
// on the browser that started the login, and is then consumed from the store.
// A missing cookie leaves the state unconsumed. Any failure yields ErrInvalidState.
func (s *LoginService) VerifyState(ctx context.Context, state, cookieState string) error {
	if state == "" {
		return fmt.Errorf("%w: state is required", ErrInvalidState)
	}
	if cookieState == "" {
		slogx.FromContext(ctx).Warn("callback without state cookie")
		return fmt.Errorf("%w: state cookie is missing", ErrInvalidState)
	}
	if subtle.ConstantTimeCompare([]byte(state), []byte(cookieState)) != 1 {
		slogx.FromContext(ctx).Warn("callback state does not match cookie")
		return fmt.Errorf("%w: state does not match", ErrInvalidState)
	}
	if !s.States.Consume(state) {
		slogx.FromContext(ctx).Warn("callback state unknown or expired")
		return fmt.Errorf("%w: state unknown or expired", ErrInvalidState)
	}
	return nil
}
