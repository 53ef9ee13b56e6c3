package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rhythmiq/controlplane/internal/controlplane/domain"
	"github.com/rhythmiq/controlplane/pkg/cryptox"
	"github.com/rhythmiq/controlplane/pkg/slogx"
)

// CodeExchanger is the token endpoint operation the exchanger depends on.
type CodeExchanger interface {
	ExchangeAuthorizationCode(ctx context.Context, code string, creds domain.ClientCredentials) (domain.TokenPair, error)
}

// Exchanger redeems an authorization code for a session:
//
//	Received -> Checked -> Exchanging -> Stored -> Completed
//	Received -> Checked -> Rejected(Replay)
//	Received -> Checked -> Exchanging -> Failed(Upstream|Transport|MissingConfiguration)
//
// A code is marked before anything else happens and stays marked whatever the
// outcome, unless ReleaseOnTransportError is set and the token endpoint could
// not be reached.
type Exchanger struct {
	Credentials CredentialSource
	Tokens      CodeExchanger
	Replay      *ReplayGuard
	Sessions    *SessionStore

	ReleaseOnTransportError bool

	// NewSessionID defaults to uuid.NewString.
	NewSessionID func() string
}

// Exchange runs the callback flow for code and returns the new session.
func (e *Exchanger) Exchange(ctx context.Context, code string) (domain.Session, error) {
	if code == "" {
		return domain.Session{}, fmt.Errorf("%w: code is required", ErrInvalidInput)
	}

	l := slogx.FromContext(ctx).With("code_fp", cryptox.Fingerprint(code))

	// Checked
	if !e.Replay.TryMark(code) {
		l.Warn("authorization code replay rejected")
		return domain.Session{}, domain.ErrReplayRejected
	}

	// Exchanging
	creds, err := resolveCredentials(ctx, e.Credentials)
	if err != nil {
		l.Error("spotify credentials unavailable", "error", err)
		return domain.Session{}, err
	}

	tokens, err := e.Tokens.ExchangeAuthorizationCode(ctx, code, creds)
	if err != nil {
		if e.ReleaseOnTransportError && ctx.Err() == nil && errors.Is(err, domain.ErrTransport) {
			e.Replay.release(code)
			l.Warn("token endpoint unreachable, code released for retry", "error", err)
			return domain.Session{}, err
		}
		l.Warn("authorization code exchange failed", "kind", domain.KindOf(err), "error", err)
		return domain.Session{}, err
	}

	// an abandoned exchange keeps the code burned and creates no session
	if err := ctx.Err(); err != nil {
		l.Warn("authorization code exchange abandoned by caller", "error", err)
		return domain.Session{}, domain.TransportError(err)
	}

	// Stored
	newID := e.NewSessionID
	if newID == nil {
		newID = uuid.NewString
	}
	sess := e.Sessions.Put(newID(), tokens)

	l.Info("spotify session created",
		"session_fp", cryptox.Fingerprint(sess.ID),
		"expires_in", tokens.ExpiresIn,
	)
	return sess, nil
}
