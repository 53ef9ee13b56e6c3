package domain

import (
	"errors"
	"fmt"
)

// ErrorKind is the closed set of failures the authorization flow can surface.
type ErrorKind string

const (
	KindReplayRejected       ErrorKind = "replay_rejected"
	KindMissingConfiguration ErrorKind = "missing_configuration"
	KindUpstreamRejected     ErrorKind = "upstream_rejected"
	KindTransportError       ErrorKind = "transport_error"
	KindSessionNotFound      ErrorKind = "session_not_found"
)

// Error is the tagged error returned by the authorization flow and the
// upstream proxy. Compare with errors.Is against the sentinels below, or
// switch on KindOf.
type Error struct {
	Kind    ErrorKind
	Message string

	// UpstreamStatus and UpstreamBody are only set for KindUpstreamRejected.
	UpstreamStatus int
	UpstreamBody   string

	Err error
}

var (
	ErrReplayRejected       = &Error{Kind: KindReplayRejected, Message: "authorization code already redeemed"}
	ErrMissingConfiguration = &Error{Kind: KindMissingConfiguration, Message: "spotify client configuration unavailable"}
	ErrUpstreamRejected     = &Error{Kind: KindUpstreamRejected, Message: "upstream rejected the request"}
	ErrTransport            = &Error{Kind: KindTransportError, Message: "upstream unreachable"}
	ErrSessionNotFound      = &Error{Kind: KindSessionNotFound, Message: "session not found"}
)

func (e *Error) Error() string {
	msg := string(e.Kind)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.UpstreamStatus != 0 {
		msg += fmt.Sprintf(" (upstream status %d)", e.UpstreamStatus)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches on Kind so wrapped errors compare equal to the sentinels.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// KindOf returns the kind of the first *Error in err's chain, or "" if none.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func MissingConfiguration(msg string, err error) *Error {
	return &Error{Kind: KindMissingConfiguration, Message: msg, Err: err}
}

func UpstreamRejected(status int, body string) *Error {
	return &Error{
		Kind:           KindUpstreamRejected,
		Message:        "upstream rejected the request",
		UpstreamStatus: status,
		UpstreamBody:   body,
	}
}

func TransportError(err error) *Error {
	return &Error{Kind: KindTransportError, Message: "upstream unreachable", Err: err}
}
