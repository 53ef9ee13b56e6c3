package httpx

import (
	"context"
	"net/http"
)

type ctxKey string

// CtxKeySessionID holds the resolved session id once a handler has looked it up.
const CtxKeySessionID ctxKey = "session_id"

// SessionCookieName is the cookie carrying the opaque session id.
const SessionCookieName = "rhythmiq_session"

// WithSessionID stores id on ctx.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CtxKeySessionID, id)
}

// SessionIDFromRequest returns the session id named by the request. The
// sessionId query parameter wins over the session cookie, matching what
// existing frontends send.
func SessionIDFromRequest(r *http.Request) string {
	if id, ok := r.Context().Value(CtxKeySessionID).(string); ok && id != "" {
		return id
	}
	if id := r.URL.Query().Get("sessionId"); id != "" {
		return id
	}
	if c, err := r.Cookie(SessionCookieName); err == nil {
		return c.Value
	}
	return ""
}
