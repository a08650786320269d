package auth

import "context"

// Session is the authenticated caller's identity, resolved once from the
// bearer token by the auth middleware and passed through the request context.
type Session struct {
	UserID string
	Email  string
	Role   string
}

type sessionKey struct{}

// NewContext returns a context carrying the session.
func NewContext(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFromContext extracts the session placed by the auth middleware.
func SessionFromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(Session)
	return s, ok
}
