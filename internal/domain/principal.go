package domain

import "context"

// Principal is the authenticated identity attached to a request. It is
// derived from a user at login, carried in the session token, and passed
// explicitly to every scoped operation. It is never persisted.
type Principal struct {
	UserID     string
	Role       Role
	EmployeeID *string
}

// SelfEmployeeID returns the linked employee id, or "" when the principal
// has no employee record. The empty string never matches a stored id, so
// scope queries can use it directly.
func (p Principal) SelfEmployeeID() string {
	if p.EmployeeID == nil {
		return ""
	}
	return *p.EmployeeID
}

type principalKey struct{}

// WithPrincipal stores a Principal in the context. Only the HTTP layer uses
// this to hand the principal from middleware to handlers; services take the
// principal as an explicit argument.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext extracts the Principal from the context.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}
