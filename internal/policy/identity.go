package policy

import "context"

// Identity is the acting subject of a request: the authenticated user's id,
// role flags and granted permission codenames. A nil *Identity means the
// request is anonymous.
type Identity struct {
	ID        int64
	Username  string
	Staff     bool
	Superuser bool
	Perms     map[string]struct{}
}

// HasPerm reports whether the identity holds the named permission grant.
// Superusers implicitly hold every permission.
func (id *Identity) HasPerm(codename string) bool {
	if id == nil {
		return false
	}
	if id.Superuser {
		return true
	}
	_, ok := id.Perms[codename]
	return ok
}

// IsAuthenticated reports whether there is an acting identity at all.
func (id *Identity) IsAuthenticated() bool {
	return id != nil && id.ID != 0
}

type identityKey struct{}

// WithIdentity attaches the acting identity to the request context.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// FromContext returns the acting identity, or nil for anonymous requests.
func FromContext(ctx context.Context) *Identity {
	id, _ := ctx.Value(identityKey{}).(*Identity)
	return id
}
