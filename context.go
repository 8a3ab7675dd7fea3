package cookiekit

import "context"

type managerContextKey struct{}

// WithManager adds a cookie manager to the context.
func WithManager(ctx context.Context, m *Manager) context.Context {
	return context.WithValue(ctx, managerContextKey{}, m)
}

// FromContext retrieves the cookie manager from the context.
func FromContext(ctx context.Context) (*Manager, bool) {
	m, ok := ctx.Value(managerContextKey{}).(*Manager)
	return m, ok
}

// MustFromContext retrieves the cookie manager from the context or
// panics with ErrNotInitialized. Use it only below the Middleware.
func MustFromContext(ctx context.Context) *Manager {
	m, ok := FromContext(ctx)
	if !ok {
		panic(ErrNotInitialized)
	}
	return m
}
