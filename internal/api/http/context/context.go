package context

import (
	"context"

	"github.com/google/uuid"

	"github.com/dtroode/resource-server/internal/model"
)

type identityKey struct{}

// Manager stores the authenticated identity in request contexts.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

var _ model.ContextManager = (*Manager)(nil)

// SetIdentityToContext returns a copy of ctx carrying identity.
func (m *Manager) SetIdentityToContext(ctx context.Context, identity model.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// GetIdentityFromContext returns the identity set by SetIdentityToContext.
// It reports false when none is present or the identity has no user ID.
func (m *Manager) GetIdentityFromContext(ctx context.Context) (model.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(model.Identity)
	if !ok || identity.ID == uuid.Nil {
		return model.Identity{}, false
	}

	return identity, true
}
