package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ResourceStore defines persistence operations for resources.
type ResourceStore interface {
	Create(ctx context.Context, resource Resource) (Resource, error)
	GetByID(ctx context.Context, id uuid.UUID) (Resource, error)
	GetByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]Resource, error)
	Update(ctx context.Context, id uuid.UUID, patch ResourcePatch, updatedAt time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Resource represents a user-owned document.
type Resource struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedBy   uuid.UUID `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateResourceParams contains parameters to create a resource.
type CreateResourceParams struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ResourcePatch is a partial update. Nil fields keep their stored value.
type ResourcePatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// Apply returns a copy of r with the non-nil patch fields set.
func (p ResourcePatch) Apply(r Resource) Resource {
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	return r
}
