package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/google/uuid"

	apiErrors "github.com/dtroode/resource-server/internal/api/errors"
	"github.com/dtroode/resource-server/internal/logger"
	"github.com/dtroode/resource-server/internal/model"
)

// Resource implements owner-scoped CRUD over resources.
type Resource struct {
	store  model.ResourceStore
	logger *logger.Logger
	now    func() time.Time
}

func NewResource(store model.ResourceStore, logger *logger.Logger) *Resource {
	return &Resource{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

func (s *Resource) Create(ctx context.Context, ownerID uuid.UUID, params model.CreateResourceParams) (model.Resource, error) {
	err := validation.Errors{
		"title":       validation.Validate(strings.TrimSpace(params.Title), validation.Required),
		"description": validation.Validate(strings.TrimSpace(params.Description), validation.Required),
	}.Filter()
	if err != nil {
		return model.Resource{}, apiErrors.NewErrValidation("Title and description are required", err)
	}

	now := s.now().Truncate(time.Microsecond)
	resource := model.Resource{
		ID:          uuid.New(),
		Title:       params.Title,
		Description: params.Description,
		CreatedBy:   ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	saved, err := s.store.Create(ctx, resource)
	if err != nil {
		s.logger.Error("Resource service: failed to create resource",
			"owner_id", ownerID,
			"error", err.Error())
		return model.Resource{}, fmt.Errorf("failed to create resource: %w", err)
	}

	s.logger.Info("Resource service: resource created",
		"owner_id", ownerID,
		"resource_id", saved.ID)

	return saved, nil
}

// ListMine returns the owner's resources, newest first. Never nil.
func (s *Resource) ListMine(ctx context.Context, ownerID uuid.UUID) ([]model.Resource, error) {
	resources, err := s.store.GetByOwnerID(ctx, ownerID)
	if err != nil {
		s.logger.Error("Resource service: failed to list resources",
			"owner_id", ownerID,
			"error", err.Error())
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}

	if resources == nil {
		resources = []model.Resource{}
	}

	return resources, nil
}

func (s *Resource) GetOne(ctx context.Context, ownerID uuid.UUID, id string) (model.Resource, error) {
	return s.getOwned(ctx, ownerID, id)
}

// Update applies the non-nil patch fields and returns the stored result.
func (s *Resource) Update(ctx context.Context, ownerID uuid.UUID, id string, patch model.ResourcePatch) (model.Resource, error) {
	existing, err := s.getOwned(ctx, ownerID, id)
	if err != nil {
		return model.Resource{}, err
	}

	// Postgres keeps microseconds, so compare at that precision.
	updatedAt := s.now().Truncate(time.Microsecond)
	if !updatedAt.After(existing.UpdatedAt) {
		updatedAt = existing.UpdatedAt.Add(time.Microsecond)
	}

	err = s.store.Update(ctx, existing.ID, patch, updatedAt)
	if errors.Is(err, model.ErrNotFound) {
		return model.Resource{}, apiErrors.NewErrResourceNotFound(id)
	}
	if err != nil {
		s.logger.Error("Resource service: failed to update resource",
			"resource_id", existing.ID,
			"error", err.Error())
		return model.Resource{}, fmt.Errorf("failed to update resource: %w", err)
	}

	updated, err := s.store.GetByID(ctx, existing.ID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Resource{}, apiErrors.NewErrResourceNotFound(id)
	}
	if err != nil {
		return model.Resource{}, fmt.Errorf("failed to reload resource: %w", err)
	}

	s.logger.Info("Resource service: resource updated",
		"owner_id", ownerID,
		"resource_id", existing.ID)

	return updated, nil
}

func (s *Resource) Delete(ctx context.Context, ownerID uuid.UUID, id string) error {
	existing, err := s.getOwned(ctx, ownerID, id)
	if err != nil {
		return err
	}

	err = s.store.Delete(ctx, existing.ID)
	if errors.Is(err, model.ErrNotFound) {
		return apiErrors.NewErrResourceNotFound(id)
	}
	if err != nil {
		s.logger.Error("Resource service: failed to delete resource",
			"resource_id", existing.ID,
			"error", err.Error())
		return fmt.Errorf("failed to delete resource: %w", err)
	}

	s.logger.Info("Resource service: resource deleted",
		"owner_id", ownerID,
		"resource_id", existing.ID)

	return nil
}

// getOwned loads the resource and checks that ownerID created it.
func (s *Resource) getOwned(ctx context.Context, ownerID uuid.UUID, id string) (model.Resource, error) {
	resourceID, err := uuid.Parse(id)
	if err != nil {
		return model.Resource{}, apiErrors.NewErrResourceNotFound(id)
	}

	resource, err := s.store.GetByID(ctx, resourceID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Resource{}, apiErrors.NewErrResourceNotFound(id)
	}
	if err != nil {
		s.logger.Error("Resource service: failed to get resource",
			"resource_id", resourceID,
			"error", err.Error())
		return model.Resource{}, fmt.Errorf("failed to get resource: %w", err)
	}

	if !authorize(resource, ownerID) {
		s.logger.Info("Resource service: access denied",
			"owner_id", ownerID,
			"resource_id", resourceID)
		return model.Resource{}, apiErrors.NewErrAccessDenied(resourceID)
	}

	return resource, nil
}

func authorize(resource model.Resource, ownerID uuid.UUID) bool {
	return resource.CreatedBy == ownerID
}
