package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	apiErrors "github.com/dtroode/resource-server/internal/api/errors"
	"github.com/dtroode/resource-server/internal/api/http/response"
	"github.com/dtroode/resource-server/internal/logger"
	"github.com/dtroode/resource-server/internal/model"
)

// ResourceService defines owner-scoped resource operations.
type ResourceService interface {
	Create(ctx context.Context, ownerID uuid.UUID, params model.CreateResourceParams) (model.Resource, error)
	ListMine(ctx context.Context, ownerID uuid.UUID) ([]model.Resource, error)
	GetOne(ctx context.Context, ownerID uuid.UUID, id string) (model.Resource, error)
	Update(ctx context.Context, ownerID uuid.UUID, id string, patch model.ResourcePatch) (model.Resource, error)
	Delete(ctx context.Context, ownerID uuid.UUID, id string) error
}

// Resource handles the protected /api/resources endpoints.
type Resource struct {
	resourceService ResourceService
	contextManager  model.ContextManager
	response        *response.Writer
	logger          *logger.Logger
}

// NewResource creates a new Resource handler.
func NewResource(
	resourceService ResourceService,
	contextManager model.ContextManager,
	response *response.Writer,
	logger *logger.Logger,
) *Resource {
	return &Resource{
		resourceService: resourceService,
		contextManager:  contextManager,
		response:        response,
		logger:          logger,
	}
}

// caller returns the identity placed in the context by the authenticate middleware.
func (h *Resource) caller(w http.ResponseWriter, r *http.Request) (model.Identity, bool) {
	identity, ok := h.contextManager.GetIdentityFromContext(r.Context())
	if !ok {
		h.response.Error(w, apiErrors.NewErrMissingAuthorizationToken())
		return model.Identity{}, false
	}
	return identity, true
}

func (h *Resource) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.caller(w, r)
	if !ok {
		return
	}

	var params model.CreateResourceParams
	if err := decodeBody(w, r, &params); err != nil {
		h.response.Error(w, err)
		return
	}

	resource, err := h.resourceService.Create(r.Context(), identity.ID, params)
	if err != nil {
		h.response.Error(w, err)
		return
	}

	h.response.Success(w, http.StatusCreated, "Resource created successfully", resource)
}

func (h *Resource) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.caller(w, r)
	if !ok {
		return
	}

	resources, err := h.resourceService.ListMine(r.Context(), identity.ID)
	if err != nil {
		h.response.Error(w, err)
		return
	}

	h.response.Success(w, http.StatusOK, "Resources retrieved successfully", resources)
}

func (h *Resource) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.caller(w, r)
	if !ok {
		return
	}

	resource, err := h.resourceService.GetOne(r.Context(), identity.ID, mux.Vars(r)["id"])
	if err != nil {
		h.response.Error(w, err)
		return
	}

	h.response.Success(w, http.StatusOK, "Resource retrieved successfully", resource)
}

func (h *Resource) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.caller(w, r)
	if !ok {
		return
	}

	var patch model.ResourcePatch
	if err := decodeBody(w, r, &patch); err != nil {
		h.response.Error(w, err)
		return
	}

	resource, err := h.resourceService.Update(r.Context(), identity.ID, mux.Vars(r)["id"], patch)
	if err != nil {
		h.response.Error(w, err)
		return
	}

	h.response.Success(w, http.StatusOK, "Resource updated successfully", resource)
}

func (h *Resource) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.caller(w, r)
	if !ok {
		return
	}

	if err := h.resourceService.Delete(r.Context(), identity.ID, mux.Vars(r)["id"]); err != nil {
		h.response.Error(w, err)
		return
	}

	h.response.Success(w, http.StatusOK, "Resource deleted successfully", nil)
}
