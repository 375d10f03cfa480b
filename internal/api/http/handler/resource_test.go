package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apiErrors "github.com/dtroode/resource-server/internal/api/errors"
	httpContext "github.com/dtroode/resource-server/internal/api/http/context"
	"github.com/dtroode/resource-server/internal/mocks"
	"github.com/dtroode/resource-server/internal/model"
	"github.com/dtroode/resource-server/internal/testutil"
)

type resourceFixture struct {
	svc      *mocks.ResourceService
	handler  *Resource
	ctxMgr   *httpContext.Manager
	identity model.Identity
}

func newResourceFixture(t *testing.T) resourceFixture {
	t.Helper()
	svc := mocks.NewResourceService(t)
	ctxMgr := httpContext.NewManager()
	return resourceFixture{
		svc:      svc,
		handler:  NewResource(svc, ctxMgr, newWriter(), testutil.MakeNoopLogger()),
		ctxMgr:   ctxMgr,
		identity: model.Identity{ID: uuid.New(), Email: "a@b.c", Name: "A"},
	}
}

func (f resourceFixture) request(method, target, body, id string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req = req.WithContext(f.ctxMgr.SetIdentityToContext(req.Context(), f.identity))
	if id != "" {
		req = mux.SetURLVars(req, map[string]string{"id": id})
	}
	return req
}

func TestResource_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		f := newResourceFixture(t)
		params := model.CreateResourceParams{Title: "Test", Description: "D"}
		created := model.Resource{ID: uuid.New(), Title: "Test", Description: "D", CreatedBy: f.identity.ID, CreatedAt: time.Now(), UpdatedAt: time.Now()}
		f.svc.On("Create", mock.Anything, f.identity.ID, params).Return(created, nil).Once()

		rec := httptest.NewRecorder()
		f.handler.Create(rec, f.request(http.MethodPost, "/api/resources", `{"title":"Test","description":"D"}`, ""))

		assert.Equal(t, http.StatusCreated, rec.Code)
		body := decodeEnvelope(t, rec)
		assert.Equal(t, "Resource created successfully", body["message"])
		data := body["data"].(map[string]any)
		assert.Equal(t, f.identity.ID.String(), data["createdBy"])
		assert.Equal(t, created.ID.String(), data["id"])
	})

	t.Run("validation", func(t *testing.T) {
		f := newResourceFixture(t)
		f.svc.On("Create", mock.Anything, f.identity.ID, model.CreateResourceParams{Title: "Test"}).
			Return(model.Resource{}, apiErrors.NewErrValidation("Title and description are required", nil)).Once()

		rec := httptest.NewRecorder()
		f.handler.Create(rec, f.request(http.MethodPost, "/api/resources", `{"title":"Test"}`, ""))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Title and description are required", decodeEnvelope(t, rec)["message"])
	})

	t.Run("no identity in context", func(t *testing.T) {
		f := newResourceFixture(t)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/resources", strings.NewReader(`{}`))
		f.handler.Create(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestResource_List(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		f := newResourceFixture(t)
		f.svc.On("ListMine", mock.Anything, f.identity.ID).Return([]model.Resource{}, nil).Once()

		rec := httptest.NewRecorder()
		f.handler.List(rec, f.request(http.MethodGet, "/api/resources", "", ""))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true,"message":"Resources retrieved successfully","data":[]}`, rec.Body.String())
	})

	t.Run("store failure", func(t *testing.T) {
		f := newResourceFixture(t)
		f.svc.On("ListMine", mock.Anything, f.identity.ID).Return(nil, assert.AnError).Once()

		rec := httptest.NewRecorder()
		f.handler.List(rec, f.request(http.MethodGet, "/api/resources", "", ""))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestResource_Get(t *testing.T) {
	id := uuid.New().String()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"found", nil, http.StatusOK, "Resource retrieved successfully"},
		{"forbidden", apiErrors.NewErrAccessDenied(uuid.New()), http.StatusForbidden, "Access denied"},
		{"missing", apiErrors.NewErrResourceNotFound(id), http.StatusNotFound, "Resource not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newResourceFixture(t)
			f.svc.On("GetOne", mock.Anything, f.identity.ID, id).
				Return(model.Resource{CreatedBy: f.identity.ID}, tt.err).Once()

			rec := httptest.NewRecorder()
			f.handler.Get(rec, f.request(http.MethodGet, "/api/resources/"+id, "", id))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, decodeEnvelope(t, rec)["message"])
		})
	}
}

func TestResource_Update(t *testing.T) {
	id := uuid.New().String()

	t.Run("partial patch", func(t *testing.T) {
		f := newResourceFixture(t)
		f.svc.On("Update", mock.Anything, f.identity.ID, id, mock.MatchedBy(func(p model.ResourcePatch) bool {
			return p.Title != nil && *p.Title == "Renamed" && p.Description == nil
		})).Return(model.Resource{Title: "Renamed", Description: "D"}, nil).Once()

		rec := httptest.NewRecorder()
		f.handler.Update(rec, f.request(http.MethodPut, "/api/resources/"+id, `{"title":"Renamed"}`, id))

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeEnvelope(t, rec)
		assert.Equal(t, "Resource updated successfully", body["message"])
		assert.Equal(t, "D", body["data"].(map[string]any)["description"])
	})

	t.Run("bad body", func(t *testing.T) {
		f := newResourceFixture(t)

		rec := httptest.NewRecorder()
		f.handler.Update(rec, f.request(http.MethodPut, "/api/resources/"+id, `[1,2]`, id))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid request body", decodeEnvelope(t, rec)["message"])
	})
}

func TestResource_Delete(t *testing.T) {
	id := uuid.New().String()

	t.Run("deleted", func(t *testing.T) {
		f := newResourceFixture(t)
		f.svc.On("Delete", mock.Anything, f.identity.ID, id).Return(nil).Once()

		rec := httptest.NewRecorder()
		f.handler.Delete(rec, f.request(http.MethodDelete, "/api/resources/"+id, "", id))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true,"message":"Resource deleted successfully"}`, rec.Body.String())
	})

	t.Run("forbidden", func(t *testing.T) {
		f := newResourceFixture(t)
		f.svc.On("Delete", mock.Anything, f.identity.ID, id).Return(apiErrors.NewErrAccessDenied(uuid.New())).Once()

		rec := httptest.NewRecorder()
		f.handler.Delete(rec, f.request(http.MethodDelete, "/api/resources/"+id, "", id))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

