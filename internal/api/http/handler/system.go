package handler

import (
	"net/http"
	"time"

	apiErrors "github.com/dtroode/resource-server/internal/api/errors"
	"github.com/dtroode/resource-server/internal/api/http/response"
)

type healthResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// System serves the health check and the catch-all for unknown routes.
type System struct {
	response *response.Writer
	now      func() time.Time
}

func NewSystem(response *response.Writer) *System {
	return &System{response: response, now: time.Now}
}

// Health handles GET /health.
func (h *System) Health(w http.ResponseWriter, _ *http.Request) {
	h.response.JSON(w, http.StatusOK, healthResponse{
		Success:   true,
		Message:   "Server is running",
		Timestamp: h.now().UTC().Format(time.RFC3339),
	})
}

// NotFound answers unmatched routes.
func (h *System) NotFound(w http.ResponseWriter, r *http.Request) {
	h.response.Error(w, apiErrors.NewErrRouteNotFound(r.Method, r.URL.Path))
}
