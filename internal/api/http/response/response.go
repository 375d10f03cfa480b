// Package response writes the JSON envelope shared by every endpoint.
package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	apiErrors "github.com/dtroode/resource-server/internal/api/errors"
	"github.com/dtroode/resource-server/internal/logger"
)

// Envelope is the body of every API response.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Writer renders envelopes. In debug mode failures carry their detail in Error.
type Writer struct {
	debug  bool
	logger *logger.Logger
}

func NewWriter(debug bool, logger *logger.Logger) *Writer {
	return &Writer{debug: debug, logger: logger}
}

// JSON writes body with the given status.
func (rw *Writer) JSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		rw.logger.Error("Response writer: failed to encode body",
			"status", status,
			"error", err.Error())
	}
}

// Success writes a successful envelope. A nil data omits the field.
func (rw *Writer) Success(w http.ResponseWriter, status int, message string, data any) {
	rw.JSON(w, status, Envelope{Success: true, Message: message, Data: data})
}

// Error maps err to its API status. Errors outside the taxonomy become 500.
func (rw *Writer) Error(w http.ResponseWriter, err error) {
	var apiErr *apiErrors.APIError
	if !errors.As(err, &apiErr) {
		apiErr = apiErrors.NewErrInternal(err)
	}

	if apiErr.HTTPStatus >= http.StatusInternalServerError {
		rw.logger.Error("Response writer: internal error",
			"error", err.Error())
	}

	envelope := Envelope{Success: false, Message: apiErr.Message}
	if rw.debug && apiErr.Cause != nil {
		envelope.Error = apiErr.Cause.Error()
	}

	rw.JSON(w, apiErr.HTTPStatus, envelope)
}

// Panic reports a recovered panic as an internal error.
func (rw *Writer) Panic(w http.ResponseWriter, recovered any, stack []byte) {
	cause := fmt.Errorf("panic: %v", recovered)
	if rw.debug {
		cause = fmt.Errorf("panic: %v\n%s", recovered, stack)
	}
	rw.Error(w, apiErrors.NewErrInternal(cause))
}
