package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/dtroode/resource-server/internal/api/http/response"
	"github.com/dtroode/resource-server/internal/logger"
)

// Recovery turns handler panics into 500 envelopes.
type Recovery struct {
	response *response.Writer
	logger   *logger.Logger
}

func NewRecovery(response *response.Writer, logger *logger.Logger) *Recovery {
	return &Recovery{response: response, logger: logger}
}

func (m *Recovery) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			stack := debug.Stack()
			m.logger.Error("Recovery middleware: handler panicked",
				"method", r.Method,
				"path", r.URL.Path,
				"panic", rec,
				"stack", string(stack))
			m.response.Panic(w, rec, stack)
		}()

		next.ServeHTTP(w, r)
	})
}
