package middleware

import (
	"net/http"

	"github.com/gorilla/handlers"
)

// CORS answers preflight requests and adds CORS headers for allowed origins.
type CORS struct {
	wrap func(http.Handler) http.Handler
}

// NewCORS allows the given origins. "*" allows any origin.
func NewCORS(allowedOrigins []string) *CORS {
	return &CORS{
		wrap: handlers.CORS(
			handlers.AllowedOrigins(allowedOrigins),
			handlers.AllowedMethods([]string{
				http.MethodGet,
				http.MethodHead,
				http.MethodPost,
				http.MethodPut,
				http.MethodPatch,
				http.MethodDelete,
			}),
			handlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
			handlers.OptionStatusCode(http.StatusNoContent),
		),
	}
}

func (c *CORS) Handle(next http.Handler) http.Handler {
	return c.wrap(next)
}
