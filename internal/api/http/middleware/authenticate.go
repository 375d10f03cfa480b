package middleware

import (
	"context"
	"net/http"
	"strings"

	apiErrors "github.com/dtroode/resource-server/internal/api/errors"
	"github.com/dtroode/resource-server/internal/api/http/response"
	"github.com/dtroode/resource-server/internal/logger"
	"github.com/dtroode/resource-server/internal/model"
)

// TokenService resolves the caller identity from bearer tokens.
type TokenService interface {
	GetIdentity(ctx context.Context, token string) (model.Identity, error)
}

// Authenticate validates bearer tokens and injects the identity into the request context.
type Authenticate struct {
	tokenService   TokenService
	contextManager model.ContextManager
	response       *response.Writer
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(
	tokenService TokenService,
	contextManager model.ContextManager,
	response *response.Writer,
	logger *logger.Logger,
) *Authenticate {
	return &Authenticate{
		tokenService:   tokenService,
		contextManager: contextManager,
		response:       response,
		logger:         logger,
	}
}

// Handle rejects requests without a valid bearer token.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, err := m.authenticateUser(r.Context(), bearerToken(r))
		if err != nil {
			m.logger.Debug("Authenticate middleware: request rejected",
				"path", r.URL.Path,
				"error", err.Error())
			m.response.Error(w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(m.contextManager.SetIdentityToContext(r.Context(), identity)))
	})
}

func (m *Authenticate) authenticateUser(ctx context.Context, tokenString string) (model.Identity, error) {
	if tokenString == "" {
		return model.Identity{}, apiErrors.NewErrMissingAuthorizationToken()
	}

	identity, err := m.tokenService.GetIdentity(ctx, tokenString)
	if err != nil {
		return model.Identity{}, apiErrors.NewErrInvalidAuthorizationToken(err)
	}

	return identity, nil
}

func bearerToken(r *http.Request) string {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}
