package router

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/dtroode/resource-server/internal/api/http/handler"
	"github.com/dtroode/resource-server/internal/api/http/middleware"
	"github.com/dtroode/resource-server/internal/api/http/response"
	"github.com/dtroode/resource-server/internal/logger"
	"github.com/dtroode/resource-server/internal/model"
)

// Router wires HTTP routes to handlers and middleware.
type Router struct {
	authService     handler.AuthService
	resourceService handler.ResourceService
	tokenService    middleware.TokenService
	contextManager  model.ContextManager
	metrics         *middleware.Metrics
	cors            *middleware.CORS
	response        *response.Writer
	logger          *logger.Logger
}

// New creates new Router instance.
func New(
	authService handler.AuthService,
	resourceService handler.ResourceService,
	tokenService middleware.TokenService,
	contextManager model.ContextManager,
	metrics *middleware.Metrics,
	cors *middleware.CORS,
	response *response.Writer,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:     authService,
		resourceService: resourceService,
		tokenService:    tokenService,
		contextManager:  contextManager,
		metrics:         metrics,
		cors:            cors,
		response:        response,
		logger:          logger,
	}
}

// Register builds the handler tree:
// logging -> cors -> recovery -> trailing slash trim -> mux (metrics per route)
// -> authenticate (protected routes) -> handler.
func (rt *Router) Register() http.Handler {
	logging := middleware.NewLogging(rt.logger)
	recovery := middleware.NewRecovery(rt.response, rt.logger)
	authenticate := middleware.NewAuthenticate(rt.tokenService, rt.contextManager, rt.response, rt.logger)
	system := handler.NewSystem(rt.response)

	r := mux.NewRouter()
	r.Use(rt.metrics.Handle)

	notFound := rt.metrics.Handle(http.HandlerFunc(system.NotFound))
	r.NotFoundHandler = notFound
	r.MethodNotAllowedHandler = notFound

	r.HandleFunc("/health", system.Health).Methods(http.MethodGet)
	r.Handle("/metrics", rt.metrics.Handler()).Methods(http.MethodGet)

	rt.registerAuthRoutes(r)
	rt.registerResourceRoutes(r, authenticate, system)

	return logging.Handle(rt.cors.Handle(recovery.Handle(trimTrailingSlash(r))))
}

func (rt *Router) registerAuthRoutes(r *mux.Router) {
	authHandler := handler.NewAuth(rt.authService, rt.response, rt.logger)

	auth := r.PathPrefix("/api/auth").Subrouter()
	auth.HandleFunc("/register", authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)
}

// registerResourceRoutes mounts the protected subrouter. Anything under
// /api/resources that matches no route still passes authentication first.
func (rt *Router) registerResourceRoutes(r *mux.Router, authenticate *middleware.Authenticate, system *handler.System) {
	resourceHandler := handler.NewResource(rt.resourceService, rt.contextManager, rt.response, rt.logger)

	resources := r.PathPrefix("/api/resources").Subrouter()
	resources.Use(authenticate.Handle)
	resources.HandleFunc("", resourceHandler.Create).Methods(http.MethodPost)
	resources.HandleFunc("", resourceHandler.List).Methods(http.MethodGet)
	resources.HandleFunc("/{id}", resourceHandler.Get).Methods(http.MethodGet)
	resources.HandleFunc("/{id}", resourceHandler.Update).Methods(http.MethodPut)
	resources.HandleFunc("/{id}", resourceHandler.Delete).Methods(http.MethodDelete)

	resources.HandleFunc("", system.NotFound)
	resources.PathPrefix("/").HandlerFunc(system.NotFound)
}

// trimTrailingSlash drops one trailing slash so /api/resources/ routes like /api/resources.
func trimTrailingSlash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(r.URL.Path) > 1 && strings.HasSuffix(r.URL.Path, "/") {
			r.URL.Path = strings.TrimSuffix(r.URL.Path, "/")
			r.URL.RawPath = ""
		}
		next.ServeHTTP(w, r)
	})
}
