package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	httpcontext "github.com/dtroode/resource-server/internal/api/http/context"
	"github.com/dtroode/resource-server/internal/api/http/middleware"
	"github.com/dtroode/resource-server/internal/api/http/response"
	"github.com/dtroode/resource-server/internal/api/http/router"
	httpServer "github.com/dtroode/resource-server/internal/api/http/server"
	"github.com/dtroode/resource-server/internal/config"
	"github.com/dtroode/resource-server/internal/logger"
	"github.com/dtroode/resource-server/internal/model"
	"github.com/dtroode/resource-server/internal/password"
	"github.com/dtroode/resource-server/internal/repository/postgres"
	"github.com/dtroode/resource-server/internal/server"
	"github.com/dtroode/resource-server/internal/service"
	"github.com/dtroode/resource-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel).With("version", buildVersion)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	resourceRepo := postgres.NewResourceRepository(db)

	hasher := password.NewBcrypt(cfg.Bcrypt.Cost)
	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.ExpiresIn)

	tokenService := service.NewTokenService(tokenManager, logger)
	authService := service.NewAuth(userRepo, hasher, tokenService, logger)
	resourceService := service.NewResource(resourceRepo, logger)

	httpSrv := registerHTTPServer(cfg, logger, authService, resourceService, tokenService)
	sl := server.NewSecurityLayer(cfg.HTTP)

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address(), "https", cfg.HTTP.EnableHTTPS)
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(httpSrv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpSrv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpSrv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

func registerHTTPServer(
	cfg *config.Config,
	logger *logger.Logger,
	authService *service.Auth,
	resourceService *service.Resource,
	tokenService *service.TokenService,
) *httpServer.HTTPServer {
	ctxMgr := httpcontext.NewManager()
	writer := response.NewWriter(cfg.Debug, logger)
	metrics := middleware.NewMetrics()
	cors := middleware.NewCORS(cfg.HTTP.CORSAllowedOrigins)

	r := router.New(authService, resourceService, tokenService, ctxMgr, metrics, cors, writer, logger)

	return httpServer.NewHTTPServer(
		r.Register(),
		fmt.Sprintf(":%s", cfg.HTTP.Port),
		cfg.HTTP.ReadTimeout,
		cfg.HTTP.WriteTimeout,
	)
}
