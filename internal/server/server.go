package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	_ "peerswap-api/docs"
	"peerswap-api/internal/auth"
	"peerswap-api/internal/client/lightning"
	"peerswap-api/internal/config"
	"peerswap-api/internal/handlers"
	"peerswap-api/internal/helpers"
	"peerswap-api/internal/middleware"
	"peerswap-api/internal/peerswap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

// Deps are the collaborators the HTTP layer is built from.
type Deps struct {
	Peerswap peerswap.Client
	// Node answers readiness probes; it may be nil.
	Node lightning.Caller
	// Verifier checks macaroons; nil only when auth is disabled.
	Verifier auth.Verifier
	Log      *zap.Logger
	// Closers are released after the HTTP server has shut down.
	Closers []func() error
}

// Server is the assembled HTTP API.
type Server struct {
	cfg     *config.Config
	engine  *gin.Engine
	limiter *middleware.RateLimiter
	closers []func() error
	log     *zap.Logger
}

// New builds the gin engine and mounts every route.
func New(cfg *config.Config, deps Deps) (*Server, error) {
	if deps.Peerswap == nil {
		return nil, errors.New("peerswap client is required")
	}
	if deps.Verifier == nil && !cfg.AuthDisabled {
		return nil, errors.New("macaroon verifier is required unless auth is disabled")
	}
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}

	if cfg.Stage == helpers.StageProd {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:     cfg,
		engine:  gin.New(),
		closers: deps.Closers,
		log:     log,
	}

	router := s.engine
	router.Use(gin.Recovery())
	router.Use(middleware.CorrelationIDMiddleware())
	router.Use(middleware.RequestLoggingMiddleware(log.Named("http")))
	router.Use(configureCORS(cfg.CORSOrigins))
	if cfg.RateLimitRPS > 0 {
		s.limiter = middleware.NewRateLimiter(float64(cfg.RateLimitRPS), cfg.RateLimitBurst, log.Named("ratelimit"))
		router.Use(s.limiter.Middleware())
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	healthHandler := handlers.NewHealthHandler(deps.Node, cfg.Stage, log.Named("health"))
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)

	protected := []gin.HandlerFunc{}
	if cfg.AuthDisabled {
		log.Warn("Macaroon authentication is disabled")
	} else {
		protected = append(protected, auth.EnsureValidMacaroon(deps.Verifier, log.Named("auth")))
	}

	peerswapHandler := handlers.NewPeerswapHandler(deps.Peerswap, log.Named("peerswap"))
	for _, prefix := range []string{"/v1/peerswap", "/peerswap"} {
		group := router.Group(prefix, protected...)
		peerswapHandler.RegisterRoutes(group)
	}

	return s, nil
}

// Handler returns the HTTP handler serving the API.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on the configured port until ctx is cancelled, then shuts down
// gracefully and releases the server's resources.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.engine,
		ReadHeaderTimeout: 20 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("Server starting", zap.String("addr", srv.Addr), zap.String("stage", s.cfg.Stage))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		s.Close()
		if ok {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := srv.Shutdown(shutdownCtx)
	s.Close()
	if err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	s.log.Info("Server exiting")
	return nil
}

// Close stops background work and releases the node connection.
func (s *Server) Close() {
	if s.limiter != nil {
		s.limiter.Stop()
	}
	for _, closeFn := range s.closers {
		if err := closeFn(); err != nil {
			s.log.Warn("Failed to release resource", zap.Error(err))
		}
	}
	s.closers = nil
}

func configureCORS(origins []string) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	allowAll := len(origins) == 0
	for _, origin := range origins {
		if origin == "*" {
			allowAll = true
		}
	}
	if allowAll {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
	}

	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{
		"Origin",
		"Content-Type",
		"Accept",
		auth.MacaroonHeader,
		auth.EncodingTypeHeader,
		middleware.CorrelationIDHeader,
	}
	corsConfig.ExposeHeaders = []string{middleware.CorrelationIDHeader}

	return cors.New(corsConfig)
}
