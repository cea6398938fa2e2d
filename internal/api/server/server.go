package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/buxdao/holder-bot/internal/api/middleware"
	"github.com/buxdao/holder-bot/internal/api/rest"
	"github.com/buxdao/holder-bot/internal/logger"
	"github.com/buxdao/holder-bot/internal/profile"
	"github.com/buxdao/holder-bot/internal/registry"
)

// Config holds the server configuration
type Config struct {
	Debug        bool
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	CORSOrigins  []string
	Auth         middleware.AuthConfig
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	profiles   profile.Service
	hashlists  registry.HashlistRegistry
	httpServer *http.Server
}

// New creates a new API server
func New(cfg Config, profiles profile.Service, hashlists registry.HashlistRegistry) *Server {
	return &Server{
		config:    cfg,
		profiles:  profiles,
		hashlists: hashlists,
	}
}

// Router builds the gin engine with every middleware and route
func (s *Server) Router() *gin.Engine {
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.SetupCORS(s.config.CORSOrigins))

	rest.SetupRoutes(router, rest.NewHandler(s.profiles, s.hashlists), s.config.Auth)

	return router
}

// Start initializes and starts the HTTP server; it blocks until the server stops
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.InfoCtx(ctx, "Starting API server", zap.String("address", addr))

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.InfoCtx(ctx, "Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}
