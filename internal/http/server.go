// Package http provides the HTTP server, routing, and shared middleware.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	"github.com/mottuflow/fleetflow/internal/httputil"
)

// Sensitivity classifies a route for access control. The zero value is
// Protected so a route that forgets to declare itself is never exposed
// without authentication.
type Sensitivity int

const (
	// Protected routes require a valid access token.
	Protected Sensitivity = iota
	// Public routes are served without authentication.
	Public
)

// Route describes a single HTTP route and its access requirements.
type Route struct {
	Method      string
	Path        string
	Sensitivity Sensitivity
	Handler     gin.HandlerFunc
	// Middleware runs after access control and before the handler.
	Middleware []gin.HandlerFunc
}

// Config holds the HTTP server settings.
type Config struct {
	Host             string
	Port             int
	GinMode          string
	CORSEnabled      bool
	CORSAllowOrigins string
}

// Server wraps the Gin engine and the underlying http.Server.
type Server struct {
	server       *http.Server
	engine       *gin.Engine
	authRequired gin.HandlerFunc
	authOptional gin.HandlerFunc
	logger       *slog.Logger
}

// NewServer creates the HTTP server with recovery, request id, logging, CORS
// and any extra global middleware (e.g., HTTP metrics). The authRequired
// middleware is applied to every route that is not explicitly Public; the
// authOptional middleware is applied to Public routes so a valid token still
// surfaces its claims to the handler without being mandatory. Either may be
// nil. The readyCheck function backs the /ready endpoint; pass nil to always
// report ready.
func NewServer(
	cfg Config,
	logger *slog.Logger,
	authRequired gin.HandlerFunc,
	authOptional gin.HandlerFunc,
	readyCheck func(ctx context.Context) error,
	globalMiddleware ...gin.HandlerFunc,
) *Server {
	gin.SetMode(cfg.GinMode)

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestid.New())
	engine.Use(LoggerMiddleware(logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, logger); corsMiddleware != nil {
		engine.Use(corsMiddleware)
	}

	for _, m := range globalMiddleware {
		engine.Use(m)
	}

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	engine.GET("/ready", func(c *gin.Context) {
		if readyCheck != nil {
			if err := readyCheck(c.Request.Context()); err != nil {
				logger.Error("readiness check failed", "error", err)
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, httputil.ErrorResponse{
			Error:   "not_found",
			Message: "Resource not found",
		})
	})

	return &Server{
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Handler:      engine,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		engine:       engine,
		authRequired: authRequired,
		authOptional: authOptional,
		logger:       logger,
	}
}

// RegisterRoutes mounts the given routes on the engine. Routes that are not
// Public get the authentication middleware prepended; Public routes get the
// optional variant so claims from a valid token remain visible.
func (s *Server) RegisterRoutes(routes []Route) {
	for _, route := range routes {
		handlers := make([]gin.HandlerFunc, 0, len(route.Middleware)+2)
		if route.Sensitivity != Public && s.authRequired != nil {
			handlers = append(handlers, s.authRequired)
		}
		if route.Sensitivity == Public && s.authOptional != nil {
			handlers = append(handlers, s.authOptional)
		}
		handlers = append(handlers, route.Middleware...)
		handlers = append(handlers, route.Handler)
		s.engine.Handle(route.Method, route.Path, handlers...)
	}
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
