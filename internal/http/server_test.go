package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, readyCheck func(ctx context.Context) error) *Server {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	authRequired := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}
		c.Next()
	}
	authOptional := func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("optional_auth_ran", true)
		}
		c.Next()
	}

	cfg := Config{
		Host:    "127.0.0.1",
		Port:    0,
		GinMode: gin.TestMode,
	}

	return NewServer(cfg, logger, authRequired, authOptional, readyCheck)
}

func TestServer_HealthEndpoint(t *testing.T) {
	server := newTestServer(t, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	server.GetHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestServer_ReadyEndpoint(t *testing.T) {
	t.Run("Success_Ready", func(t *testing.T) {
		server := newTestServer(t, func(ctx context.Context) error { return nil })

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ready", nil)
		server.GetHandler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Error_NotReady", func(t *testing.T) {
		server := newTestServer(t, func(ctx context.Context) error {
			return errors.New("database unreachable")
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ready", nil)
		server.GetHandler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("Success_NilCheckAlwaysReady", func(t *testing.T) {
		server := newTestServer(t, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ready", nil)
		server.GetHandler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestServer_RegisterRoutes(t *testing.T) {
	okHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}

	t.Run("PublicRouteServedWithoutToken", func(t *testing.T) {
		server := newTestServer(t, nil)
		server.RegisterRoutes([]Route{
			{Method: http.MethodGet, Path: "/v1/things", Sensitivity: Public, Handler: okHandler},
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/things", nil)
		server.GetHandler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("ProtectedRouteRejectsMissingToken", func(t *testing.T) {
		server := newTestServer(t, nil)
		server.RegisterRoutes([]Route{
			{Method: http.MethodPost, Path: "/v1/things", Sensitivity: Protected, Handler: okHandler},
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/things", nil)
		server.GetHandler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("ProtectedRouteAcceptsToken", func(t *testing.T) {
		server := newTestServer(t, nil)
		server.RegisterRoutes([]Route{
			{Method: http.MethodPost, Path: "/v1/things", Sensitivity: Protected, Handler: okHandler},
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/things", nil)
		req.Header.Set("Authorization", "Bearer token")
		server.GetHandler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("ZeroValueSensitivityIsProtected", func(t *testing.T) {
		server := newTestServer(t, nil)
		// Sensitivity deliberately omitted
		server.RegisterRoutes([]Route{
			{Method: http.MethodDelete, Path: "/v1/things/:id", Handler: okHandler},
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/v1/things/abc", nil)
		server.GetHandler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("PublicRouteGetsOptionalAuth", func(t *testing.T) {
		server := newTestServer(t, nil)
		sawOptional := false
		server.RegisterRoutes([]Route{
			{
				Method:      http.MethodGet,
				Path:        "/v1/things",
				Sensitivity: Public,
				Handler: func(c *gin.Context) {
					sawOptional = c.GetBool("optional_auth_ran")
					c.JSON(http.StatusOK, gin.H{"status": "ok"})
				},
			},
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/things", nil)
		req.Header.Set("Authorization", "Bearer token")
		server.GetHandler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, sawOptional)
	})

	t.Run("ProtectedRouteSkipsOptionalAuth", func(t *testing.T) {
		server := newTestServer(t, nil)
		sawOptional := false
		server.RegisterRoutes([]Route{
			{
				Method:      http.MethodPost,
				Path:        "/v1/things",
				Sensitivity: Protected,
				Handler: func(c *gin.Context) {
					sawOptional = c.GetBool("optional_auth_ran")
					c.JSON(http.StatusOK, gin.H{"status": "ok"})
				},
			},
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/things", nil)
		req.Header.Set("Authorization", "Bearer token")
		server.GetHandler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.False(t, sawOptional)
	})

	t.Run("PerRouteMiddlewareRuns", func(t *testing.T) {
		server := newTestServer(t, nil)
		called := false
		server.RegisterRoutes([]Route{
			{
				Method:      http.MethodGet,
				Path:        "/v1/things",
				Sensitivity: Public,
				Handler:     okHandler,
				Middleware: []gin.HandlerFunc{func(c *gin.Context) {
					called = true
					c.Next()
				}},
			},
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/things", nil)
		server.GetHandler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, called)
	})
}

func TestServer_NoRouteReturnsJSON404(t *testing.T) {
	server := newTestServer(t, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/does-not-exist", nil)
	server.GetHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "not_found", body["error"])
}

func TestServer_Shutdown(t *testing.T) {
	server := newTestServer(t, nil)

	err := server.Shutdown(context.Background())
	assert.NoError(t, err)
}

func TestMetricsServer_WithoutProvider(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	server := NewMetricsServer("127.0.0.1", 0, logger, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	server.GetHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
