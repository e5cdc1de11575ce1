package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInstrumentedRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	provider, err := NewProvider("fleetflow_test")
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	})

	router := gin.New()
	router.Use(HTTPMetricsMiddleware(provider.MeterProvider(), "fleetflow_test"))
	return router
}

func TestHTTPMetricsMiddleware_PassesRequestsThrough(t *testing.T) {
	router := newInstrumentedRouter(t)
	router.GET("/v1/yards", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": []string{}})
	})
	router.POST("/v1/yards", func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{})
	})
	router.GET("/v1/broken", func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
	})

	cases := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/v1/yards", http.StatusOK},
		{http.MethodPost, "/v1/yards", http.StatusCreated},
		{http.MethodGet, "/v1/broken", http.StatusInternalServerError},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
		assert.Equal(t, tc.status, w.Code)
	}
}

func TestHTTPMetricsMiddleware_PathParams(t *testing.T) {
	router := newInstrumentedRouter(t)
	router.GET("/v1/motorcycles/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
	})

	// Distinct ids share the /v1/motorcycles/:id route label.
	for _, id := range []string{"0198c6a0", "0198c6a1"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/motorcycles/"+id, nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRouteLabel(t *testing.T) {
	assert.Equal(t, "/v1/motorcycles/:id", routeLabel("/v1/motorcycles/:id"))
	assert.Equal(t, "/", routeLabel("/"))
	assert.Equal(t, "unknown", routeLabel(""))
}
