package http

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/mottuflow/fleetflow/internal/auth/domain"
	apphttp "github.com/mottuflow/fleetflow/internal/http"
)

// MockTokenCodec is a mock implementation of service.TokenCodec
type MockTokenCodec struct {
	mock.Mock
}

func (m *MockTokenCodec) Encode(claims *authDomain.Claims) (string, time.Duration, error) {
	args := m.Called(claims)
	return args.String(0), args.Get(1).(time.Duration), args.Error(2)
}

func (m *MockTokenCodec) Decode(token string) (*authDomain.Claims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.Claims), args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func validTestClaims() *authDomain.Claims {
	return &authDomain.Claims{
		StaffID: uuid.Must(uuid.NewV7()),
		Name:    "Ana Souza",
		Email:   "ana.souza@example.com",
		Role:    "operator",
	}
}

func setupAuthRouter(middleware gin.HandlerFunc) (*gin.Engine, *capturedClaims) {
	gin.SetMode(gin.TestMode)

	captured := &capturedClaims{}
	router := gin.New()
	router.GET("/protected", middleware, func(c *gin.Context) {
		claims, ok := GetClaims(c.Request.Context())
		captured.claims = claims
		captured.present = ok
		c.Status(http.StatusOK)
	})

	return router, captured
}

type capturedClaims struct {
	claims  *authDomain.Claims
	present bool
}

func TestRequireAuthMiddleware_ValidToken(t *testing.T) {
	codec := &MockTokenCodec{}
	claims := validTestClaims()
	codec.On("Decode", "good-token").Return(claims, nil)

	router, captured := setupAuthRouter(RequireAuthMiddleware(codec, testLogger()))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, captured.present)
	assert.Equal(t, claims.StaffID, captured.claims.StaffID)
}

func TestRequireAuthMiddleware_CaseInsensitiveScheme(t *testing.T) {
	codec := &MockTokenCodec{}
	codec.On("Decode", "good-token").Return(validTestClaims(), nil)

	router, _ := setupAuthRouter(RequireAuthMiddleware(codec, testLogger()))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "bearer good-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAuthMiddleware_MissingHeader(t *testing.T) {
	codec := &MockTokenCodec{}

	router, _ := setupAuthRouter(RequireAuthMiddleware(codec, testLogger()))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "unauthorized")
	codec.AssertNotCalled(t, "Decode")
}

func TestRequireAuthMiddleware_MalformedHeader(t *testing.T) {
	codec := &MockTokenCodec{}

	router, _ := setupAuthRouter(RequireAuthMiddleware(codec, testLogger()))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	codec.AssertNotCalled(t, "Decode")
}

func TestRequireAuthMiddleware_InvalidToken(t *testing.T) {
	codec := &MockTokenCodec{}
	codec.On("Decode", "bad-token").Return(nil, authDomain.ErrInvalidToken)

	router, _ := setupAuthRouter(RequireAuthMiddleware(codec, testLogger()))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "unauthorized")
}

func TestOptionalAuthMiddleware_ValidToken(t *testing.T) {
	codec := &MockTokenCodec{}
	claims := validTestClaims()
	codec.On("Decode", "good-token").Return(claims, nil)

	router, captured := setupAuthRouter(OptionalAuthMiddleware(codec, testLogger()))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, captured.present)
}

func TestOptionalAuthMiddleware_NoToken(t *testing.T) {
	codec := &MockTokenCodec{}

	router, captured := setupAuthRouter(OptionalAuthMiddleware(codec, testLogger()))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, captured.present)
}

func TestOptionalAuthMiddleware_InvalidToken(t *testing.T) {
	codec := &MockTokenCodec{}
	codec.On("Decode", "bad-token").Return(nil, authDomain.ErrInvalidToken)

	router, captured := setupAuthRouter(OptionalAuthMiddleware(codec, testLogger()))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, captured.present)
}

func TestLoginRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/login", LoginRateLimitMiddleware(1, 2, testLogger()), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	do := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "203.0.113.10:54321"
		router.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, do().Code)
	assert.Equal(t, http.StatusOK, do().Code)

	third := do()
	assert.Equal(t, http.StatusTooManyRequests, third.Code)
	assert.Contains(t, third.Body.String(), "rate_limit_exceeded")
	assert.NotEmpty(t, third.Header().Get("Retry-After"))
}

func TestLoginRateLimitMiddleware_PerIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/login", LoginRateLimitMiddleware(1, 1, testLogger()), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	do := func(addr string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = addr
		router.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, do("203.0.113.10:54321").Code)
	assert.Equal(t, http.StatusTooManyRequests, do("203.0.113.10:54321").Code)

	// A different client is not affected by the first one's bucket.
	assert.Equal(t, http.StatusOK, do("203.0.113.20:54321").Code)
}

// Wires the middleware pair through the route table the way the container
// does, checking that a valid token on a Public route still surfaces its
// claims to the handler.
func TestServerWiring_PublicRouteSeesClaims(t *testing.T) {
	codec := &MockTokenCodec{}
	claims := validTestClaims()
	codec.On("Decode", "good-token").Return(claims, nil)

	server := apphttp.NewServer(
		apphttp.Config{Host: "127.0.0.1", Port: 0, GinMode: gin.TestMode},
		testLogger(),
		RequireAuthMiddleware(codec, testLogger()),
		OptionalAuthMiddleware(codec, testLogger()),
		nil,
	)

	captured := &capturedClaims{}
	server.RegisterRoutes([]apphttp.Route{
		{
			Method:      http.MethodGet,
			Path:        "/v1/motorcycles",
			Sensitivity: apphttp.Public,
			Handler: func(c *gin.Context) {
				captured.claims, captured.present = GetClaims(c.Request.Context())
				c.Status(http.StatusOK)
			},
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/motorcycles", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	server.GetHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, captured.present)
	assert.Equal(t, claims, captured.claims)
}

func TestServerWiring_PublicRouteStaysAnonymousWithoutToken(t *testing.T) {
	codec := &MockTokenCodec{}

	server := apphttp.NewServer(
		apphttp.Config{Host: "127.0.0.1", Port: 0, GinMode: gin.TestMode},
		testLogger(),
		RequireAuthMiddleware(codec, testLogger()),
		OptionalAuthMiddleware(codec, testLogger()),
		nil,
	)

	captured := &capturedClaims{}
	server.RegisterRoutes([]apphttp.Route{
		{
			Method:      http.MethodGet,
			Path:        "/v1/motorcycles",
			Sensitivity: apphttp.Public,
			Handler: func(c *gin.Context) {
				captured.claims, captured.present = GetClaims(c.Request.Context())
				c.Status(http.StatusOK)
			},
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/motorcycles", nil)
	server.GetHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, captured.present)
	codec.AssertNotCalled(t, "Decode", mock.Anything)
}
