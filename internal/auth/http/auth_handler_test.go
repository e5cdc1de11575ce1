package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/mottuflow/fleetflow/internal/auth/domain"
	"github.com/mottuflow/fleetflow/internal/auth/http/dto"
	apperrors "github.com/mottuflow/fleetflow/internal/errors"
)

// MockAuthUseCase is a mock implementation of usecase.AuthUseCase
type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Login(ctx context.Context, input *authDomain.LoginInput) (*authDomain.LoginOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.LoginOutput), args.Error(1)
}

func setupLoginRouter(t *testing.T, rateLimit gin.HandlerFunc) (*gin.Engine, *MockAuthUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	useCase := &MockAuthUseCase{}
	handler := NewAuthHandler(useCase, rateLimit, testLogger())

	router := gin.New()
	for _, route := range handler.Routes() {
		handlers := append(route.Middleware, route.Handler)
		router.Handle(route.Method, route.Path, handlers...)
	}

	return router, useCase
}

func postLogin(router *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestLoginHandler_Success(t *testing.T) {
	router, useCase := setupLoginRouter(t, nil)

	useCase.On("Login", mock.Anything, &authDomain.LoginInput{
		LoginKey: "ana.souza@example.com",
		Secret:   "SecurePass123!",
	}).Return(&authDomain.LoginOutput{
		Token:     "signed-token",
		Role:      "operator",
		ExpiresIn: "2h",
	}, nil)

	w := postLogin(router, `{"loginKey": "ana.souza@example.com", "secret": "SecurePass123!"}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "signed-token", response.Token)
	assert.Equal(t, "operator", response.Role)
	assert.Equal(t, "2h", response.ExpiresIn)
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	router, useCase := setupLoginRouter(t, nil)

	useCase.On("Login", mock.Anything, mock.AnythingOfType("*domain.LoginInput")).
		Return(nil, apperrors.ErrInvalidCredentials)

	w := postLogin(router, `{"loginKey": "ana.souza@example.com", "secret": "WrongPass123!"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_credentials")
}

func TestLoginHandler_MissingFields(t *testing.T) {
	router, useCase := setupLoginRouter(t, nil)

	w := postLogin(router, `{"loginKey": "ana.souza@example.com"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "validation_error")
	useCase.AssertNotCalled(t, "Login")
}

func TestLoginHandler_MalformedJSON(t *testing.T) {
	router, useCase := setupLoginRouter(t, nil)

	w := postLogin(router, `{not json`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	useCase.AssertNotCalled(t, "Login")
}

func TestLoginHandler_WithRateLimit(t *testing.T) {
	router, useCase := setupLoginRouter(t, LoginRateLimitMiddleware(1, 1, testLogger()))

	useCase.On("Login", mock.Anything, mock.AnythingOfType("*domain.LoginInput")).
		Return(&authDomain.LoginOutput{Token: "signed-token", Role: "operator", ExpiresIn: "2h"}, nil)

	first := postLogin(router, `{"loginKey": "ana.souza@example.com", "secret": "SecurePass123!"}`)
	assert.Equal(t, http.StatusOK, first.Code)

	second := postLogin(router, `{"loginKey": "ana.souza@example.com", "secret": "SecurePass123!"}`)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}
