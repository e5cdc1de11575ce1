package httputil

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/mottuflow/fleetflow/internal/errors"
)

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHandleErrorGin(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		expectedCode  int
		expectedError string
	}{
		{
			name:          "not found",
			err:           apperrors.ErrNotFound,
			expectedCode:  http.StatusNotFound,
			expectedError: "not_found",
		},
		{
			name:          "wrapped not found keeps mapping",
			err:           apperrors.Wrap(apperrors.ErrNotFound, "motorcycle lookup"),
			expectedCode:  http.StatusNotFound,
			expectedError: "not_found",
		},
		{
			name:          "conflict",
			err:           apperrors.ErrConflict,
			expectedCode:  http.StatusConflict,
			expectedError: "conflict",
		},
		{
			name:          "invalid input",
			err:           apperrors.Wrap(apperrors.ErrInvalidInput, "plate is required"),
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "invalid_input",
		},
		{
			name:          "invalid credentials",
			err:           apperrors.ErrInvalidCredentials,
			expectedCode:  http.StatusUnauthorized,
			expectedError: "invalid_credentials",
		},
		{
			name:          "unauthorized",
			err:           apperrors.ErrUnauthorized,
			expectedCode:  http.StatusUnauthorized,
			expectedError: "unauthorized",
		},
		{
			name:          "forbidden",
			err:           apperrors.ErrForbidden,
			expectedCode:  http.StatusForbidden,
			expectedError: "forbidden",
		},
		{
			name:          "unknown errors are internal",
			err:           assert.AnError,
			expectedCode:  http.StatusInternalServerError,
			expectedError: "internal_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext(t)

			HandleErrorGin(c, tt.err, discardLogger())

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedError)
		})
	}
}

func TestHandleErrorGinNeverLeaksInternals(t *testing.T) {
	c, w := newTestContext(t)

	wrapped := apperrors.Wrap(assert.AnError, "database connection refused at 10.0.0.5")
	HandleErrorGin(c, wrapped, discardLogger())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.5")
}

func TestHandleErrorGinNilError(t *testing.T) {
	c, w := newTestContext(t)

	HandleErrorGin(c, nil, discardLogger())

	assert.Empty(t, w.Body.String())
}

func TestHandleDataGin(t *testing.T) {
	c, w := newTestContext(t)

	HandleDataGin(c, http.StatusOK, map[string]string{"plate": "ABC1D23"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":{"plate":"ABC1D23"}}`, w.Body.String())
}

func TestHandleBadRequestGin(t *testing.T) {
	c, w := newTestContext(t)

	HandleBadRequestGin(c, assert.AnError, discardLogger())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "bad_request")
}

func TestHandleValidationErrorGin(t *testing.T) {
	c, w := newTestContext(t)

	HandleValidationErrorGin(c, assert.AnError, discardLogger())

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "validation_error")
}
