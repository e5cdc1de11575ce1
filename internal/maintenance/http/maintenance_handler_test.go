package http

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mottuflow/fleetflow/internal/maintenance/http/dto"
	"github.com/mottuflow/fleetflow/internal/maintenance/service"
)

func setupMaintenanceRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	handler := NewMaintenanceHandler(service.NewPredictor(), slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	router := gin.New()
	for _, route := range handler.Routes() {
		router.Handle(route.Method, route.Path, route.Handler)
	}

	return router
}

func postPredict(router *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/maintenance/predict", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestPredictHandler_HealthyTelemetry(t *testing.T) {
	router := setupMaintenanceRouter(t)

	w := postPredict(router, `{"vibration": 2.0, "engineTemp": 80.0, "kmDriven": 5000, "oilAgeDays": 30}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data dto.PredictResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.False(t, envelope.Data.NeedsMaintenance)
	assert.InDelta(t, 2.0, envelope.Data.Vibration, 0.001)
	assert.InDelta(t, 80.0, envelope.Data.EngineTemp, 0.001)
	assert.Less(t, envelope.Data.Probability, 0.5)
}

func TestPredictHandler_WornTelemetry(t *testing.T) {
	router := setupMaintenanceRouter(t)

	w := postPredict(router, `{"vibration": 9.0, "engineTemp": 110.0, "kmDriven": 25000, "oilAgeDays": 180}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data dto.PredictResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.Data.NeedsMaintenance)
	assert.Greater(t, envelope.Data.Probability, 0.5)
}

func TestPredictHandler_NegativeInput(t *testing.T) {
	router := setupMaintenanceRouter(t)

	w := postPredict(router, `{"vibration": -1.0, "engineTemp": 80.0, "kmDriven": 5000, "oilAgeDays": 30}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_input")
}

func TestPredictHandler_MalformedJSON(t *testing.T) {
	router := setupMaintenanceRouter(t)

	w := postPredict(router, `{not json`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "validation_error")
}
