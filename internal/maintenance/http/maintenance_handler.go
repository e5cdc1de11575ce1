// Package http provides HTTP handlers for maintenance prediction.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apphttp "github.com/mottuflow/fleetflow/internal/http"
	"github.com/mottuflow/fleetflow/internal/httputil"
	"github.com/mottuflow/fleetflow/internal/maintenance/http/dto"
	"github.com/mottuflow/fleetflow/internal/maintenance/service"
)

const maintenanceBasePath = "/v1/maintenance"

// MaintenanceHandler handles HTTP requests for maintenance prediction.
type MaintenanceHandler struct {
	predictor *service.Predictor
	logger    *slog.Logger
}

// NewMaintenanceHandler creates a new maintenance handler.
func NewMaintenanceHandler(predictor *service.Predictor, logger *slog.Logger) *MaintenanceHandler {
	return &MaintenanceHandler{
		predictor: predictor,
		logger:    logger,
	}
}

// Routes returns the maintenance route table.
func (h *MaintenanceHandler) Routes() []apphttp.Route {
	return []apphttp.Route{
		{Method: http.MethodPost, Path: maintenanceBasePath + "/predict", Sensitivity: apphttp.Public, Handler: h.PredictHandler},
	}
}

// PredictHandler scores motorcycle telemetry for maintenance need.
// POST /v1/maintenance/predict
func (h *MaintenanceHandler) PredictHandler(c *gin.Context) {
	var req dto.PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	prediction, err := h.predictor.Predict(dto.ToFeatures(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.HandleDataGin(c, http.StatusOK, dto.MapPredictionToResponse(req, prediction))
}
