package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mottuflow/fleetflow/internal/fleet/domain"
	"github.com/mottuflow/fleetflow/internal/fleet/http/dto"
	"github.com/mottuflow/fleetflow/internal/fleet/usecase"
	"github.com/mottuflow/fleetflow/internal/hateoas"
	apphttp "github.com/mottuflow/fleetflow/internal/http"
	"github.com/mottuflow/fleetflow/internal/httputil"
	"github.com/mottuflow/fleetflow/internal/listing"
)

const statusRecordBasePath = "/v1/status-records"

var statusRecordSort = listing.Sort{
	Default: "recordedAt",
	Allowed: []string{"recordedAt", "statusType"},
}

// StatusRecordHandler handles HTTP requests for status record operations.
type StatusRecordHandler struct {
	statusUseCase usecase.StatusRecordUseCase
	builder       *hateoas.Builder
	logger        *slog.Logger
}

// NewStatusRecordHandler creates a new status record handler.
func NewStatusRecordHandler(statusUseCase usecase.StatusRecordUseCase, logger *slog.Logger) *StatusRecordHandler {
	return &StatusRecordHandler{
		statusUseCase: statusUseCase,
		builder:       hateoas.NewBuilder(statusRecordBasePath),
		logger:        logger,
	}
}

// Routes returns the status record route table. Reads are public, writes require a token.
func (h *StatusRecordHandler) Routes() []apphttp.Route {
	return []apphttp.Route{
		{Method: http.MethodGet, Path: statusRecordBasePath, Sensitivity: apphttp.Public, Handler: h.ListHandler},
		{Method: http.MethodGet, Path: statusRecordBasePath + "/:id", Sensitivity: apphttp.Public, Handler: h.GetHandler},
		{Method: http.MethodPost, Path: statusRecordBasePath, Handler: h.CreateHandler},
		{Method: http.MethodPut, Path: statusRecordBasePath + "/:id", Handler: h.UpdateHandler},
		{Method: http.MethodDelete, Path: statusRecordBasePath + "/:id", Handler: h.DeleteHandler},
	}
}

// ListHandler returns a filtered, sorted page of status records.
// GET /v1/status-records?page=N&pageSize=N&statusType=&orderBy=
func (h *StatusRecordHandler) ListHandler(c *gin.Context) {
	params := listing.ParseParams(c, statusRecordSort, "statusType")

	items, total, err := h.statusUseCase.List(c.Request.Context(), params)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	responses := dto.MapStatusRecordToResponses(items, h.builder)
	c.JSON(http.StatusOK, listing.NewPage(responses, total, params))
}

// GetHandler returns a single status record by id.
// GET /v1/status-records/:id
func (h *StatusRecordHandler) GetHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, domain.ErrStatusRecordNotFound, h.logger)
		return
	}

	record, err := h.statusUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.HandleDataGin(c, http.StatusOK, dto.MapStatusRecordToResponse(record, h.builder))
}

// CreateHandler registers a new status record.
// POST /v1/status-records
func (h *StatusRecordHandler) CreateHandler(c *gin.Context) {
	var req dto.StatusRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	input, err := dto.ToStatusRecordInput(req)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	record, err := h.statusUseCase.Create(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.HandleDataGin(c, http.StatusCreated, dto.MapStatusRecordToResponse(record, h.builder))
}

// UpdateHandler replaces a status record's fields.
// PUT /v1/status-records/:id
func (h *StatusRecordHandler) UpdateHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, domain.ErrStatusRecordNotFound, h.logger)
		return
	}

	var req dto.StatusRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	input, err := dto.ToStatusRecordInput(req)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	record, err := h.statusUseCase.Update(c.Request.Context(), id, input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.HandleDataGin(c, http.StatusOK, dto.MapStatusRecordToResponse(record, h.builder))
}

// DeleteHandler removes a status record.
// DELETE /v1/status-records/:id
func (h *StatusRecordHandler) DeleteHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, domain.ErrStatusRecordNotFound, h.logger)
		return
	}

	if err := h.statusUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
