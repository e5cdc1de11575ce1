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

const locationRecordBasePath = "/v1/locations"

var locationRecordSort = listing.Sort{
	Default: "recordedAt",
	Allowed: []string{"recordedAt", "referencePoint"},
}

// LocationRecordHandler handles HTTP requests for location record operations.
type LocationRecordHandler struct {
	locationUseCase usecase.LocationRecordUseCase
	builder         *hateoas.Builder
	logger          *slog.Logger
}

// NewLocationRecordHandler creates a new location record handler.
func NewLocationRecordHandler(locationUseCase usecase.LocationRecordUseCase, logger *slog.Logger) *LocationRecordHandler {
	return &LocationRecordHandler{
		locationUseCase: locationUseCase,
		builder:         hateoas.NewBuilder(locationRecordBasePath),
		logger:          logger,
	}
}

// Routes returns the location record route table. Reads are public, writes require a token.
func (h *LocationRecordHandler) Routes() []apphttp.Route {
	return []apphttp.Route{
		{Method: http.MethodGet, Path: locationRecordBasePath, Sensitivity: apphttp.Public, Handler: h.ListHandler},
		{Method: http.MethodGet, Path: locationRecordBasePath + "/:id", Sensitivity: apphttp.Public, Handler: h.GetHandler},
		{Method: http.MethodPost, Path: locationRecordBasePath, Handler: h.CreateHandler},
		{Method: http.MethodPut, Path: locationRecordBasePath + "/:id", Handler: h.UpdateHandler},
		{Method: http.MethodDelete, Path: locationRecordBasePath + "/:id", Handler: h.DeleteHandler},
	}
}

// ListHandler returns a filtered, sorted page of location records.
// GET /v1/locations?page=N&pageSize=N&referencePoint=&orderBy=
func (h *LocationRecordHandler) ListHandler(c *gin.Context) {
	params := listing.ParseParams(c, locationRecordSort, "referencePoint")

	items, total, err := h.locationUseCase.List(c.Request.Context(), params)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	responses := dto.MapLocationRecordToResponses(items, h.builder)
	c.JSON(http.StatusOK, listing.NewPage(responses, total, params))
}

// GetHandler returns a single location record by id.
// GET /v1/locations/:id
func (h *LocationRecordHandler) GetHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, domain.ErrLocationRecordNotFound, h.logger)
		return
	}

	record, err := h.locationUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.HandleDataGin(c, http.StatusOK, dto.MapLocationRecordToResponse(record, h.builder))
}

// CreateHandler registers a new location record.
// POST /v1/locations
func (h *LocationRecordHandler) CreateHandler(c *gin.Context) {
	var req dto.LocationRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	input, err := dto.ToLocationRecordInput(req)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	record, err := h.locationUseCase.Create(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.HandleDataGin(c, http.StatusCreated, dto.MapLocationRecordToResponse(record, h.builder))
}

// UpdateHandler replaces a location record's fields.
// PUT /v1/locations/:id
func (h *LocationRecordHandler) UpdateHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, domain.ErrLocationRecordNotFound, h.logger)
		return
	}

	var req dto.LocationRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	input, err := dto.ToLocationRecordInput(req)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	record, err := h.locationUseCase.Update(c.Request.Context(), id, input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.HandleDataGin(c, http.StatusOK, dto.MapLocationRecordToResponse(record, h.builder))
}

// DeleteHandler removes a location record.
// DELETE /v1/locations/:id
func (h *LocationRecordHandler) DeleteHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, domain.ErrLocationRecordNotFound, h.logger)
		return
	}

	if err := h.locationUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
