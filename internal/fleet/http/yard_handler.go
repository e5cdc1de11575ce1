// Package http provides HTTP handlers for fleet management operations.
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

const yardBasePath = "/v1/yards"

var yardSort = listing.Sort{
	Default: "name",
	Allowed: []string{"name", "address", "maxCapacity"},
}

// YardHandler handles HTTP requests for yard operations.
type YardHandler struct {
	yardUseCase usecase.YardUseCase
	builder     *hateoas.Builder
	logger      *slog.Logger
}

// NewYardHandler creates a new yard handler.
func NewYardHandler(yardUseCase usecase.YardUseCase, logger *slog.Logger) *YardHandler {
	return &YardHandler{
		yardUseCase: yardUseCase,
		builder:     hateoas.NewBuilder(yardBasePath),
		logger:      logger,
	}
}

// Routes returns the yard route table. Reads are public, writes require a token.
func (h *YardHandler) Routes() []apphttp.Route {
	return []apphttp.Route{
		{Method: http.MethodGet, Path: yardBasePath, Sensitivity: apphttp.Public, Handler: h.ListHandler},
		{Method: http.MethodGet, Path: yardBasePath + "/:id", Sensitivity: apphttp.Public, Handler: h.GetHandler},
		{Method: http.MethodPost, Path: yardBasePath, Handler: h.CreateHandler},
		{Method: http.MethodPut, Path: yardBasePath + "/:id", Handler: h.UpdateHandler},
		{Method: http.MethodDelete, Path: yardBasePath + "/:id", Handler: h.DeleteHandler},
	}
}

// ListHandler returns a filtered, sorted page of yards.
// GET /v1/yards?page=N&pageSize=N&name=&address=&orderBy=
func (h *YardHandler) ListHandler(c *gin.Context) {
	params := listing.ParseParams(c, yardSort, "name", "address")

	items, total, err := h.yardUseCase.List(c.Request.Context(), params)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	responses := dto.MapYardToResponses(items, h.builder)
	c.JSON(http.StatusOK, listing.NewPage(responses, total, params))
}

// GetHandler returns a single yard by id.
// GET /v1/yards/:id
func (h *YardHandler) GetHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, domain.ErrYardNotFound, h.logger)
		return
	}

	yard, err := h.yardUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.HandleDataGin(c, http.StatusOK, dto.MapYardToResponse(yard, h.builder))
}

// CreateHandler registers a new yard.
// POST /v1/yards
func (h *YardHandler) CreateHandler(c *gin.Context) {
	var req dto.YardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	yard, err := h.yardUseCase.Create(c.Request.Context(), dto.ToYardInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.HandleDataGin(c, http.StatusCreated, dto.MapYardToResponse(yard, h.builder))
}

// UpdateHandler replaces a yard's fields.
// PUT /v1/yards/:id
func (h *YardHandler) UpdateHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, domain.ErrYardNotFound, h.logger)
		return
	}

	var req dto.YardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	yard, err := h.yardUseCase.Update(c.Request.Context(), id, dto.ToYardInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.HandleDataGin(c, http.StatusOK, dto.MapYardToResponse(yard, h.builder))
}

// DeleteHandler removes a yard.
// DELETE /v1/yards/:id
func (h *YardHandler) DeleteHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, domain.ErrYardNotFound, h.logger)
		return
	}

	if err := h.yardUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
