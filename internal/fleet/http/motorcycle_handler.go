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

const motorcycleBasePath = "/v1/motorcycles"

var motorcycleSort = listing.Sort{
	Default: "plate",
	Allowed: []string{"plate", "model", "year"},
}

// MotorcycleHandler handles HTTP requests for motorcycle operations.
type MotorcycleHandler struct {
	motorcycleUseCase usecase.MotorcycleUseCase
	builder           *hateoas.Builder
	logger            *slog.Logger
}

// NewMotorcycleHandler creates a new motorcycle handler.
func NewMotorcycleHandler(motorcycleUseCase usecase.MotorcycleUseCase, logger *slog.Logger) *MotorcycleHandler {
	return &MotorcycleHandler{
		motorcycleUseCase: motorcycleUseCase,
		builder:           hateoas.NewBuilder(motorcycleBasePath),
		logger:            logger,
	}
}

// Routes returns the motorcycle route table. Reads are public, writes require a token.
func (h *MotorcycleHandler) Routes() []apphttp.Route {
	return []apphttp.Route{
		{Method: http.MethodGet, Path: motorcycleBasePath, Sensitivity: apphttp.Public, Handler: h.ListHandler},
		{Method: http.MethodGet, Path: motorcycleBasePath + "/:id", Sensitivity: apphttp.Public, Handler: h.GetHandler},
		{Method: http.MethodPost, Path: motorcycleBasePath, Handler: h.CreateHandler},
		{Method: http.MethodPut, Path: motorcycleBasePath + "/:id", Handler: h.UpdateHandler},
		{Method: http.MethodDelete, Path: motorcycleBasePath + "/:id", Handler: h.DeleteHandler},
	}
}

// ListHandler returns a filtered, sorted page of motorcycles.
// GET /v1/motorcycles?page=N&pageSize=N&plate=&model=&manufacturer=&orderBy=
func (h *MotorcycleHandler) ListHandler(c *gin.Context) {
	params := listing.ParseParams(c, motorcycleSort, "plate", "model", "manufacturer")

	items, total, err := h.motorcycleUseCase.List(c.Request.Context(), params)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	responses := dto.MapMotorcycleToResponses(items, h.builder)
	c.JSON(http.StatusOK, listing.NewPage(responses, total, params))
}

// GetHandler returns a single motorcycle by id.
// GET /v1/motorcycles/:id
func (h *MotorcycleHandler) GetHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, domain.ErrMotorcycleNotFound, h.logger)
		return
	}

	motorcycle, err := h.motorcycleUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.HandleDataGin(c, http.StatusOK, dto.MapMotorcycleToResponse(motorcycle, h.builder))
}

// CreateHandler registers a new motorcycle.
// POST /v1/motorcycles
func (h *MotorcycleHandler) CreateHandler(c *gin.Context) {
	var req dto.MotorcycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	input, err := dto.ToMotorcycleInput(req)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	motorcycle, err := h.motorcycleUseCase.Create(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.HandleDataGin(c, http.StatusCreated, dto.MapMotorcycleToResponse(motorcycle, h.builder))
}

// UpdateHandler replaces a motorcycle's fields.
// PUT /v1/motorcycles/:id
func (h *MotorcycleHandler) UpdateHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, domain.ErrMotorcycleNotFound, h.logger)
		return
	}

	var req dto.MotorcycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	input, err := dto.ToMotorcycleInput(req)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	motorcycle, err := h.motorcycleUseCase.Update(c.Request.Context(), id, input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.HandleDataGin(c, http.StatusOK, dto.MapMotorcycleToResponse(motorcycle, h.builder))
}

// DeleteHandler removes a motorcycle.
// DELETE /v1/motorcycles/:id
func (h *MotorcycleHandler) DeleteHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, domain.ErrMotorcycleNotFound, h.logger)
		return
	}

	if err := h.motorcycleUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
