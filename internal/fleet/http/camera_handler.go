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

const cameraBasePath = "/v1/cameras"

var cameraSort = listing.Sort{
	Default: "physicalLocation",
	Allowed: []string{"physicalLocation", "operationalStatus"},
}

// CameraHandler handles HTTP requests for camera operations.
type CameraHandler struct {
	cameraUseCase usecase.CameraUseCase
	builder       *hateoas.Builder
	logger        *slog.Logger
}

// NewCameraHandler creates a new camera handler.
func NewCameraHandler(cameraUseCase usecase.CameraUseCase, logger *slog.Logger) *CameraHandler {
	return &CameraHandler{
		cameraUseCase: cameraUseCase,
		builder:       hateoas.NewBuilder(cameraBasePath),
		logger:        logger,
	}
}

// Routes returns the camera route table. Reads are public, writes require a token.
func (h *CameraHandler) Routes() []apphttp.Route {
	return []apphttp.Route{
		{Method: http.MethodGet, Path: cameraBasePath, Sensitivity: apphttp.Public, Handler: h.ListHandler},
		{Method: http.MethodGet, Path: cameraBasePath + "/:id", Sensitivity: apphttp.Public, Handler: h.GetHandler},
		{Method: http.MethodPost, Path: cameraBasePath, Handler: h.CreateHandler},
		{Method: http.MethodPut, Path: cameraBasePath + "/:id", Handler: h.UpdateHandler},
		{Method: http.MethodDelete, Path: cameraBasePath + "/:id", Handler: h.DeleteHandler},
	}
}

// ListHandler returns a filtered, sorted page of cameras.
// GET /v1/cameras?page=N&pageSize=N&operationalStatus=&orderBy=
func (h *CameraHandler) ListHandler(c *gin.Context) {
	params := listing.ParseParams(c, cameraSort, "operationalStatus")

	items, total, err := h.cameraUseCase.List(c.Request.Context(), params)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	responses := dto.MapCameraToResponses(items, h.builder)
	c.JSON(http.StatusOK, listing.NewPage(responses, total, params))
}

// GetHandler returns a single camera by id.
// GET /v1/cameras/:id
func (h *CameraHandler) GetHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, domain.ErrCameraNotFound, h.logger)
		return
	}

	camera, err := h.cameraUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.HandleDataGin(c, http.StatusOK, dto.MapCameraToResponse(camera, h.builder))
}

// CreateHandler registers a new camera.
// POST /v1/cameras
func (h *CameraHandler) CreateHandler(c *gin.Context) {
	var req dto.CameraRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	input, err := dto.ToCameraInput(req)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	camera, err := h.cameraUseCase.Create(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.HandleDataGin(c, http.StatusCreated, dto.MapCameraToResponse(camera, h.builder))
}

// UpdateHandler replaces a camera's fields.
// PUT /v1/cameras/:id
func (h *CameraHandler) UpdateHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, domain.ErrCameraNotFound, h.logger)
		return
	}

	var req dto.CameraRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	input, err := dto.ToCameraInput(req)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	camera, err := h.cameraUseCase.Update(c.Request.Context(), id, input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.HandleDataGin(c, http.StatusOK, dto.MapCameraToResponse(camera, h.builder))
}

// DeleteHandler removes a camera.
// DELETE /v1/cameras/:id
func (h *CameraHandler) DeleteHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, domain.ErrCameraNotFound, h.logger)
		return
	}

	if err := h.cameraUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
