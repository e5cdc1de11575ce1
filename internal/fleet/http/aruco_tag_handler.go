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

const arucoTagBasePath = "/v1/aruco-tags"

var arucoTagSort = listing.Sort{
	Default: "code",
	Allowed: []string{"code", "status"},
}

// ArucoTagHandler handles HTTP requests for ArUco tag operations.
type ArucoTagHandler struct {
	tagUseCase usecase.ArucoTagUseCase
	builder    *hateoas.Builder
	logger     *slog.Logger
}

// NewArucoTagHandler creates a new ArUco tag handler.
func NewArucoTagHandler(tagUseCase usecase.ArucoTagUseCase, logger *slog.Logger) *ArucoTagHandler {
	return &ArucoTagHandler{
		tagUseCase: tagUseCase,
		builder:    hateoas.NewBuilder(arucoTagBasePath),
		logger:     logger,
	}
}

// Routes returns the ArUco tag route table. Reads are public, writes require a token.
func (h *ArucoTagHandler) Routes() []apphttp.Route {
	return []apphttp.Route{
		{Method: http.MethodGet, Path: arucoTagBasePath, Sensitivity: apphttp.Public, Handler: h.ListHandler},
		{Method: http.MethodGet, Path: arucoTagBasePath + "/:id", Sensitivity: apphttp.Public, Handler: h.GetHandler},
		{Method: http.MethodPost, Path: arucoTagBasePath, Handler: h.CreateHandler},
		{Method: http.MethodPut, Path: arucoTagBasePath + "/:id", Handler: h.UpdateHandler},
		{Method: http.MethodDelete, Path: arucoTagBasePath + "/:id", Handler: h.DeleteHandler},
	}
}

// ListHandler returns a filtered, sorted page of ArUco tags.
// GET /v1/aruco-tags?page=N&pageSize=N&code=&status=&orderBy=
func (h *ArucoTagHandler) ListHandler(c *gin.Context) {
	params := listing.ParseParams(c, arucoTagSort, "code", "status")

	items, total, err := h.tagUseCase.List(c.Request.Context(), params)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	responses := dto.MapArucoTagToResponses(items, h.builder)
	c.JSON(http.StatusOK, listing.NewPage(responses, total, params))
}

// GetHandler returns a single ArUco tag by id.
// GET /v1/aruco-tags/:id
func (h *ArucoTagHandler) GetHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, domain.ErrArucoTagNotFound, h.logger)
		return
	}

	tag, err := h.tagUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.HandleDataGin(c, http.StatusOK, dto.MapArucoTagToResponse(tag, h.builder))
}

// CreateHandler registers a new ArUco tag.
// POST /v1/aruco-tags
func (h *ArucoTagHandler) CreateHandler(c *gin.Context) {
	var req dto.ArucoTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	input, err := dto.ToArucoTagInput(req)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	tag, err := h.tagUseCase.Create(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.HandleDataGin(c, http.StatusCreated, dto.MapArucoTagToResponse(tag, h.builder))
}

// UpdateHandler replaces an ArUco tag's fields.
// PUT /v1/aruco-tags/:id
func (h *ArucoTagHandler) UpdateHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, domain.ErrArucoTagNotFound, h.logger)
		return
	}

	var req dto.ArucoTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	input, err := dto.ToArucoTagInput(req)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	tag, err := h.tagUseCase.Update(c.Request.Context(), id, input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.HandleDataGin(c, http.StatusOK, dto.MapArucoTagToResponse(tag, h.builder))
}

// DeleteHandler removes an ArUco tag.
// DELETE /v1/aruco-tags/:id
func (h *ArucoTagHandler) DeleteHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, domain.ErrArucoTagNotFound, h.logger)
		return
	}

	if err := h.tagUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
