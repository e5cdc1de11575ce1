// Package http provides HTTP handlers for staff management operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mottuflow/fleetflow/internal/hateoas"
	apphttp "github.com/mottuflow/fleetflow/internal/http"
	"github.com/mottuflow/fleetflow/internal/httputil"
	"github.com/mottuflow/fleetflow/internal/listing"
	"github.com/mottuflow/fleetflow/internal/staff/domain"
	"github.com/mottuflow/fleetflow/internal/staff/http/dto"
	"github.com/mottuflow/fleetflow/internal/staff/usecase"
)

const staffBasePath = "/v1/staff"

var staffSort = listing.Sort{
	Default: "name",
	Allowed: []string{"name", "role", "email"},
}

// StaffHandler handles HTTP requests for staff management operations.
type StaffHandler struct {
	staffUseCase usecase.UseCase
	builder      *hateoas.Builder
	logger       *slog.Logger
}

// NewStaffHandler creates a new staff handler.
func NewStaffHandler(staffUseCase usecase.UseCase, logger *slog.Logger) *StaffHandler {
	return &StaffHandler{
		staffUseCase: staffUseCase,
		builder:      hateoas.NewBuilder(staffBasePath),
		logger:       logger,
	}
}

// Routes returns the staff route table. Reads are public, writes require a token.
func (h *StaffHandler) Routes() []apphttp.Route {
	return []apphttp.Route{
		{Method: http.MethodGet, Path: staffBasePath, Sensitivity: apphttp.Public, Handler: h.ListHandler},
		{Method: http.MethodGet, Path: staffBasePath + "/:id", Sensitivity: apphttp.Public, Handler: h.GetHandler},
		{Method: http.MethodPost, Path: staffBasePath, Handler: h.CreateHandler},
		{Method: http.MethodPut, Path: staffBasePath + "/:id", Handler: h.UpdateHandler},
		{Method: http.MethodDelete, Path: staffBasePath + "/:id", Handler: h.DeleteHandler},
	}
}

// ListHandler returns a filtered, sorted page of staff members.
// GET /v1/staff?page=N&pageSize=N&name=&role=&orderBy=
func (h *StaffHandler) ListHandler(c *gin.Context) {
	params := listing.ParseParams(c, staffSort, "name", "role")

	items, total, err := h.staffUseCase.List(c.Request.Context(), params)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	responses := dto.MapStaffToResponses(items, h.builder)
	c.JSON(http.StatusOK, listing.NewPage(responses, total, params))
}

// GetHandler returns a single staff member by id.
// GET /v1/staff/:id
func (h *StaffHandler) GetHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, domain.ErrStaffNotFound, h.logger)
		return
	}

	staff, err := h.staffUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.HandleDataGin(c, http.StatusOK, dto.MapStaffToResponse(staff, h.builder))
}

// CreateHandler registers a new staff member.
// POST /v1/staff
func (h *StaffHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	staff, err := h.staffUseCase.Create(c.Request.Context(), dto.ToCreateStaffInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.HandleDataGin(c, http.StatusCreated, dto.MapStaffToResponse(staff, h.builder))
}

// UpdateHandler replaces a staff member's fields.
// PUT /v1/staff/:id
func (h *StaffHandler) UpdateHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, domain.ErrStaffNotFound, h.logger)
		return
	}

	var req dto.UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	staff, err := h.staffUseCase.Update(c.Request.Context(), id, dto.ToUpdateStaffInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.HandleDataGin(c, http.StatusOK, dto.MapStaffToResponse(staff, h.builder))
}

// DeleteHandler removes a staff member.
// DELETE /v1/staff/:id
func (h *StaffHandler) DeleteHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, domain.ErrStaffNotFound, h.logger)
		return
	}

	if err := h.staffUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
