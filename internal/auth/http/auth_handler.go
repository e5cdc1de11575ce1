package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mottuflow/fleetflow/internal/auth/http/dto"
	authUseCase "github.com/mottuflow/fleetflow/internal/auth/usecase"
	apphttp "github.com/mottuflow/fleetflow/internal/http"
	"github.com/mottuflow/fleetflow/internal/httputil"
	customValidation "github.com/mottuflow/fleetflow/internal/validation"
)

// AuthHandler handles HTTP requests for credential verification.
type AuthHandler struct {
	authUseCase authUseCase.AuthUseCase
	rateLimit   gin.HandlerFunc
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler. rateLimit may be nil when login
// rate limiting is disabled.
func NewAuthHandler(useCase authUseCase.AuthUseCase, rateLimit gin.HandlerFunc, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: useCase,
		rateLimit:   rateLimit,
		logger:      logger,
	}
}

// Routes returns the auth route table.
func (h *AuthHandler) Routes() []apphttp.Route {
	var middleware []gin.HandlerFunc
	if h.rateLimit != nil {
		middleware = append(middleware, h.rateLimit)
	}

	return []apphttp.Route{
		{
			Method:      http.MethodPost,
			Path:        "/v1/auth/login",
			Sensitivity: apphttp.Public,
			Handler:     h.LoginHandler,
			Middleware:  middleware,
		},
	}
}

// LoginHandler verifies credentials and mints an access token.
// POST /v1/auth/login
// Returns 200 with {token, role, expiresIn} or 401 invalid_credentials.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	output, err := h.authUseCase.Login(c.Request.Context(), dto.ToLoginInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapLoginOutputToResponse(output))
}
