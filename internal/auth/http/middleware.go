package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authService "github.com/mottuflow/fleetflow/internal/auth/service"
	apperrors "github.com/mottuflow/fleetflow/internal/errors"
	"github.com/mottuflow/fleetflow/internal/httputil"
)

const bearerPrefix = "bearer "

// extractBearerToken pulls the token out of the Authorization header.
// The "Bearer" scheme is matched case-insensitively. Returns "" when the
// header is missing or malformed.
func extractBearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) < len(bearerPrefix) ||
		!strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return authHeader[len(bearerPrefix):]
}

// RequireAuthMiddleware rejects requests without a valid bearer token.
//
// On success the verified claims are stored in the request context for
// downstream handlers via GetClaims(). Missing, malformed, expired, or
// otherwise invalid tokens all produce 401 with a generic body.
func RequireAuthMiddleware(tokenCodec authService.TokenCodec, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		plainToken := extractBearerToken(c)
		if plainToken == "" {
			logger.Debug("authentication failed: missing or malformed authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		claims, err := tokenCodec.Decode(plainToken)
		if err != nil {
			logger.Debug("authentication failed", slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		ctx := WithClaims(c.Request.Context(), claims)
		c.Request = c.Request.WithContext(ctx)

		logger.Debug("authentication successful",
			slog.String("staff_id", claims.StaffID.String()),
			slog.String("role", claims.Role))

		c.Next()
	}
}

// OptionalAuthMiddleware decodes a bearer token when one is present but never
// rejects the request. Valid claims are stored in the context; invalid or
// absent tokens leave the request anonymous. Used on public routes so
// handlers can still see who is asking.
func OptionalAuthMiddleware(tokenCodec authService.TokenCodec, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		plainToken := extractBearerToken(c)
		if plainToken != "" {
			if claims, err := tokenCodec.Decode(plainToken); err == nil {
				ctx := WithClaims(c.Request.Context(), claims)
				c.Request = c.Request.WithContext(ctx)
			} else {
				logger.Debug("optional authentication skipped",
					slog.String("error", err.Error()))
			}
		}

		c.Next()
	}
}
