// Package http provides the login endpoint and authentication middleware.
package http

import (
	"context"

	authDomain "github.com/mottuflow/fleetflow/internal/auth/domain"
)

// claimsKey is a context key type for storing verified token claims.
type claimsKey struct{}

// WithClaims stores verified claims in the context. Called by the
// authentication middleware after successful token validation.
func WithClaims(ctx context.Context, claims *authDomain.Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// GetClaims retrieves verified claims from the context.
// Returns (claims, true) when present, or (nil, false) when the request was
// anonymous.
func GetClaims(ctx context.Context) (*authDomain.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*authDomain.Claims)
	return claims, ok
}
