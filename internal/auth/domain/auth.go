// Package domain defines authentication domain models and errors.
package domain

import (
	"github.com/google/uuid"

	"github.com/mottuflow/fleetflow/internal/errors"
)

// Claims is the identity carried inside an access token. StaffID becomes the
// token subject; Name, Email and Role travel as custom claims.
type Claims struct {
	StaffID uuid.UUID
	Name    string
	Email   string
	Role    string
}

// LoginInput contains the credentials presented to the login endpoint.
type LoginInput struct {
	LoginKey string
	Secret   string
}

// LoginOutput is the result of a successful credential verification.
type LoginOutput struct {
	Token     string
	Role      string
	ExpiresIn string
}

// Authentication errors. Every token decode failure collapses into
// ErrInvalidToken so callers cannot distinguish a bad signature from an
// expired or malformed token.
var (
	// ErrInvalidToken indicates the access token failed verification.
	ErrInvalidToken = errors.Wrap(errors.ErrUnauthorized, "invalid token")
)
