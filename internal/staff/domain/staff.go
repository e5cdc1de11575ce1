// Package domain defines the staff member domain entities and errors.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/mottuflow/fleetflow/internal/errors"
)

// Staff represents an employee who operates the fleet backend. The Password
// field always holds the Argon2id hash, never the plain text.
type Staff struct {
	ID        uuid.UUID
	Name      string
	CPF       string
	Role      string
	Phone     string
	Email     string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Domain-specific errors for staff operations.
var (
	// ErrStaffNotFound indicates the requested staff member does not exist.
	ErrStaffNotFound = errors.Wrap(errors.ErrNotFound, "staff member not found")

	// ErrStaffAlreadyExists indicates a staff member with the same email or CPF already exists.
	ErrStaffAlreadyExists = errors.Wrap(errors.ErrConflict, "staff member already exists")
)
