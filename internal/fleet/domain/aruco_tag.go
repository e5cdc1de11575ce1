package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/mottuflow/fleetflow/internal/errors"
)

// ArucoTag represents a visual marker attached to a motorcycle.
type ArucoTag struct {
	ID           uuid.UUID
	Code         string
	Status       string
	MotorcycleID uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ArUco tag errors.
var (
	// ErrArucoTagNotFound indicates the requested tag does not exist.
	ErrArucoTagNotFound = errors.Wrap(errors.ErrNotFound, "aruco tag not found")

	// ErrArucoTagAlreadyExists indicates a tag with the same code already exists.
	ErrArucoTagAlreadyExists = errors.Wrap(errors.ErrConflict, "aruco tag already exists")
)
