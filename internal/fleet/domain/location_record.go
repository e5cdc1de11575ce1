package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/mottuflow/fleetflow/internal/errors"
)

// LocationRecord represents a sighting of a motorcycle by a camera in a yard.
type LocationRecord struct {
	ID             uuid.UUID
	RecordedAt     time.Time
	ReferencePoint string
	MotorcycleID   uuid.UUID
	YardID         uuid.UUID
	CameraID       uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ErrLocationRecordNotFound indicates the requested location record does not exist.
var ErrLocationRecordNotFound = errors.Wrap(errors.ErrNotFound, "location record not found")
