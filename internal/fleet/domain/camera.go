package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/mottuflow/fleetflow/internal/errors"
)

// Camera represents a yard camera used to spot ArUco tags.
type Camera struct {
	ID                uuid.UUID
	OperationalStatus string
	PhysicalLocation  string
	YardID            uuid.UUID
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ErrCameraNotFound indicates the requested camera does not exist.
var ErrCameraNotFound = errors.Wrap(errors.ErrNotFound, "camera not found")
