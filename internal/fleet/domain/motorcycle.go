package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/mottuflow/fleetflow/internal/errors"
)

// Motorcycle represents a tracked motorcycle assigned to a yard.
type Motorcycle struct {
	ID              uuid.UUID
	Plate           string
	Model           string
	Manufacturer    string
	Year            int
	YardID          uuid.UUID
	CurrentLocation string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Motorcycle errors.
var (
	// ErrMotorcycleNotFound indicates the requested motorcycle does not exist.
	ErrMotorcycleNotFound = errors.Wrap(errors.ErrNotFound, "motorcycle not found")

	// ErrMotorcycleAlreadyExists indicates a motorcycle with the same plate already exists.
	ErrMotorcycleAlreadyExists = errors.Wrap(errors.ErrConflict, "motorcycle already exists")
)
