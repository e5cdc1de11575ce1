// Package domain defines the fleet tracking domain entities and errors:
// yards, motorcycles, cameras, ArUco tags, location records and status
// records.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/mottuflow/fleetflow/internal/errors"
)

// Yard represents a physical yard where motorcycles are parked.
type Yard struct {
	ID          uuid.UUID
	Name        string
	Address     string
	MaxCapacity int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ErrYardNotFound indicates the requested yard does not exist.
var ErrYardNotFound = errors.Wrap(errors.ErrNotFound, "yard not found")
