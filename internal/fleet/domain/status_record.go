package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/mottuflow/fleetflow/internal/errors"
)

// StatusRecord represents a status annotation made by a staff member about a
// motorcycle. Description is optional.
type StatusRecord struct {
	ID           uuid.UUID
	StatusType   string
	Description  *string
	RecordedAt   time.Time
	MotorcycleID uuid.UUID
	StaffID      uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ErrStatusRecordNotFound indicates the requested status record does not exist.
var ErrStatusRecordNotFound = errors.Wrap(errors.ErrNotFound, "status record not found")

// ErrReferencedRecordMissing indicates a foreign key target does not exist.
var ErrReferencedRecordMissing = errors.Wrap(errors.ErrInvalidInput, "referenced record does not exist")
