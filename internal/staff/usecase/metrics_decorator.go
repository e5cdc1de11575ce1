package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mottuflow/fleetflow/internal/listing"
	"github.com/mottuflow/fleetflow/internal/metrics"
	"github.com/mottuflow/fleetflow/internal/staff/domain"
)

// staffUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type staffUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewStaffUseCaseWithMetrics wraps a UseCase with metrics recording.
func NewStaffUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &staffUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (s *staffUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	s.metrics.RecordOperation(ctx, "staff", operation, status)
	s.metrics.RecordDuration(ctx, "staff", operation, time.Since(start), status)
}

// Create records metrics for staff registration operations.
func (s *staffUseCaseWithMetrics) Create(ctx context.Context, input CreateStaffInput) (*domain.Staff, error) {
	start := time.Now()
	staff, err := s.next.Create(ctx, input)
	s.record(ctx, "staff_create", start, err)
	return staff, err
}

// Get records metrics for staff retrieval operations.
func (s *staffUseCaseWithMetrics) Get(ctx context.Context, id uuid.UUID) (*domain.Staff, error) {
	start := time.Now()
	staff, err := s.next.Get(ctx, id)
	s.record(ctx, "staff_get", start, err)
	return staff, err
}

// List records metrics for staff listing operations.
func (s *staffUseCaseWithMetrics) List(ctx context.Context, params listing.Params) ([]*domain.Staff, int, error) {
	start := time.Now()
	items, total, err := s.next.List(ctx, params)
	s.record(ctx, "staff_list", start, err)
	return items, total, err
}

// Update records metrics for staff update operations.
func (s *staffUseCaseWithMetrics) Update(ctx context.Context, id uuid.UUID, input UpdateStaffInput) (*domain.Staff, error) {
	start := time.Now()
	staff, err := s.next.Update(ctx, id, input)
	s.record(ctx, "staff_update", start, err)
	return staff, err
}

// Delete records metrics for staff deletion operations.
func (s *staffUseCaseWithMetrics) Delete(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	err := s.next.Delete(ctx, id)
	s.record(ctx, "staff_delete", start, err)
	return err
}
