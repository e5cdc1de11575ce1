package usecase

import (
	"context"
	"strings"
	"time"

	validation "github.com/jellydator/validation"

	"github.com/google/uuid"

	"github.com/mottuflow/fleetflow/internal/fleet/domain"
	"github.com/mottuflow/fleetflow/internal/listing"
	appValidation "github.com/mottuflow/fleetflow/internal/validation"
)

// StatusRecordInput contains the input data for creating or updating a status record.
// A zero RecordedAt defaults to the current time.
type StatusRecordInput struct {
	StatusType   string
	Description  *string
	RecordedAt   time.Time
	MotorcycleID uuid.UUID
	StaffID      uuid.UUID
}

// StatusRecordUseCase defines status record business logic operations.
type StatusRecordUseCase interface {
	Create(ctx context.Context, input StatusRecordInput) (*domain.StatusRecord, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.StatusRecord, error)
	List(ctx context.Context, params listing.Params) ([]*domain.StatusRecord, int, error)
	Update(ctx context.Context, id uuid.UUID, input StatusRecordInput) (*domain.StatusRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// StatusRecordRepository defines status record persistence operations.
type StatusRecordRepository interface {
	Create(ctx context.Context, record *domain.StatusRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.StatusRecord, error)
	List(ctx context.Context, params listing.Params) ([]*domain.StatusRecord, error)
	Count(ctx context.Context, filters map[string]string) (int, error)
	Update(ctx context.Context, record *domain.StatusRecord) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type statusRecordUseCase struct {
	statusRepo StatusRecordRepository
}

// NewStatusRecordUseCase creates a new StatusRecordUseCase.
func NewStatusRecordUseCase(statusRepo StatusRecordRepository) StatusRecordUseCase {
	return &statusRecordUseCase{statusRepo: statusRepo}
}

func validateStatusRecordInput(input *StatusRecordInput) error {
	err := validation.ValidateStruct(input,
		validation.Field(&input.StatusType,
			validation.Required.Error("statusType is required"),
			appValidation.NotBlank,
			validation.Length(1, 100).Error("statusType must be between 1 and 100 characters"),
		),
		validation.Field(&input.Description,
			validation.Length(0, 1000).Error("description must be at most 1000 characters"),
		),
		validation.Field(&input.MotorcycleID,
			validation.Required.Error("motorcycleId is required"),
		),
		validation.Field(&input.StaffID,
			validation.Required.Error("staffId is required"),
		),
	)
	return appValidation.WrapValidationError(err)
}

func (uc *statusRecordUseCase) Create(ctx context.Context, input StatusRecordInput) (*domain.StatusRecord, error) {
	if err := validateStatusRecordInput(&input); err != nil {
		return nil, err
	}

	recordedAt := input.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now().UTC()
	}

	record := &domain.StatusRecord{
		ID:           uuid.Must(uuid.NewV7()),
		StatusType:   strings.TrimSpace(input.StatusType),
		Description:  input.Description,
		RecordedAt:   recordedAt,
		MotorcycleID: input.MotorcycleID,
		StaffID:      input.StaffID,
	}

	if err := uc.statusRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

func (uc *statusRecordUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.StatusRecord, error) {
	return uc.statusRepo.GetByID(ctx, id)
}

func (uc *statusRecordUseCase) List(ctx context.Context, params listing.Params) ([]*domain.StatusRecord, int, error) {
	items, err := uc.statusRepo.List(ctx, params)
	if err != nil {
		return nil, 0, err
	}

	total, err := uc.statusRepo.Count(ctx, params.Filters)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (uc *statusRecordUseCase) Update(ctx context.Context, id uuid.UUID, input StatusRecordInput) (*domain.StatusRecord, error) {
	if err := validateStatusRecordInput(&input); err != nil {
		return nil, err
	}

	record, err := uc.statusRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	record.StatusType = strings.TrimSpace(input.StatusType)
	record.Description = input.Description
	if !input.RecordedAt.IsZero() {
		record.RecordedAt = input.RecordedAt
	}
	record.MotorcycleID = input.MotorcycleID
	record.StaffID = input.StaffID
	record.UpdatedAt = time.Now().UTC()

	if err := uc.statusRepo.Update(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

func (uc *statusRecordUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.statusRepo.Delete(ctx, id)
}
