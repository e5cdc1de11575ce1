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

// LocationRecordInput contains the input data for creating or updating a location record.
// A zero RecordedAt defaults to the current time.
type LocationRecordInput struct {
	RecordedAt     time.Time
	ReferencePoint string
	MotorcycleID   uuid.UUID
	YardID         uuid.UUID
	CameraID       uuid.UUID
}

// LocationRecordUseCase defines location record business logic operations.
type LocationRecordUseCase interface {
	Create(ctx context.Context, input LocationRecordInput) (*domain.LocationRecord, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.LocationRecord, error)
	List(ctx context.Context, params listing.Params) ([]*domain.LocationRecord, int, error)
	Update(ctx context.Context, id uuid.UUID, input LocationRecordInput) (*domain.LocationRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// LocationRecordRepository defines location record persistence operations.
type LocationRecordRepository interface {
	Create(ctx context.Context, record *domain.LocationRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.LocationRecord, error)
	List(ctx context.Context, params listing.Params) ([]*domain.LocationRecord, error)
	Count(ctx context.Context, filters map[string]string) (int, error)
	Update(ctx context.Context, record *domain.LocationRecord) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type locationRecordUseCase struct {
	locationRepo LocationRecordRepository
}

// NewLocationRecordUseCase creates a new LocationRecordUseCase.
func NewLocationRecordUseCase(locationRepo LocationRecordRepository) LocationRecordUseCase {
	return &locationRecordUseCase{locationRepo: locationRepo}
}

func validateLocationRecordInput(input *LocationRecordInput) error {
	err := validation.ValidateStruct(input,
		validation.Field(&input.ReferencePoint,
			validation.Required.Error("referencePoint is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("referencePoint must be between 1 and 255 characters"),
		),
		validation.Field(&input.MotorcycleID,
			validation.Required.Error("motorcycleId is required"),
		),
		validation.Field(&input.YardID,
			validation.Required.Error("yardId is required"),
		),
		validation.Field(&input.CameraID,
			validation.Required.Error("cameraId is required"),
		),
	)
	return appValidation.WrapValidationError(err)
}

func (uc *locationRecordUseCase) Create(ctx context.Context, input LocationRecordInput) (*domain.LocationRecord, error) {
	if err := validateLocationRecordInput(&input); err != nil {
		return nil, err
	}

	recordedAt := input.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now().UTC()
	}

	record := &domain.LocationRecord{
		ID:             uuid.Must(uuid.NewV7()),
		RecordedAt:     recordedAt,
		ReferencePoint: strings.TrimSpace(input.ReferencePoint),
		MotorcycleID:   input.MotorcycleID,
		YardID:         input.YardID,
		CameraID:       input.CameraID,
	}

	if err := uc.locationRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

func (uc *locationRecordUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.LocationRecord, error) {
	return uc.locationRepo.GetByID(ctx, id)
}

func (uc *locationRecordUseCase) List(ctx context.Context, params listing.Params) ([]*domain.LocationRecord, int, error) {
	items, err := uc.locationRepo.List(ctx, params)
	if err != nil {
		return nil, 0, err
	}

	total, err := uc.locationRepo.Count(ctx, params.Filters)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (uc *locationRecordUseCase) Update(ctx context.Context, id uuid.UUID, input LocationRecordInput) (*domain.LocationRecord, error) {
	if err := validateLocationRecordInput(&input); err != nil {
		return nil, err
	}

	record, err := uc.locationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !input.RecordedAt.IsZero() {
		record.RecordedAt = input.RecordedAt
	}
	record.ReferencePoint = strings.TrimSpace(input.ReferencePoint)
	record.MotorcycleID = input.MotorcycleID
	record.YardID = input.YardID
	record.CameraID = input.CameraID
	record.UpdatedAt = time.Now().UTC()

	if err := uc.locationRepo.Update(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

func (uc *locationRecordUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.locationRepo.Delete(ctx, id)
}
