package usecase

import (
	"context"
	"strings"
	"time"

	validation "github.com/jellydator/validation"

	"github.com/google/uuid"

	"github.com/mottuflow/fleetflow/internal/database"
	"github.com/mottuflow/fleetflow/internal/fleet/domain"
	"github.com/mottuflow/fleetflow/internal/listing"
	appValidation "github.com/mottuflow/fleetflow/internal/validation"
)

// MotorcycleInput contains the input data for creating or updating a motorcycle.
type MotorcycleInput struct {
	Plate           string
	Model           string
	Manufacturer    string
	Year            int
	YardID          uuid.UUID
	CurrentLocation string
}

// MotorcycleUseCase defines motorcycle business logic operations.
type MotorcycleUseCase interface {
	Create(ctx context.Context, input MotorcycleInput) (*domain.Motorcycle, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Motorcycle, error)
	List(ctx context.Context, params listing.Params) ([]*domain.Motorcycle, int, error)
	Update(ctx context.Context, id uuid.UUID, input MotorcycleInput) (*domain.Motorcycle, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// MotorcycleRepository defines motorcycle persistence operations.
type MotorcycleRepository interface {
	Create(ctx context.Context, motorcycle *domain.Motorcycle) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Motorcycle, error)
	List(ctx context.Context, params listing.Params) ([]*domain.Motorcycle, error)
	Count(ctx context.Context, filters map[string]string) (int, error)
	Update(ctx context.Context, motorcycle *domain.Motorcycle) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TagRemover detaches ArUco tags from a motorcycle being removed.
type TagRemover interface {
	DeleteByMotorcycleID(ctx context.Context, motorcycleID uuid.UUID) error
}

type motorcycleUseCase struct {
	txManager      database.TxManager
	motorcycleRepo MotorcycleRepository
	tagRemover     TagRemover
}

// NewMotorcycleUseCase creates a new MotorcycleUseCase.
func NewMotorcycleUseCase(txManager database.TxManager, motorcycleRepo MotorcycleRepository, tagRemover TagRemover) MotorcycleUseCase {
	return &motorcycleUseCase{
		txManager:      txManager,
		motorcycleRepo: motorcycleRepo,
		tagRemover:     tagRemover,
	}
}

func validateMotorcycleInput(input *MotorcycleInput) error {
	err := validation.ValidateStruct(input,
		validation.Field(&input.Plate,
			validation.Required.Error("plate is required"),
			appValidation.Plate,
		),
		validation.Field(&input.Model,
			validation.Required.Error("model is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("model must be between 1 and 255 characters"),
		),
		validation.Field(&input.Manufacturer,
			validation.Required.Error("manufacturer is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("manufacturer must be between 1 and 255 characters"),
		),
		validation.Field(&input.Year,
			validation.Required.Error("year is required"),
			validation.Min(1900).Error("year must be 1900 or later"),
			validation.Max(2100).Error("year must be 2100 or earlier"),
		),
		validation.Field(&input.YardID,
			validation.Required.Error("yardId is required"),
		),
	)
	return appValidation.WrapValidationError(err)
}

func (uc *motorcycleUseCase) Create(ctx context.Context, input MotorcycleInput) (*domain.Motorcycle, error) {
	if err := validateMotorcycleInput(&input); err != nil {
		return nil, err
	}

	motorcycle := &domain.Motorcycle{
		ID:              uuid.Must(uuid.NewV7()),
		Plate:           strings.ToUpper(strings.TrimSpace(input.Plate)),
		Model:           strings.TrimSpace(input.Model),
		Manufacturer:    strings.TrimSpace(input.Manufacturer),
		Year:            input.Year,
		YardID:          input.YardID,
		CurrentLocation: strings.TrimSpace(input.CurrentLocation),
	}

	if err := uc.motorcycleRepo.Create(ctx, motorcycle); err != nil {
		return nil, err
	}

	return motorcycle, nil
}

func (uc *motorcycleUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Motorcycle, error) {
	return uc.motorcycleRepo.GetByID(ctx, id)
}

func (uc *motorcycleUseCase) List(ctx context.Context, params listing.Params) ([]*domain.Motorcycle, int, error) {
	items, err := uc.motorcycleRepo.List(ctx, params)
	if err != nil {
		return nil, 0, err
	}

	total, err := uc.motorcycleRepo.Count(ctx, params.Filters)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (uc *motorcycleUseCase) Update(ctx context.Context, id uuid.UUID, input MotorcycleInput) (*domain.Motorcycle, error) {
	if err := validateMotorcycleInput(&input); err != nil {
		return nil, err
	}

	motorcycle, err := uc.motorcycleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	motorcycle.Plate = strings.ToUpper(strings.TrimSpace(input.Plate))
	motorcycle.Model = strings.TrimSpace(input.Model)
	motorcycle.Manufacturer = strings.TrimSpace(input.Manufacturer)
	motorcycle.Year = input.Year
	motorcycle.YardID = input.YardID
	motorcycle.CurrentLocation = strings.TrimSpace(input.CurrentLocation)
	motorcycle.UpdatedAt = time.Now().UTC()

	if err := uc.motorcycleRepo.Update(ctx, motorcycle); err != nil {
		return nil, err
	}

	return motorcycle, nil
}

// Delete removes a motorcycle along with its ArUco tags in a single
// transaction. Location and status records referencing the motorcycle
// still block the delete.
func (uc *motorcycleUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := uc.tagRemover.DeleteByMotorcycleID(ctx, id); err != nil {
			return err
		}
		return uc.motorcycleRepo.Delete(ctx, id)
	})
}
