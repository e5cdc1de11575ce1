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

// ArucoTagInput contains the input data for creating or updating an ArUco tag.
type ArucoTagInput struct {
	Code         string
	Status       string
	MotorcycleID uuid.UUID
}

// ArucoTagUseCase defines ArUco tag business logic operations.
type ArucoTagUseCase interface {
	Create(ctx context.Context, input ArucoTagInput) (*domain.ArucoTag, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.ArucoTag, error)
	List(ctx context.Context, params listing.Params) ([]*domain.ArucoTag, int, error)
	Update(ctx context.Context, id uuid.UUID, input ArucoTagInput) (*domain.ArucoTag, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ArucoTagRepository defines ArUco tag persistence operations.
type ArucoTagRepository interface {
	Create(ctx context.Context, tag *domain.ArucoTag) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ArucoTag, error)
	List(ctx context.Context, params listing.Params) ([]*domain.ArucoTag, error)
	Count(ctx context.Context, filters map[string]string) (int, error)
	Update(ctx context.Context, tag *domain.ArucoTag) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type arucoTagUseCase struct {
	tagRepo ArucoTagRepository
}

// NewArucoTagUseCase creates a new ArucoTagUseCase.
func NewArucoTagUseCase(tagRepo ArucoTagRepository) ArucoTagUseCase {
	return &arucoTagUseCase{tagRepo: tagRepo}
}

func validateArucoTagInput(input *ArucoTagInput) error {
	err := validation.ValidateStruct(input,
		validation.Field(&input.Code,
			validation.Required.Error("code is required"),
			appValidation.NotBlank,
			appValidation.NoWhitespace,
			validation.Length(1, 100).Error("code must be between 1 and 100 characters"),
		),
		validation.Field(&input.Status,
			validation.Required.Error("status is required"),
			appValidation.NotBlank,
			validation.Length(1, 100).Error("status must be between 1 and 100 characters"),
		),
		validation.Field(&input.MotorcycleID,
			validation.Required.Error("motorcycleId is required"),
		),
	)
	return appValidation.WrapValidationError(err)
}

func (uc *arucoTagUseCase) Create(ctx context.Context, input ArucoTagInput) (*domain.ArucoTag, error) {
	if err := validateArucoTagInput(&input); err != nil {
		return nil, err
	}

	tag := &domain.ArucoTag{
		ID:           uuid.Must(uuid.NewV7()),
		Code:         strings.TrimSpace(input.Code),
		Status:       strings.TrimSpace(input.Status),
		MotorcycleID: input.MotorcycleID,
	}

	if err := uc.tagRepo.Create(ctx, tag); err != nil {
		return nil, err
	}

	return tag, nil
}

func (uc *arucoTagUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.ArucoTag, error) {
	return uc.tagRepo.GetByID(ctx, id)
}

func (uc *arucoTagUseCase) List(ctx context.Context, params listing.Params) ([]*domain.ArucoTag, int, error) {
	items, err := uc.tagRepo.List(ctx, params)
	if err != nil {
		return nil, 0, err
	}

	total, err := uc.tagRepo.Count(ctx, params.Filters)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (uc *arucoTagUseCase) Update(ctx context.Context, id uuid.UUID, input ArucoTagInput) (*domain.ArucoTag, error) {
	if err := validateArucoTagInput(&input); err != nil {
		return nil, err
	}

	tag, err := uc.tagRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	tag.Code = strings.TrimSpace(input.Code)
	tag.Status = strings.TrimSpace(input.Status)
	tag.MotorcycleID = input.MotorcycleID
	tag.UpdatedAt = time.Now().UTC()

	if err := uc.tagRepo.Update(ctx, tag); err != nil {
		return nil, err
	}

	return tag, nil
}

func (uc *arucoTagUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.tagRepo.Delete(ctx, id)
}
