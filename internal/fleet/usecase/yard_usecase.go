// Package usecase implements the fleet business logic.
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

// YardInput contains the input data for creating or updating a yard.
type YardInput struct {
	Name        string
	Address     string
	MaxCapacity int
}

// YardUseCase defines yard business logic operations.
type YardUseCase interface {
	Create(ctx context.Context, input YardInput) (*domain.Yard, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Yard, error)
	List(ctx context.Context, params listing.Params) ([]*domain.Yard, int, error)
	Update(ctx context.Context, id uuid.UUID, input YardInput) (*domain.Yard, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// YardRepository defines yard persistence operations.
type YardRepository interface {
	Create(ctx context.Context, yard *domain.Yard) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Yard, error)
	List(ctx context.Context, params listing.Params) ([]*domain.Yard, error)
	Count(ctx context.Context, filters map[string]string) (int, error)
	Update(ctx context.Context, yard *domain.Yard) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type yardUseCase struct {
	yardRepo YardRepository
}

// NewYardUseCase creates a new YardUseCase.
func NewYardUseCase(yardRepo YardRepository) YardUseCase {
	return &yardUseCase{yardRepo: yardRepo}
}

func validateYardInput(input *YardInput) error {
	err := validation.ValidateStruct(input,
		validation.Field(&input.Name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("name must be between 1 and 255 characters"),
		),
		validation.Field(&input.Address,
			validation.Required.Error("address is required"),
			appValidation.NotBlank,
			validation.Length(1, 500).Error("address must be between 1 and 500 characters"),
		),
		validation.Field(&input.MaxCapacity,
			validation.Required.Error("maxCapacity is required"),
			validation.Min(1).Error("maxCapacity must be at least 1"),
		),
	)
	return appValidation.WrapValidationError(err)
}

func (uc *yardUseCase) Create(ctx context.Context, input YardInput) (*domain.Yard, error) {
	if err := validateYardInput(&input); err != nil {
		return nil, err
	}

	yard := &domain.Yard{
		ID:          uuid.Must(uuid.NewV7()),
		Name:        strings.TrimSpace(input.Name),
		Address:     strings.TrimSpace(input.Address),
		MaxCapacity: input.MaxCapacity,
	}

	if err := uc.yardRepo.Create(ctx, yard); err != nil {
		return nil, err
	}

	return yard, nil
}

func (uc *yardUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Yard, error) {
	return uc.yardRepo.GetByID(ctx, id)
}

func (uc *yardUseCase) List(ctx context.Context, params listing.Params) ([]*domain.Yard, int, error) {
	items, err := uc.yardRepo.List(ctx, params)
	if err != nil {
		return nil, 0, err
	}

	total, err := uc.yardRepo.Count(ctx, params.Filters)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (uc *yardUseCase) Update(ctx context.Context, id uuid.UUID, input YardInput) (*domain.Yard, error) {
	if err := validateYardInput(&input); err != nil {
		return nil, err
	}

	yard, err := uc.yardRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	yard.Name = strings.TrimSpace(input.Name)
	yard.Address = strings.TrimSpace(input.Address)
	yard.MaxCapacity = input.MaxCapacity
	yard.UpdatedAt = time.Now().UTC()

	if err := uc.yardRepo.Update(ctx, yard); err != nil {
		return nil, err
	}

	return yard, nil
}

func (uc *yardUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.yardRepo.Delete(ctx, id)
}
