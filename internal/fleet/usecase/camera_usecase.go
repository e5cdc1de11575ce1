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

// CameraInput contains the input data for creating or updating a camera.
type CameraInput struct {
	OperationalStatus string
	PhysicalLocation  string
	YardID            uuid.UUID
}

// CameraUseCase defines camera business logic operations.
type CameraUseCase interface {
	Create(ctx context.Context, input CameraInput) (*domain.Camera, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Camera, error)
	List(ctx context.Context, params listing.Params) ([]*domain.Camera, int, error)
	Update(ctx context.Context, id uuid.UUID, input CameraInput) (*domain.Camera, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CameraRepository defines camera persistence operations.
type CameraRepository interface {
	Create(ctx context.Context, camera *domain.Camera) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Camera, error)
	List(ctx context.Context, params listing.Params) ([]*domain.Camera, error)
	Count(ctx context.Context, filters map[string]string) (int, error)
	Update(ctx context.Context, camera *domain.Camera) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type cameraUseCase struct {
	cameraRepo CameraRepository
}

// NewCameraUseCase creates a new CameraUseCase.
func NewCameraUseCase(cameraRepo CameraRepository) CameraUseCase {
	return &cameraUseCase{cameraRepo: cameraRepo}
}

func validateCameraInput(input *CameraInput) error {
	err := validation.ValidateStruct(input,
		validation.Field(&input.OperationalStatus,
			validation.Required.Error("operationalStatus is required"),
			appValidation.NotBlank,
			validation.Length(1, 100).Error("operationalStatus must be between 1 and 100 characters"),
		),
		validation.Field(&input.PhysicalLocation,
			validation.Required.Error("physicalLocation is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("physicalLocation must be between 1 and 255 characters"),
		),
		validation.Field(&input.YardID,
			validation.Required.Error("yardId is required"),
		),
	)
	return appValidation.WrapValidationError(err)
}

func (uc *cameraUseCase) Create(ctx context.Context, input CameraInput) (*domain.Camera, error) {
	if err := validateCameraInput(&input); err != nil {
		return nil, err
	}

	camera := &domain.Camera{
		ID:                uuid.Must(uuid.NewV7()),
		OperationalStatus: strings.TrimSpace(input.OperationalStatus),
		PhysicalLocation:  strings.TrimSpace(input.PhysicalLocation),
		YardID:            input.YardID,
	}

	if err := uc.cameraRepo.Create(ctx, camera); err != nil {
		return nil, err
	}

	return camera, nil
}

func (uc *cameraUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Camera, error) {
	return uc.cameraRepo.GetByID(ctx, id)
}

func (uc *cameraUseCase) List(ctx context.Context, params listing.Params) ([]*domain.Camera, int, error) {
	items, err := uc.cameraRepo.List(ctx, params)
	if err != nil {
		return nil, 0, err
	}

	total, err := uc.cameraRepo.Count(ctx, params.Filters)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (uc *cameraUseCase) Update(ctx context.Context, id uuid.UUID, input CameraInput) (*domain.Camera, error) {
	if err := validateCameraInput(&input); err != nil {
		return nil, err
	}

	camera, err := uc.cameraRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	camera.OperationalStatus = strings.TrimSpace(input.OperationalStatus)
	camera.PhysicalLocation = strings.TrimSpace(input.PhysicalLocation)
	camera.YardID = input.YardID
	camera.UpdatedAt = time.Now().UTC()

	if err := uc.cameraRepo.Update(ctx, camera); err != nil {
		return nil, err
	}

	return camera, nil
}

func (uc *cameraUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.cameraRepo.Delete(ctx, id)
}
