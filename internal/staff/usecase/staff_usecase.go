// Package usecase implements the staff business logic.
package usecase

import (
	"context"
	"strings"
	"time"

	validation "github.com/jellydator/validation"

	"github.com/allisson/go-pwdhash"
	"github.com/google/uuid"

	apperrors "github.com/mottuflow/fleetflow/internal/errors"
	"github.com/mottuflow/fleetflow/internal/listing"
	"github.com/mottuflow/fleetflow/internal/staff/domain"
	appValidation "github.com/mottuflow/fleetflow/internal/validation"
)

// CreateStaffInput contains the input data for creating a staff member.
type CreateStaffInput struct {
	Name     string `json:"name"`
	CPF      string `json:"cpf"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateStaffInput contains the input data for updating a staff member.
// Password is optional; when empty the stored hash is kept.
type UpdateStaffInput struct {
	Name     string `json:"name"`
	CPF      string `json:"cpf"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UseCase defines the interface for staff business logic operations.
type UseCase interface {
	Create(ctx context.Context, input CreateStaffInput) (*domain.Staff, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Staff, error)
	List(ctx context.Context, params listing.Params) ([]*domain.Staff, int, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateStaffInput) (*domain.Staff, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// StaffRepository defines staff persistence operations.
type StaffRepository interface {
	Create(ctx context.Context, staff *domain.Staff) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Staff, error)
	GetByEmail(ctx context.Context, email string) (*domain.Staff, error)
	List(ctx context.Context, params listing.Params) ([]*domain.Staff, error)
	Count(ctx context.Context, filters map[string]string) (int, error)
	Update(ctx context.Context, staff *domain.Staff) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// StaffUseCase handles staff-related business logic.
type StaffUseCase struct {
	staffRepo      StaffRepository
	passwordHasher *pwdhash.PasswordHasher
}

// NewStaffUseCase creates a new StaffUseCase.
func NewStaffUseCase(staffRepo StaffRepository) (*StaffUseCase, error) {
	hasher, err := pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyInteractive))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create password hasher")
	}

	return &StaffUseCase{
		staffRepo:      staffRepo,
		passwordHasher: hasher,
	}, nil
}

func validateStaffFields(input *CreateStaffInput) error {
	err := validation.ValidateStruct(input,
		validation.Field(&input.Name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("name must be between 1 and 255 characters"),
		),
		validation.Field(&input.CPF,
			validation.Required.Error("cpf is required"),
			appValidation.CPF,
		),
		validation.Field(&input.Role,
			validation.Required.Error("role is required"),
			appValidation.NotBlank,
			validation.Length(1, 100).Error("role must be between 1 and 100 characters"),
		),
		validation.Field(&input.Phone,
			validation.Required.Error("phone is required"),
			validation.Length(8, 20).Error("phone must be between 8 and 20 characters"),
		),
		validation.Field(&input.Email,
			validation.Required.Error("email is required"),
			appValidation.NotBlank,
			appValidation.Email,
			validation.Length(5, 255).Error("email must be between 5 and 255 characters"),
		),
		validation.Field(&input.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be between 8 and 128 characters"),
			appValidation.PasswordStrength{
				MinLength:      8,
				RequireUpper:   true,
				RequireLower:   true,
				RequireNumber:  true,
				RequireSpecial: true,
			},
		),
	)
	return appValidation.WrapValidationError(err)
}

func validateUpdateStaffInput(input *UpdateStaffInput) error {
	fields := []*validation.FieldRules{
		validation.Field(&input.Name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("name must be between 1 and 255 characters"),
		),
		validation.Field(&input.CPF,
			validation.Required.Error("cpf is required"),
			appValidation.CPF,
		),
		validation.Field(&input.Role,
			validation.Required.Error("role is required"),
			appValidation.NotBlank,
			validation.Length(1, 100).Error("role must be between 1 and 100 characters"),
		),
		validation.Field(&input.Phone,
			validation.Required.Error("phone is required"),
			validation.Length(8, 20).Error("phone must be between 8 and 20 characters"),
		),
		validation.Field(&input.Email,
			validation.Required.Error("email is required"),
			appValidation.NotBlank,
			appValidation.Email,
			validation.Length(5, 255).Error("email must be between 5 and 255 characters"),
		),
	}
	if input.Password != "" {
		fields = append(fields, validation.Field(&input.Password,
			validation.Length(8, 128).Error("password must be between 8 and 128 characters"),
			appValidation.PasswordStrength{
				MinLength:      8,
				RequireUpper:   true,
				RequireLower:   true,
				RequireNumber:  true,
				RequireSpecial: true,
			},
		))
	}
	return appValidation.WrapValidationError(validation.ValidateStruct(input, fields...))
}

// Create registers a new staff member with a hashed password.
func (uc *StaffUseCase) Create(ctx context.Context, input CreateStaffInput) (*domain.Staff, error) {
	if err := validateStaffFields(&input); err != nil {
		return nil, err
	}

	hashedPassword, err := uc.passwordHasher.Hash([]byte(input.Password))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to hash password")
	}

	staff := &domain.Staff{
		ID:       uuid.Must(uuid.NewV7()),
		Name:     strings.TrimSpace(input.Name),
		CPF:      strings.TrimSpace(input.CPF),
		Role:     strings.TrimSpace(input.Role),
		Phone:    strings.TrimSpace(input.Phone),
		Email:    strings.TrimSpace(strings.ToLower(input.Email)),
		Password: hashedPassword,
	}

	if err := uc.staffRepo.Create(ctx, staff); err != nil {
		return nil, err
	}

	return staff, nil
}

// Get retrieves a staff member by ID.
func (uc *StaffUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Staff, error) {
	return uc.staffRepo.GetByID(ctx, id)
}

// List returns a page of staff members plus the total count after filtering.
func (uc *StaffUseCase) List(ctx context.Context, params listing.Params) ([]*domain.Staff, int, error) {
	items, err := uc.staffRepo.List(ctx, params)
	if err != nil {
		return nil, 0, err
	}

	total, err := uc.staffRepo.Count(ctx, params.Filters)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// Update replaces the mutable fields of a staff member. An empty password
// keeps the existing hash.
func (uc *StaffUseCase) Update(ctx context.Context, id uuid.UUID, input UpdateStaffInput) (*domain.Staff, error) {
	if err := validateUpdateStaffInput(&input); err != nil {
		return nil, err
	}

	staff, err := uc.staffRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	staff.Name = strings.TrimSpace(input.Name)
	staff.CPF = strings.TrimSpace(input.CPF)
	staff.Role = strings.TrimSpace(input.Role)
	staff.Phone = strings.TrimSpace(input.Phone)
	staff.Email = strings.TrimSpace(strings.ToLower(input.Email))
	staff.UpdatedAt = time.Now().UTC()

	if input.Password != "" {
		hashedPassword, err := uc.passwordHasher.Hash([]byte(input.Password))
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to hash password")
		}
		staff.Password = hashedPassword
	}

	if err := uc.staffRepo.Update(ctx, staff); err != nil {
		return nil, err
	}

	return staff, nil
}

// Delete removes a staff member.
func (uc *StaffUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.staffRepo.Delete(ctx, id)
}
