// Package usecase implements the credential verification business logic.
package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	validation "github.com/jellydator/validation"

	authDomain "github.com/mottuflow/fleetflow/internal/auth/domain"
	authService "github.com/mottuflow/fleetflow/internal/auth/service"
	apperrors "github.com/mottuflow/fleetflow/internal/errors"
	staffDomain "github.com/mottuflow/fleetflow/internal/staff/domain"
	appValidation "github.com/mottuflow/fleetflow/internal/validation"
)

// AuthUseCase defines the credential verification operations.
type AuthUseCase interface {
	// Login verifies the presented credentials and mints an access token.
	// Unknown login keys and wrong secrets produce the same error.
	Login(ctx context.Context, input *authDomain.LoginInput) (*authDomain.LoginOutput, error)
}

// StaffReader is the slice of the staff repository the verifier needs.
type StaffReader interface {
	GetByEmail(ctx context.Context, email string) (*staffDomain.Staff, error)
}

// authUseCase verifies credentials against the staff store.
type authUseCase struct {
	staffReader   StaffReader
	secretService authService.SecretService
	tokenCodec    authService.TokenCodec

	// dummyHash is verified against when the login key is unknown so both
	// failure paths cost one Argon2id comparison.
	dummyHash string
}

// NewAuthUseCase creates the credential verifier.
func NewAuthUseCase(
	staffReader StaffReader,
	secretService authService.SecretService,
	tokenCodec authService.TokenCodec,
) (AuthUseCase, error) {
	_, dummyHash, err := secretService.GeneratePassword()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create dummy hash")
	}

	return &authUseCase{
		staffReader:   staffReader,
		secretService: secretService,
		tokenCodec:    tokenCodec,
		dummyHash:     dummyHash,
	}, nil
}

func validateLoginInput(input *authDomain.LoginInput) error {
	err := validation.ValidateStruct(input,
		validation.Field(&input.LoginKey,
			validation.Required.Error("loginKey is required"),
		),
		validation.Field(&input.Secret,
			validation.Required.Error("secret is required"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// Login verifies the credentials and returns a signed token with the staff
// member's role and the validity window.
func (uc *authUseCase) Login(ctx context.Context, input *authDomain.LoginInput) (*authDomain.LoginOutput, error) {
	if input == nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "login input is required")
	}
	if err := validateLoginInput(input); err != nil {
		return nil, err
	}

	loginKey := strings.TrimSpace(strings.ToLower(input.LoginKey))

	staff, err := uc.staffReader.GetByEmail(ctx, loginKey)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			// Burn a comparison so unknown keys are not distinguishable by
			// response time.
			uc.secretService.CompareSecret(input.Secret, uc.dummyHash)
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !uc.secretService.CompareSecret(input.Secret, staff.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	claims := &authDomain.Claims{
		StaffID: staff.ID,
		Name:    staff.Name,
		Email:   staff.Email,
		Role:    staff.Role,
	}

	token, expiresIn, err := uc.tokenCodec.Encode(claims)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to encode token")
	}

	return &authDomain.LoginOutput{
		Token:     token,
		Role:      staff.Role,
		ExpiresIn: formatExpiresIn(expiresIn),
	}, nil
}

// formatExpiresIn renders the validity window as a compact hour string,
// e.g. "2h" for 7200 seconds.
func formatExpiresIn(d time.Duration) string {
	return fmt.Sprintf("%gh", d.Hours())
}
