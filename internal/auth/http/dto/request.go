// Package dto provides data transfer objects for the login endpoint.
package dto

import (
	validation "github.com/jellydator/validation"

	authDomain "github.com/mottuflow/fleetflow/internal/auth/domain"
)

// LoginRequest contains the credentials presented to the login endpoint.
type LoginRequest struct {
	LoginKey string `json:"loginKey"`
	Secret   string `json:"secret"`
}

// Validate checks if the login request is structurally valid.
func (r *LoginRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.LoginKey,
			validation.Required,
			validation.Length(1, 255),
		),
		validation.Field(&r.Secret,
			validation.Required,
			validation.Length(1, 255),
		),
	)
}

// ToLoginInput converts the request to a domain login input.
func ToLoginInput(r LoginRequest) *authDomain.LoginInput {
	return &authDomain.LoginInput{
		LoginKey: r.LoginKey,
		Secret:   r.Secret,
	}
}
