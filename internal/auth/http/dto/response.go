package dto

import (
	authDomain "github.com/mottuflow/fleetflow/internal/auth/domain"
)

// LoginResponse contains the result of a successful login.
type LoginResponse struct {
	Token     string `json:"token"`
	Role      string `json:"role"`
	ExpiresIn string `json:"expiresIn"`
}

// MapLoginOutputToResponse converts a domain login output to an API response.
func MapLoginOutputToResponse(output *authDomain.LoginOutput) LoginResponse {
	return LoginResponse{
		Token:     output.Token,
		Role:      output.Role,
		ExpiresIn: output.ExpiresIn,
	}
}
