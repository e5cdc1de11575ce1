// Package dto provides data transfer objects for staff HTTP handling.
package dto

import (
	"github.com/mottuflow/fleetflow/internal/staff/usecase"
)

// CreateStaffRequest contains the parameters for registering a staff member.
type CreateStaffRequest struct {
	Name     string `json:"name"`
	CPF      string `json:"cpf"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ToCreateStaffInput converts the request to a use case input.
func ToCreateStaffInput(r CreateStaffRequest) usecase.CreateStaffInput {
	return usecase.CreateStaffInput{
		Name:     r.Name,
		CPF:      r.CPF,
		Role:     r.Role,
		Phone:    r.Phone,
		Email:    r.Email,
		Password: r.Password,
	}
}

// UpdateStaffRequest contains the parameters for updating a staff member.
// Password is optional; when omitted the stored hash is kept.
type UpdateStaffRequest struct {
	Name     string `json:"name"`
	CPF      string `json:"cpf"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ToUpdateStaffInput converts the request to a use case input.
func ToUpdateStaffInput(r UpdateStaffRequest) usecase.UpdateStaffInput {
	return usecase.UpdateStaffInput{
		Name:     r.Name,
		CPF:      r.CPF,
		Role:     r.Role,
		Phone:    r.Phone,
		Email:    r.Email,
		Password: r.Password,
	}
}
