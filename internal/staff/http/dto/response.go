package dto

import (
	"time"

	"github.com/mottuflow/fleetflow/internal/hateoas"
	"github.com/mottuflow/fleetflow/internal/staff/domain"
)

// StaffResponse represents a staff member in API responses.
// The password hash is never exposed.
type StaffResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CPF       string    `json:"cpf"`
	Role      string    `json:"role"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	hateoas.Resource
}

// MapStaffToResponse converts a domain staff member to an API response with
// hypermedia links.
func MapStaffToResponse(staff *domain.Staff, builder *hateoas.Builder) StaffResponse {
	response := StaffResponse{
		ID:        staff.ID.String(),
		Name:      staff.Name,
		CPF:       staff.CPF,
		Role:      staff.Role,
		Phone:     staff.Phone,
		Email:     staff.Email,
		CreatedAt: staff.CreatedAt,
		UpdatedAt: staff.UpdatedAt,
	}
	builder.Attach(&response.Resource, response.ID)
	return response
}

// MapStaffToResponses converts a slice of domain staff members to API responses.
func MapStaffToResponses(items []*domain.Staff, builder *hateoas.Builder) []StaffResponse {
	responses := make([]StaffResponse, 0, len(items))
	for _, staff := range items {
		responses = append(responses, MapStaffToResponse(staff, builder))
	}
	return responses
}
