package dto

import (
	"time"

	"github.com/mottuflow/fleetflow/internal/fleet/domain"
	"github.com/mottuflow/fleetflow/internal/hateoas"
)

// YardResponse represents a yard in API responses.
type YardResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	MaxCapacity int       `json:"maxCapacity"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	hateoas.Resource
}

// MapYardToResponse converts a domain yard to an API response with hypermedia links.
func MapYardToResponse(yard *domain.Yard, builder *hateoas.Builder) YardResponse {
	response := YardResponse{
		ID:          yard.ID.String(),
		Name:        yard.Name,
		Address:     yard.Address,
		MaxCapacity: yard.MaxCapacity,
		CreatedAt:   yard.CreatedAt,
		UpdatedAt:   yard.UpdatedAt,
	}
	builder.Attach(&response.Resource, response.ID)
	return response
}

// MapYardToResponses converts a slice of domain yards to API responses.
func MapYardToResponses(items []*domain.Yard, builder *hateoas.Builder) []YardResponse {
	responses := make([]YardResponse, 0, len(items))
	for _, yard := range items {
		responses = append(responses, MapYardToResponse(yard, builder))
	}
	return responses
}

// MotorcycleResponse represents a motorcycle in API responses.
type MotorcycleResponse struct {
	ID              string    `json:"id"`
	Plate           string    `json:"plate"`
	Model           string    `json:"model"`
	Manufacturer    string    `json:"manufacturer"`
	Year            int       `json:"year"`
	YardID          string    `json:"yardId"`
	CurrentLocation string    `json:"currentLocation"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
	hateoas.Resource
}

// MapMotorcycleToResponse converts a domain motorcycle to an API response with
// hypermedia links.
func MapMotorcycleToResponse(motorcycle *domain.Motorcycle, builder *hateoas.Builder) MotorcycleResponse {
	response := MotorcycleResponse{
		ID:              motorcycle.ID.String(),
		Plate:           motorcycle.Plate,
		Model:           motorcycle.Model,
		Manufacturer:    motorcycle.Manufacturer,
		Year:            motorcycle.Year,
		YardID:          motorcycle.YardID.String(),
		CurrentLocation: motorcycle.CurrentLocation,
		CreatedAt:       motorcycle.CreatedAt,
		UpdatedAt:       motorcycle.UpdatedAt,
	}
	builder.Attach(&response.Resource, response.ID)
	return response
}

// MapMotorcycleToResponses converts a slice of domain motorcycles to API responses.
func MapMotorcycleToResponses(items []*domain.Motorcycle, builder *hateoas.Builder) []MotorcycleResponse {
	responses := make([]MotorcycleResponse, 0, len(items))
	for _, motorcycle := range items {
		responses = append(responses, MapMotorcycleToResponse(motorcycle, builder))
	}
	return responses
}

// CameraResponse represents a camera in API responses.
type CameraResponse struct {
	ID                string    `json:"id"`
	OperationalStatus string    `json:"operationalStatus"`
	PhysicalLocation  string    `json:"physicalLocation"`
	YardID            string    `json:"yardId"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
	hateoas.Resource
}

// MapCameraToResponse converts a domain camera to an API response with
// hypermedia links.
func MapCameraToResponse(camera *domain.Camera, builder *hateoas.Builder) CameraResponse {
	response := CameraResponse{
		ID:                camera.ID.String(),
		OperationalStatus: camera.OperationalStatus,
		PhysicalLocation:  camera.PhysicalLocation,
		YardID:            camera.YardID.String(),
		CreatedAt:         camera.CreatedAt,
		UpdatedAt:         camera.UpdatedAt,
	}
	builder.Attach(&response.Resource, response.ID)
	return response
}

// MapCameraToResponses converts a slice of domain cameras to API responses.
func MapCameraToResponses(items []*domain.Camera, builder *hateoas.Builder) []CameraResponse {
	responses := make([]CameraResponse, 0, len(items))
	for _, camera := range items {
		responses = append(responses, MapCameraToResponse(camera, builder))
	}
	return responses
}

// ArucoTagResponse represents an ArUco tag in API responses.
type ArucoTagResponse struct {
	ID           string    `json:"id"`
	Code         string    `json:"code"`
	Status       string    `json:"status"`
	MotorcycleID string    `json:"motorcycleId"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	hateoas.Resource
}

// MapArucoTagToResponse converts a domain ArUco tag to an API response with
// hypermedia links.
func MapArucoTagToResponse(tag *domain.ArucoTag, builder *hateoas.Builder) ArucoTagResponse {
	response := ArucoTagResponse{
		ID:           tag.ID.String(),
		Code:         tag.Code,
		Status:       tag.Status,
		MotorcycleID: tag.MotorcycleID.String(),
		CreatedAt:    tag.CreatedAt,
		UpdatedAt:    tag.UpdatedAt,
	}
	builder.Attach(&response.Resource, response.ID)
	return response
}

// MapArucoTagToResponses converts a slice of domain ArUco tags to API responses.
func MapArucoTagToResponses(items []*domain.ArucoTag, builder *hateoas.Builder) []ArucoTagResponse {
	responses := make([]ArucoTagResponse, 0, len(items))
	for _, tag := range items {
		responses = append(responses, MapArucoTagToResponse(tag, builder))
	}
	return responses
}

// LocationRecordResponse represents a location record in API responses.
type LocationRecordResponse struct {
	ID             string    `json:"id"`
	RecordedAt     time.Time `json:"recordedAt"`
	ReferencePoint string    `json:"referencePoint"`
	MotorcycleID   string    `json:"motorcycleId"`
	YardID         string    `json:"yardId"`
	CameraID       string    `json:"cameraId"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	hateoas.Resource
}

// MapLocationRecordToResponse converts a domain location record to an API
// response with hypermedia links.
func MapLocationRecordToResponse(record *domain.LocationRecord, builder *hateoas.Builder) LocationRecordResponse {
	response := LocationRecordResponse{
		ID:             record.ID.String(),
		RecordedAt:     record.RecordedAt,
		ReferencePoint: record.ReferencePoint,
		MotorcycleID:   record.MotorcycleID.String(),
		YardID:         record.YardID.String(),
		CameraID:       record.CameraID.String(),
		CreatedAt:      record.CreatedAt,
		UpdatedAt:      record.UpdatedAt,
	}
	builder.Attach(&response.Resource, response.ID)
	return response
}

// MapLocationRecordToResponses converts a slice of domain location records to
// API responses.
func MapLocationRecordToResponses(items []*domain.LocationRecord, builder *hateoas.Builder) []LocationRecordResponse {
	responses := make([]LocationRecordResponse, 0, len(items))
	for _, record := range items {
		responses = append(responses, MapLocationRecordToResponse(record, builder))
	}
	return responses
}

// StatusRecordResponse represents a status record in API responses.
type StatusRecordResponse struct {
	ID           string    `json:"id"`
	StatusType   string    `json:"statusType"`
	Description  *string   `json:"description"`
	RecordedAt   time.Time `json:"recordedAt"`
	MotorcycleID string    `json:"motorcycleId"`
	StaffID      string    `json:"staffId"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	hateoas.Resource
}

// MapStatusRecordToResponse converts a domain status record to an API response
// with hypermedia links.
func MapStatusRecordToResponse(record *domain.StatusRecord, builder *hateoas.Builder) StatusRecordResponse {
	response := StatusRecordResponse{
		ID:           record.ID.String(),
		StatusType:   record.StatusType,
		Description:  record.Description,
		RecordedAt:   record.RecordedAt,
		MotorcycleID: record.MotorcycleID.String(),
		StaffID:      record.StaffID.String(),
		CreatedAt:    record.CreatedAt,
		UpdatedAt:    record.UpdatedAt,
	}
	builder.Attach(&response.Resource, response.ID)
	return response
}

// MapStatusRecordToResponses converts a slice of domain status records to API
// responses.
func MapStatusRecordToResponses(items []*domain.StatusRecord, builder *hateoas.Builder) []StatusRecordResponse {
	responses := make([]StatusRecordResponse, 0, len(items))
	for _, record := range items {
		responses = append(responses, MapStatusRecordToResponse(record, builder))
	}
	return responses
}
