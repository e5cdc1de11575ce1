// Package dto provides data transfer objects for fleet HTTP handling.
package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/mottuflow/fleetflow/internal/errors"
	"github.com/mottuflow/fleetflow/internal/fleet/usecase"
)

func parseID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, apperrors.Wrap(apperrors.ErrInvalidInput, fmt.Sprintf("%s must be a valid UUID", field))
	}
	return id, nil
}

// YardRequest contains the parameters for creating or updating a yard.
type YardRequest struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	MaxCapacity int    `json:"maxCapacity"`
}

// ToYardInput converts the request to a use case input.
func ToYardInput(r YardRequest) usecase.YardInput {
	return usecase.YardInput{
		Name:        r.Name,
		Address:     r.Address,
		MaxCapacity: r.MaxCapacity,
	}
}

// MotorcycleRequest contains the parameters for creating or updating a motorcycle.
type MotorcycleRequest struct {
	Plate           string `json:"plate"`
	Model           string `json:"model"`
	Manufacturer    string `json:"manufacturer"`
	Year            int    `json:"year"`
	YardID          string `json:"yardId"`
	CurrentLocation string `json:"currentLocation"`
}

// ToMotorcycleInput converts the request to a use case input.
func ToMotorcycleInput(r MotorcycleRequest) (usecase.MotorcycleInput, error) {
	yardID, err := parseID("yardId", r.YardID)
	if err != nil {
		return usecase.MotorcycleInput{}, err
	}
	return usecase.MotorcycleInput{
		Plate:           r.Plate,
		Model:           r.Model,
		Manufacturer:    r.Manufacturer,
		Year:            r.Year,
		YardID:          yardID,
		CurrentLocation: r.CurrentLocation,
	}, nil
}

// CameraRequest contains the parameters for creating or updating a camera.
type CameraRequest struct {
	OperationalStatus string `json:"operationalStatus"`
	PhysicalLocation  string `json:"physicalLocation"`
	YardID            string `json:"yardId"`
}

// ToCameraInput converts the request to a use case input.
func ToCameraInput(r CameraRequest) (usecase.CameraInput, error) {
	yardID, err := parseID("yardId", r.YardID)
	if err != nil {
		return usecase.CameraInput{}, err
	}
	return usecase.CameraInput{
		OperationalStatus: r.OperationalStatus,
		PhysicalLocation:  r.PhysicalLocation,
		YardID:            yardID,
	}, nil
}

// ArucoTagRequest contains the parameters for creating or updating an ArUco tag.
type ArucoTagRequest struct {
	Code         string `json:"code"`
	Status       string `json:"status"`
	MotorcycleID string `json:"motorcycleId"`
}

// ToArucoTagInput converts the request to a use case input.
func ToArucoTagInput(r ArucoTagRequest) (usecase.ArucoTagInput, error) {
	motorcycleID, err := parseID("motorcycleId", r.MotorcycleID)
	if err != nil {
		return usecase.ArucoTagInput{}, err
	}
	return usecase.ArucoTagInput{
		Code:         r.Code,
		Status:       r.Status,
		MotorcycleID: motorcycleID,
	}, nil
}

// LocationRecordRequest contains the parameters for creating or updating a
// location record. RecordedAt is optional and defaults to the current time.
type LocationRecordRequest struct {
	RecordedAt     time.Time `json:"recordedAt"`
	ReferencePoint string    `json:"referencePoint"`
	MotorcycleID   string    `json:"motorcycleId"`
	YardID         string    `json:"yardId"`
	CameraID       string    `json:"cameraId"`
}

// ToLocationRecordInput converts the request to a use case input.
func ToLocationRecordInput(r LocationRecordRequest) (usecase.LocationRecordInput, error) {
	motorcycleID, err := parseID("motorcycleId", r.MotorcycleID)
	if err != nil {
		return usecase.LocationRecordInput{}, err
	}
	yardID, err := parseID("yardId", r.YardID)
	if err != nil {
		return usecase.LocationRecordInput{}, err
	}
	cameraID, err := parseID("cameraId", r.CameraID)
	if err != nil {
		return usecase.LocationRecordInput{}, err
	}
	return usecase.LocationRecordInput{
		RecordedAt:     r.RecordedAt,
		ReferencePoint: r.ReferencePoint,
		MotorcycleID:   motorcycleID,
		YardID:         yardID,
		CameraID:       cameraID,
	}, nil
}

// StatusRecordRequest contains the parameters for creating or updating a
// status record. RecordedAt is optional and defaults to the current time.
type StatusRecordRequest struct {
	StatusType   string    `json:"statusType"`
	Description  *string   `json:"description"`
	RecordedAt   time.Time `json:"recordedAt"`
	MotorcycleID string    `json:"motorcycleId"`
	StaffID      string    `json:"staffId"`
}

// ToStatusRecordInput converts the request to a use case input.
func ToStatusRecordInput(r StatusRecordRequest) (usecase.StatusRecordInput, error) {
	motorcycleID, err := parseID("motorcycleId", r.MotorcycleID)
	if err != nil {
		return usecase.StatusRecordInput{}, err
	}
	staffID, err := parseID("staffId", r.StaffID)
	if err != nil {
		return usecase.StatusRecordInput{}, err
	}
	return usecase.StatusRecordInput{
		StatusType:   r.StatusType,
		Description:  r.Description,
		RecordedAt:   r.RecordedAt,
		MotorcycleID: motorcycleID,
		StaffID:      staffID,
	}, nil
}
