// Package dto provides data transfer objects for maintenance HTTP handling.
package dto

import (
	"github.com/mottuflow/fleetflow/internal/maintenance/service"
)

// PredictRequest contains the telemetry signals for a maintenance prediction.
type PredictRequest struct {
	Vibration  float64 `json:"vibration"`
	EngineTemp float64 `json:"engineTemp"`
	KmDriven   float64 `json:"kmDriven"`
	OilAgeDays float64 `json:"oilAgeDays"`
}

// ToFeatures converts the request to predictor features.
func ToFeatures(r PredictRequest) service.Features {
	return service.Features{
		Vibration:  r.Vibration,
		EngineTemp: r.EngineTemp,
		KmDriven:   r.KmDriven,
		OilAgeDays: r.OilAgeDays,
	}
}
