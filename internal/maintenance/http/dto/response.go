package dto

import (
	"github.com/mottuflow/fleetflow/internal/maintenance/service"
)

// PredictResponse echoes the input signals along with the prediction outcome.
type PredictResponse struct {
	Vibration        float64 `json:"vibration"`
	EngineTemp       float64 `json:"engineTemp"`
	KmDriven         float64 `json:"kmDriven"`
	OilAgeDays       float64 `json:"oilAgeDays"`
	NeedsMaintenance bool    `json:"needsMaintenance"`
	Probability      float64 `json:"probability"`
	Score            float64 `json:"score"`
}

// MapPredictionToResponse combines the request signals and the prediction
// into an API response.
func MapPredictionToResponse(req PredictRequest, prediction service.Prediction) PredictResponse {
	return PredictResponse{
		Vibration:        req.Vibration,
		EngineTemp:       req.EngineTemp,
		KmDriven:         req.KmDriven,
		OilAgeDays:       req.OilAgeDays,
		NeedsMaintenance: prediction.NeedsMaintenance,
		Probability:      prediction.Probability,
		Score:            prediction.Score,
	}
}
