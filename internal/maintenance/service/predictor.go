// Package service implements the maintenance prediction model.
package service

import (
	"math"

	validation "github.com/jellydator/validation"

	appValidation "github.com/mottuflow/fleetflow/internal/validation"
)

// Thresholds above which each signal starts contributing to the
// maintenance score. Derived from the fleet's historical telemetry.
const (
	vibrationMidpoint  = 5.0
	engineTempMidpoint = 95.0
	kmDrivenMidpoint   = 12000.0
	oilAgeMidpoint     = 90.0
)

// Coefficients of the logistic model. Each feature is scaled by its
// midpoint before weighting, so inputs in natural units work directly.
const (
	vibrationWeight  = 1.4
	engineTempWeight = 1.1
	kmDrivenWeight   = 0.9
	oilAgeWeight     = 0.8
	intercept        = -4.2
)

// decisionThreshold is the probability above which a motorcycle is
// flagged for maintenance.
const decisionThreshold = 0.5

// Features holds the telemetry signals used for a maintenance prediction.
type Features struct {
	Vibration  float64
	EngineTemp float64
	KmDriven   float64
	OilAgeDays float64
}

// Prediction is the outcome of a maintenance prediction.
type Prediction struct {
	NeedsMaintenance bool
	Probability      float64
	Score            float64
}

// Predictor scores motorcycle telemetry with a fixed-weight logistic model.
type Predictor struct{}

// NewPredictor creates a new Predictor.
func NewPredictor() *Predictor {
	return &Predictor{}
}

func validateFeatures(features *Features) error {
	err := validation.ValidateStruct(features,
		validation.Field(&features.Vibration,
			validation.Min(0.0).Error("vibration must be zero or greater"),
		),
		validation.Field(&features.EngineTemp,
			validation.Min(0.0).Error("engineTemp must be zero or greater"),
		),
		validation.Field(&features.KmDriven,
			validation.Min(0.0).Error("kmDriven must be zero or greater"),
		),
		validation.Field(&features.OilAgeDays,
			validation.Min(0.0).Error("oilAgeDays must be zero or greater"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// Predict scores the given telemetry. All signals must be zero or greater.
func (p *Predictor) Predict(features Features) (Prediction, error) {
	if err := validateFeatures(&features); err != nil {
		return Prediction{}, err
	}

	score := intercept +
		vibrationWeight*(features.Vibration/vibrationMidpoint) +
		engineTempWeight*(features.EngineTemp/engineTempMidpoint) +
		kmDrivenWeight*(features.KmDriven/kmDrivenMidpoint) +
		oilAgeWeight*(features.OilAgeDays/oilAgeMidpoint)

	probability := 1.0 / (1.0 + math.Exp(-score))

	return Prediction{
		NeedsMaintenance: probability >= decisionThreshold,
		Probability:      probability,
		Score:            score,
	}, nil
}
