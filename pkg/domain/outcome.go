package domain

import (
	"time"

	"github.com/google/uuid"
)

// Class labels produced by the model.
const (
	LabelNegative = 0
	LabelPositive = 1
)

// PredictionOutcome is the result of running one patient record through the
// scaler and model. Probabilities are percentages and always sum to 100.
type PredictionOutcome struct {
	Label               int      `json:"prediction"`
	IsPositiveClass     bool     `json:"is_diabetic"`
	ProbabilityNegative float64  `json:"probability_negative"`
	ProbabilityPositive float64  `json:"probability_positive"`
	RiskTier            RiskTier `json:"risk_level"`
	Message             string   `json:"message"`
}

// PredictionID uniquely identifies a stored prediction.
type PredictionID uuid.UUID

// String returns the canonical UUID form of the ID.
func (id PredictionID) String() string {
	return uuid.UUID(id).String()
}

// IsZero reports whether the ID is unset, as for predictions that were not stored.
func (id PredictionID) IsZero() bool {
	return uuid.UUID(id) == uuid.Nil
}

// Prediction is a PredictionOutcome together with the record it was computed
// from, as kept in the prediction history.
type Prediction struct {
	// ID is the unique identifier of the prediction.
	ID PredictionID `json:"id"`
	// RequestID correlates the prediction with the request that produced it.
	RequestID string `json:"requestId,omitempty"`
	// ModelName names the model artifact that produced the outcome.
	ModelName string `json:"model"`

	Record  PatientRecord     `json:"record"`
	Outcome PredictionOutcome `json:"outcome"`

	// CreatedAt is the time the prediction was computed.
	CreatedAt time.Time `json:"createdAt"`
}
