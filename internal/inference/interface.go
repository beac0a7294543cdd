package inference

import "diabetes/pkg/domain"

//go:generate mockgen -package mockinference -source=interface.go -destination=mock/mockinference.go *
type Predictor interface {
	// Predict turns a patient record into a PredictionOutcome. Failures are
	// semantic errors (see pkg/serrors) of exactly one prediction kind, or
	// serrors.ErrUnavailable when the artifacts are not loaded.
	Predict(record domain.PatientRecord) (domain.PredictionOutcome, error)
	// Ready reports whether the artifacts were loaded.
	Ready() bool
	// Err returns the artifact load error, or nil when Ready.
	Err() error
	// ModelName returns the name of the loaded model, or "" when not Ready.
	ModelName() string
}
