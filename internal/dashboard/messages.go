package dashboard

import "diabetes/pkg/domain"

type predictionDoneMsg struct {
	record  domain.PatientRecord
	outcome domain.PredictionOutcome
	err     error
}
