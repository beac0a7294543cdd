package postgres

import (
	"database/sql"
	"diabetes/pkg/domain"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type PgPrediction struct {
	ID        uuid.UUID      `db:"id"         goqu:"skipinsert"`
	RequestID sql.NullString `db:"request_id"`
	ModelName string         `db:"model_name"`

	Record json.RawMessage `db:"record"`

	Label               int     `db:"label"`
	ProbabilityNegative float64 `db:"probability_negative"`
	ProbabilityPositive float64 `db:"probability_positive"`
	RiskTier            string  `db:"risk_tier"`
	Message             string  `db:"message"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgPrediction) ToDomain() (*domain.Prediction, error) {
	var record domain.PatientRecord
	if err := json.Unmarshal(p.Record, &record); err != nil {
		return nil, fmt.Errorf("could not unmarshal patient record: %w", err)
	}

	return &domain.Prediction{
		ID:        domain.PredictionID(p.ID),
		RequestID: p.RequestID.String,
		ModelName: p.ModelName,
		Record:    record,
		Outcome: domain.PredictionOutcome{
			Label:               p.Label,
			IsPositiveClass:     p.Label == domain.LabelPositive,
			ProbabilityNegative: p.ProbabilityNegative,
			ProbabilityPositive: p.ProbabilityPositive,
			RiskTier:            domain.RiskTier(p.RiskTier),
			Message:             p.Message,
		},
		CreatedAt: p.CreatedAt,
	}, nil
}

func (p *PgPrediction) FromDomain(prediction domain.Prediction) error {
	record, err := json.Marshal(prediction.Record)
	if err != nil {
		return fmt.Errorf("could not marshal patient record: %w", err)
	}

	*p = PgPrediction{
		ID: uuid.UUID(prediction.ID),
		RequestID: sql.NullString{
			String: prediction.RequestID,
			Valid:  prediction.RequestID != "",
		},
		ModelName:           prediction.ModelName,
		Record:              record,
		Label:               prediction.Outcome.Label,
		ProbabilityNegative: prediction.Outcome.ProbabilityNegative,
		ProbabilityPositive: prediction.Outcome.ProbabilityPositive,
		RiskTier:            string(prediction.Outcome.RiskTier),
		Message:             prediction.Outcome.Message,
		CreatedAt:           prediction.CreatedAt,
	}

	return nil
}

func domainPredictionsToPg(predictions []domain.Prediction) ([]PgPrediction, error) {
	out := make([]PgPrediction, len(predictions))
	for i := range out {
		if err := out[i].FromDomain(predictions[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func pgPredictionsToDomain(predictions []PgPrediction) ([]domain.Prediction, error) {
	out := make([]domain.Prediction, 0, len(predictions))
	for _, prediction := range predictions {
		d, err := prediction.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}
