package prediction

import (
	"context"
	"diabetes/pkg/domain"
)

//go:generate mockgen -package mockprediction -source=interface.go -destination=mock/mockprediction.go *
type Service interface {
	Predict(ctx context.Context, record domain.PatientRecord) (*domain.Prediction, error)
	Get(ctx context.Context, ID domain.PredictionID) (*domain.Prediction, error)
	List(ctx context.Context,
		tier domain.RiskTier,
		cursor string,
		limit uint) ([]domain.Prediction, string, error)
	Stats(ctx context.Context) (map[domain.RiskTier]int64, error)
	Ready() bool
	ModelName() string
	HistoryEnabled() bool
}
