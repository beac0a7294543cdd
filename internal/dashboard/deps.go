package dashboard

import (
	"diabetes/internal/inference"

	"go.uber.org/zap"
)

type Deps struct {
	Predictor inference.Predictor

	// Logger receives recovered panics. Defaults to a no-op logger.
	Logger *zap.Logger
}
