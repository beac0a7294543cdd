// Package prediction is the application service shared by the HTTP API and
// the dashboard. It runs the inference façade and keeps the prediction history.
package prediction

import (
	"context"
	"diabetes/internal/inference"
	"diabetes/pkg/controller"
	"diabetes/pkg/domain"
	"diabetes/pkg/logger"
	"diabetes/pkg/metrics"
	"diabetes/pkg/serrors"
	"diabetes/pkg/storage"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	// DefaultPageSize is used when List is called with a zero limit.
	DefaultPageSize = 20
	// MaxPageSize caps the limit accepted by List.
	MaxPageSize = 100

	tracerName = "diabetes/internal/prediction"
)

// Deps are the collaborators of the service. Storage, Metrics and Tracer are
// optional: without Storage the history is disabled.
type Deps struct {
	Predictor inference.Predictor
	Storage   storage.Storage
	Metrics   *metrics.Predictions
	Tracer    trace.Tracer
}

type service struct {
	predictor inference.Predictor
	storage   storage.Storage
	metrics   *metrics.Predictions
	tracer    trace.Tracer
}

// New creates a prediction Service.
func New(deps Deps) Service {
	tracer := deps.Tracer
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}

	return &service{
		predictor: deps.Predictor,
		storage:   deps.Storage,
		metrics:   deps.Metrics,
		tracer:    tracer,
	}
}

func (s *service) Ready() bool          { return s.predictor.Ready() }
func (s *service) ModelName() string    { return s.predictor.ModelName() }
func (s *service) HistoryEnabled() bool { return s.storage != nil }

// Predict computes the outcome for record and stores it when the history is
// enabled. Failing to store is logged and does not fail the prediction; the
// returned Prediction then has a zero ID.
func (s *service) Predict(ctx context.Context, record domain.PatientRecord) (*domain.Prediction, error) {
	ctx, span := s.tracer.Start(ctx, "prediction.Predict")
	defer span.End()

	start := time.Now()
	outcome, err := s.predictor.Predict(record)
	if err != nil {
		kind := kindName(err)
		s.metrics.Failed(ctx, kind)
		span.RecordError(err)
		span.SetStatus(codes.Error, kind)

		if errors.Is(err, serrors.ErrScalingFailed) || errors.Is(err, serrors.ErrClassificationFailed) {
			logger.Error(ctx, "prediction failed on valid input", zap.String("kind", kind), zap.Error(err))
		}

		return nil, fmt.Errorf("could not predict: %w", err)
	}
	s.metrics.Succeeded(ctx, string(outcome.RiskTier), time.Since(start))
	span.SetAttributes(
		attribute.String("risk_level", string(outcome.RiskTier)),
		attribute.Bool("is_diabetic", outcome.IsPositiveClass),
	)

	requestID, _ := ctx.Value(controller.RequestIDKey).(string)
	p := domain.Prediction{
		RequestID: requestID,
		ModelName: s.predictor.ModelName(),
		Record:    record,
		Outcome:   outcome,
		CreatedAt: time.Now().UTC(),
	}

	if s.storage != nil {
		stored, err := s.storage.StorePredictions(ctx, p)
		switch {
		case err != nil:
			logger.Warn(ctx, "could not store prediction", zap.Error(err))
		case len(stored) == 1:
			p = stored[0]
			span.SetAttributes(attribute.String("prediction_id", p.ID.String()))
		}
	}

	return &p, nil
}

// Get fetches a stored prediction by ID.
func (s *service) Get(ctx context.Context, id domain.PredictionID) (*domain.Prediction, error) {
	if s.storage == nil {
		return nil, errHistoryDisabled()
	}

	res, err := s.storage.PredictionByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get prediction: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "prediction not found")
	}

	return res, nil
}

// List returns a page of stored predictions, newest first, optionally filtered
// by risk tier. Cursors are opaque to callers: pass back the returned next
// cursor to fetch the following page. It is empty on the last page.
func (s *service) List(ctx context.Context,
	tier domain.RiskTier,
	cursor string,
	limit uint) ([]domain.Prediction, string, error) {
	if s.storage == nil {
		return nil, "", errHistoryDisabled()
	}

	after, err := storage.ParseCursor(cursor)
	if err != nil {
		return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
	}

	switch {
	case limit == 0:
		limit = DefaultPageSize
	case limit > MaxPageSize:
		limit = MaxPageSize
	}

	page, err := s.storage.Predictions(ctx, tier, after, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not list predictions: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.String()
	}

	return page.Predictions, next, nil
}

// Stats returns the number of stored predictions per risk tier.
func (s *service) Stats(ctx context.Context) (map[domain.RiskTier]int64, error) {
	if s.storage == nil {
		return nil, errHistoryDisabled()
	}

	counts, err := s.storage.CountByRiskTier(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not count predictions: %w", err)
	}

	return counts, nil
}

func errHistoryDisabled() error {
	return serrors.With(serrors.ErrUnavailable, "prediction history is disabled")
}

func kindName(err error) string {
	if k := serrors.KindOf(err); k != nil {
		return k.Error()
	}

	return serrors.ErrInternal.Error()
}
