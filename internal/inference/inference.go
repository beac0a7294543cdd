// Package inference turns validated patient records into prediction outcomes
// using a pre-trained scaler and model.
package inference

import (
	"diabetes/pkg/artifact"
	"diabetes/pkg/domain"
	"diabetes/pkg/serrors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100) //nolint: gochecknoglobals

// Facade is the single entry point for predictions shared by every
// presentation adapter. It is immutable after construction and safe for
// concurrent use.
type Facade struct {
	model  artifact.Model
	scaler artifact.Scaler
	// calibrated is nil for label-only models.
	calibrated artifact.CalibratedModel
	loadErr    error
}

var _ Predictor = (*Facade)(nil)

// New builds a Facade around already loaded artifacts. Probability support is
// decided here once, from the model's capabilities.
func New(model artifact.Model, scaler artifact.Scaler) *Facade {
	f := &Facade{model: model, scaler: scaler}
	if cm, ok := model.(artifact.CalibratedModel); ok {
		f.calibrated = cm
	}

	return f
}

// Load reads the artifact pair and returns a Facade. Load never fails: when
// the artifacts can not be loaded the returned Facade is not Ready, Err
// describes why and every Predict call reports serrors.ErrUnavailable.
func Load(modelPath, scalerPath string) *Facade {
	set, err := artifact.Load(modelPath, scalerPath)
	if err != nil {
		return &Facade{loadErr: err}
	}

	return New(set.Model, set.Scaler)
}

func (f *Facade) Ready() bool { return f.loadErr == nil && f.model != nil && f.scaler != nil }

func (f *Facade) Err() error {
	if f.Ready() {
		return nil
	}
	if f.loadErr != nil {
		return f.loadErr
	}

	return serrors.With(serrors.ErrArtifactMissing, "no artifacts configured")
}

func (f *Facade) ModelName() string {
	if !f.Ready() {
		return ""
	}

	return f.model.Name()
}

// Calibrated reports whether outcomes carry model probabilities rather than
// the 100/0 label fallback.
func (f *Facade) Calibrated() bool { return f.calibrated != nil }

// Predict runs build, scale, classify and risk policy in order. The record is
// validated again so a caller skipping validation can not feed out-of-range
// values to the scaler.
func (f *Facade) Predict(record domain.PatientRecord) (domain.PredictionOutcome, error) {
	if !f.Ready() {
		return domain.PredictionOutcome{}, serrors.Wrap(serrors.ErrUnavailable, f.Err(), "models not loaded")
	}

	if err := record.Validate(); err != nil {
		return domain.PredictionOutcome{}, serrors.Wrap(serrors.ErrInvalidInput, err, "")
	}

	scaled, err := f.scaler.Transform(domain.BuildFeatureVector(record))
	if err != nil {
		return domain.PredictionOutcome{}, serrors.Wrap(serrors.ErrScalingFailed, err, "could not scale features")
	}
	for i, v := range scaled {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return domain.PredictionOutcome{}, serrors.With(serrors.ErrScalingFailed,
				"scaled feature %s is not finite", domain.Features[i].Name)
		}
	}

	label, err := f.model.Predict(scaled)
	if err != nil {
		return domain.PredictionOutcome{}, serrors.Wrap(serrors.ErrClassificationFailed, err, "could not classify")
	}
	if label != domain.LabelNegative && label != domain.LabelPositive {
		return domain.PredictionOutcome{}, serrors.With(serrors.ErrClassificationFailed, "unexpected label %d", label)
	}

	positive, err := f.positivePercent(scaled, label)
	if err != nil {
		return domain.PredictionOutcome{}, err
	}

	isPositive := label == domain.LabelPositive
	tier := domain.ClassifyRisk(positive.InexactFloat64())

	return domain.PredictionOutcome{
		Label:               label,
		IsPositiveClass:     isPositive,
		ProbabilityNegative: hundred.Sub(positive).InexactFloat64(),
		ProbabilityPositive: positive.InexactFloat64(),
		RiskTier:            tier,
		Message:             domain.OutcomeMessage(isPositive, tier),
	}, nil
}

// positivePercent returns the positive-class probability in percent. Label-only
// models yield 100 for the positive label and 0 otherwise.
func (f *Facade) positivePercent(scaled []float64, label int) (decimal.Decimal, error) {
	if f.calibrated == nil {
		if label == domain.LabelPositive {
			return hundred, nil
		}

		return decimal.Zero, nil
	}

	p, err := f.calibrated.PredictProba(scaled)
	if err != nil {
		return decimal.Zero, serrors.Wrap(serrors.ErrClassificationFailed, err, "could not estimate probabilities")
	}
	for _, v := range p {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return decimal.Zero, serrors.Wrap(serrors.ErrClassificationFailed,
				fmt.Errorf("probabilities %v out of [0, 1]", p), "could not estimate probabilities")
		}
	}

	return decimal.NewFromFloat(p[1]).Mul(hundred), nil
}
