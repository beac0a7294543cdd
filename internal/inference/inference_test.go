package inference_test

import (
	"diabetes/internal/inference"
	"diabetes/pkg/domain"
	"diabetes/pkg/serrors"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// identityScaler passes vectors through and counts calls.
type identityScaler struct {
	calls int
	err   error
}

func (s *identityScaler) Kind() string     { return "identity" }
func (s *identityScaler) NumFeatures() int { return domain.NumFeatures }
func (s *identityScaler) Transform(x []float64) ([]float64, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}

	return append([]float64(nil), x...), nil
}

// labelModel always returns the same label.
type labelModel struct {
	label int
	err   error
	seen  []float64
}

func (m *labelModel) Name() string     { return "stub" }
func (m *labelModel) Kind() string     { return "stub" }
func (m *labelModel) NumFeatures() int { return domain.NumFeatures }
func (m *labelModel) Predict(x []float64) (int, error) {
	m.seen = x

	return m.label, m.err
}

// probaModel is a labelModel with fixed probabilities.
type probaModel struct {
	labelModel
	proba [2]float64
	err   error
}

func (m *probaModel) PredictProba([]float64) ([2]float64, error) { return m.proba, m.err }

func TestFacade_Calibrated(t *testing.T) {
	tests := []struct {
		name     string
		label    int
		proba    [2]float64
		negative float64
		positive float64
		tier     domain.RiskTier
		message  string
	}{
		{
			name:     "low risk negative",
			label:    0,
			proba:    [2]float64{0.855, 0.145},
			negative: 85.5,
			positive: 14.5,
			tier:     domain.RiskTierLow,
			message:  "Low risk - Patient is not predicted to be diabetic",
		},
		{
			name:     "high risk positive",
			label:    1,
			proba:    [2]float64{0.2, 0.8},
			negative: 20,
			positive: 80,
			tier:     domain.RiskTierHigh,
			message:  "High risk - Patient is predicted to be diabetic. Medical consultation recommended",
		},
		{
			name:     "moderate boundary",
			label:    0,
			proba:    [2]float64{0.7, 0.3},
			negative: 70,
			positive: 30,
			tier:     domain.RiskTierModerate,
			message:  "Moderate risk - Patient is not predicted to be diabetic, but some risk factors present",
		},
		{
			name:     "positive label with moderate tier",
			label:    1,
			proba:    [2]float64{0.45, 0.55},
			negative: 45,
			positive: 55,
			tier:     domain.RiskTierModerate,
			message:  "Moderate to high risk - Patient is predicted to be diabetic. Please consult a healthcare professional",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := &probaModel{labelModel: labelModel{label: tt.label}, proba: tt.proba}
			f := inference.New(model, &identityScaler{})
			require.True(t, f.Calibrated())

			out, err := f.Predict(domain.DefaultPatientRecord())
			require.NoError(t, err)
			require.Equal(t, tt.label, out.Label)
			require.Equal(t, tt.label == 1, out.IsPositiveClass)
			require.InDelta(t, tt.negative, out.ProbabilityNegative, 1e-9)
			require.InDelta(t, tt.positive, out.ProbabilityPositive, 1e-9)
			require.InDelta(t, 100.0, out.ProbabilityNegative+out.ProbabilityPositive, 1e-9)
			require.Equal(t, tt.tier, out.RiskTier)
			require.Equal(t, tt.message, out.Message)
		})
	}
}

func TestFacade_LabelOnlyFallback(t *testing.T) {
	f := inference.New(&labelModel{label: 1}, &identityScaler{})
	require.False(t, f.Calibrated())

	out, err := f.Predict(domain.DefaultPatientRecord())
	require.NoError(t, err)
	require.Equal(t, domain.PredictionOutcome{
		Label:               1,
		IsPositiveClass:     true,
		ProbabilityNegative: 0,
		ProbabilityPositive: 100,
		RiskTier:            domain.RiskTierHigh,
		Message:             "High risk - Patient is predicted to be diabetic. Medical consultation recommended",
	}, out)

	f = inference.New(&labelModel{label: 0}, &identityScaler{})
	out, err = f.Predict(domain.DefaultPatientRecord())
	require.NoError(t, err)
	require.Equal(t, 100.0, out.ProbabilityNegative)
	require.Equal(t, 0.0, out.ProbabilityPositive)
	require.Equal(t, domain.RiskTierLow, out.RiskTier)
	require.Equal(t, "Low risk - Patient is not predicted to be diabetic", out.Message)
}

func TestFacade_FeatureOrder(t *testing.T) {
	model := &labelModel{}
	f := inference.New(model, &identityScaler{})

	r := domain.PatientRecord{
		Pregnancies: 1, Glucose: 2, BloodPressure: 3, SkinThickness: 4,
		Insulin: 5, BMI: 16, DiabetesPedigreeFunction: 0.7, Age: 21,
	}
	_, err := f.Predict(r)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3, 4, 5, 16, 0.7, 21}, model.seen)
}

func TestFacade_Idempotent(t *testing.T) {
	model := &probaModel{labelModel: labelModel{label: 1}, proba: [2]float64{0.123456789, 0.876543211}}
	f := inference.New(model, &identityScaler{})

	first, err := f.Predict(domain.DefaultPatientRecord())
	require.NoError(t, err)
	second, err := f.Predict(domain.DefaultPatientRecord())
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.InDelta(t, 100.0, first.ProbabilityNegative+first.ProbabilityPositive, 1e-9)
}

func TestFacade_InvalidInputNeverReachesScaler(t *testing.T) {
	scaler := &identityScaler{}
	f := inference.New(&labelModel{}, scaler)

	r := domain.DefaultPatientRecord()
	r.Glucose = 500
	r.Age = 0

	_, err := f.Predict(r)
	require.ErrorIs(t, err, serrors.ErrInvalidInput)
	require.Equal(t, serrors.ErrInvalidInput, serrors.KindOf(err))

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, []string{domain.FeatureGlucose, domain.FeatureAge}, verr.FieldNames())
	require.Zero(t, scaler.calls)
}

func TestFacade_Failures(t *testing.T) {
	tests := []struct {
		name   string
		model  any
		scaler *identityScaler
		kind   serrors.Kind
	}{
		{
			name:   "scaler error",
			model:  &labelModel{},
			scaler: &identityScaler{err: errors.New("shape mismatch")},
			kind:   serrors.ErrScalingFailed,
		},
		{
			name:   "model error",
			model:  &labelModel{err: errors.New("boom")},
			scaler: &identityScaler{},
			kind:   serrors.ErrClassificationFailed,
		},
		{
			name:   "unexpected label",
			model:  &labelModel{label: 2},
			scaler: &identityScaler{},
			kind:   serrors.ErrClassificationFailed,
		},
		{
			name:   "proba error",
			model:  &probaModel{err: errors.New("boom")},
			scaler: &identityScaler{},
			kind:   serrors.ErrClassificationFailed,
		},
		{
			name:   "proba out of range",
			model:  &probaModel{proba: [2]float64{-0.5, 1.5}},
			scaler: &identityScaler{},
			kind:   serrors.ErrClassificationFailed,
		},
		{
			name:   "proba NaN",
			model:  &probaModel{proba: [2]float64{math.NaN(), math.NaN()}},
			scaler: &identityScaler{},
			kind:   serrors.ErrClassificationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f *inference.Facade
			switch m := tt.model.(type) {
			case *probaModel:
				f = inference.New(m, tt.scaler)
			case *labelModel:
				f = inference.New(m, tt.scaler)
			}

			out, err := f.Predict(domain.DefaultPatientRecord())
			require.ErrorIs(t, err, tt.kind)
			require.Equal(t, tt.kind, serrors.KindOf(err))
			require.Equal(t, domain.PredictionOutcome{}, out)
		})
	}
}

func TestLoad(t *testing.T) {
	f := inference.Load("../../models/diabetes_model.json", "../../models/scaler.json")
	require.True(t, f.Ready())
	require.NoError(t, f.Err())
	require.Equal(t, "Logistic Regression", f.ModelName())
	require.True(t, f.Calibrated())

	out, err := f.Predict(domain.DefaultPatientRecord())
	require.NoError(t, err)
	require.InDelta(t, 100.0, out.ProbabilityNegative+out.ProbabilityPositive, 1e-9)
	require.Equal(t, domain.ClassifyRisk(out.ProbabilityPositive), out.RiskTier)

	high := domain.PatientRecord{
		Pregnancies: 8, Glucose: 190, BloodPressure: 80, SkinThickness: 35,
		Insulin: 200, BMI: 42, DiabetesPedigreeFunction: 1.2, Age: 60,
	}
	out, err = f.Predict(high)
	require.NoError(t, err)
	require.True(t, out.IsPositiveClass)
	require.Equal(t, domain.RiskTierHigh, out.RiskTier)
}

func TestLoad_Unavailable(t *testing.T) {
	f := inference.Load("does/not/exist.json", "../../models/scaler.json")
	require.False(t, f.Ready())
	require.ErrorIs(t, f.Err(), serrors.ErrArtifactMissing)
	require.Empty(t, f.ModelName())

	_, err := f.Predict(domain.DefaultPatientRecord())
	require.ErrorIs(t, err, serrors.ErrUnavailable)
	require.ErrorIs(t, err, serrors.ErrArtifactMissing)
	require.Equal(t, serrors.ErrUnavailable, serrors.KindOf(err))
}
