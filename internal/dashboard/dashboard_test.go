package dashboard

import (
	mockinference "diabetes/internal/inference/mock"
	"diabetes/pkg/domain"
	"diabetes/pkg/serrors"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newReadyModel(t *testing.T) (*mockinference.MockPredictor, model) {
	t.Helper()

	p := mockinference.NewMockPredictor(gomock.NewController(t))
	p.EXPECT().Ready().Return(true).AnyTimes()
	p.EXPECT().ModelName().Return("Logistic Regression").AnyTimes()

	return p, newModel(Deps{Predictor: p})
}

func update(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(msg)
	mm, ok := next.(model)
	require.True(t, ok)

	return mm, cmd
}

func TestNewModel_Defaults(t *testing.T) {
	_, m := newReadyModel(t)

	record, fieldErrs := recordFromInputs(m.inputs)
	require.Empty(t, fieldErrs)
	require.Equal(t, domain.DefaultPatientRecord(), record)
	require.Equal(t, "25", m.inputs[5].Value())
	require.Equal(t, "0.5", m.inputs[6].Value())
}

func TestSubmit_ShowsOutcome(t *testing.T) {
	p, m := newReadyModel(t)
	outcome := domain.PredictionOutcome{
		Label:               1,
		IsPositiveClass:     true,
		ProbabilityNegative: 18,
		ProbabilityPositive: 82,
		RiskTier:            domain.RiskTierHigh,
		Message:             domain.OutcomeMessage(true, domain.RiskTierHigh),
	}
	p.EXPECT().Predict(domain.DefaultPatientRecord()).Return(outcome, nil)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.True(t, m.running)

	m, _ = update(t, m, cmd())
	require.False(t, m.running)
	require.Equal(t, &outcome, m.result)

	view := m.View()
	require.Contains(t, view, "HIGH RISK")
	require.Contains(t, view, outcome.Message)
	require.Contains(t, view, "Recommended Actions")
}

func TestSubmit_InvalidInputNeverReachesPredictor(t *testing.T) {
	_, m := newReadyModel(t)
	m.inputs[1].SetValue("250")
	m.inputs[7].SetValue("thirty")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Nil(t, cmd)
	require.Equal(t, map[string]string{
		domain.FeatureGlucose: "must be between 0 and 200",
		domain.FeatureAge:     "must be a number",
	}, m.fieldErrs)
	require.Contains(t, m.View(), "must be a number")
}

func TestSubmit_PredictionError(t *testing.T) {
	p, m := newReadyModel(t)
	p.EXPECT().Predict(gomock.Any()).Return(domain.PredictionOutcome{},
		serrors.Wrap(serrors.ErrScalingFailed, errors.New("boom"), ""))

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, cmd())
	require.Nil(t, m.result)
	require.Equal(t, "Prediction failed (see logs)", m.toast)
}

func TestFocusAndReset(t *testing.T) {
	_, m := newReadyModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, 1, m.focus)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, domain.NumFeatures-1, m.focus)

	m.inputs[m.focus].SetValue("99")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	require.Equal(t, "30", m.inputs[domain.NumFeatures-1].Value())
}

func TestUnavailable_ShowsErrorPanel(t *testing.T) {
	p := mockinference.NewMockPredictor(gomock.NewController(t))
	p.EXPECT().Ready().Return(false).AnyTimes()
	p.EXPECT().Err().Return(serrors.With(serrors.ErrArtifactMissing, "models/scaler.json does not exist")).AnyTimes()

	m := newModel(Deps{Predictor: p})
	view := m.View()
	require.Contains(t, view, "Models not loaded")
	require.Contains(t, view, "models/scaler.json does not exist")

	// enter does nothing, q quits
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Nil(t, cmd)
	_, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	require.Equal(t, tea.Quit(), cmd())
}

func TestFeatureTitle(t *testing.T) {
	require.Equal(t, "Blood Pressure", featureTitle(domain.FeatureBloodPressure))
	require.Equal(t, "BMI", featureTitle(domain.FeatureBMI))
	require.Equal(t, "Diabetes Pedigree Function", featureTitle(domain.FeatureDiabetesPedigreeFunction))
}
