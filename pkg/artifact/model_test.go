package artifact_test

import (
	"diabetes/pkg/artifact"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStandardScaler(t *testing.T) {
	s, err := artifact.NewStandardScaler([]float64{1, 10}, []float64{2, 5})
	require.NoError(t, err)

	in := []float64{3, 0}
	out, err := s.Transform(in)
	require.NoError(t, err)
	require.Equal(t, []float64{1, -2}, out)
	require.Equal(t, []float64{3, 0}, in)

	_, err = s.Transform([]float64{1, 2, 3})
	require.Error(t, err)
}

func TestMinMaxScaler(t *testing.T) {
	s, err := artifact.LoadScaler("testdata/min_max_scaler.json")
	require.NoError(t, err)
	require.Equal(t, artifact.KindMinMaxScaler, s.Kind())

	out, err := s.Transform([]float64{17, 0, 61, 99, 0, 0, 0.078, 51})
	require.NoError(t, err)
	require.InDelta(t, 1.0, out[0], 1e-12)
	require.InDelta(t, 0.0, out[1], 1e-12)
	require.InDelta(t, 0.5, out[2], 1e-12)
	require.InDelta(t, 1.0, out[3], 1e-12)
	require.InDelta(t, 0.0, out[6], 1e-12)
	require.InDelta(t, 0.5, out[7], 1e-12)

	flat, err := artifact.NewMinMaxScaler([]float64{2}, []float64{2})
	require.NoError(t, err)
	out, err = flat.Transform([]float64{5})
	require.NoError(t, err)
	require.Equal(t, []float64{0}, out)
}

func TestLogisticRegression(t *testing.T) {
	m, err := artifact.NewLogisticRegression("", []float64{1, 1}, 0)
	require.NoError(t, err)
	require.Equal(t, "Logistic Regression", m.Name())

	p, err := m.PredictProba([]float64{0, 0})
	require.NoError(t, err)
	require.InDelta(t, 0.5, p[0], 1e-12)
	require.InDelta(t, 0.5, p[1], 1e-12)
	label, err := m.Predict([]float64{0, 0})
	require.NoError(t, err)
	require.Equal(t, 0, label)

	p, err = m.PredictProba([]float64{2, 1})
	require.NoError(t, err)
	require.Greater(t, p[1], 0.9)
	require.InDelta(t, 1.0, p[0]+p[1], 1e-12)
	label, err = m.Predict([]float64{2, 1})
	require.NoError(t, err)
	require.Equal(t, 1, label)

	_, err = m.Predict([]float64{1})
	require.Error(t, err)
	_, err = m.PredictProba([]float64{1, 2, 3})
	require.Error(t, err)
}

func TestLinearSVM(t *testing.T) {
	m, err := artifact.LoadModel("testdata/linear_svm.json")
	require.NoError(t, err)
	require.Equal(t, artifact.KindLinearSVM, m.Kind())
	require.False(t, artifact.IsCalibrated(m))

	label, err := m.Predict(make([]float64, 8))
	require.NoError(t, err)
	require.Equal(t, 0, label)

	label, err = m.Predict([]float64{0, 2, 0, 0, 0, 1, 0, 0})
	require.NoError(t, err)
	require.Equal(t, 1, label)
}

func TestRandomForest(t *testing.T) {
	m, err := artifact.LoadModel("testdata/random_forest.json")
	require.NoError(t, err)
	require.Equal(t, "Random Forest", m.Name())
	require.Equal(t, 8, m.NumFeatures())

	cm, ok := m.(artifact.CalibratedModel)
	require.True(t, ok)

	tests := []struct {
		name  string
		x     []float64
		proba [2]float64
		label int
	}{
		{name: "both left", x: make([]float64, 8), proba: [2]float64{0.85, 0.15}, label: 0},
		{name: "both right", x: []float64{0, 1, 0, 0, 0, 1, 0, 0}, proba: [2]float64{0.25, 0.75}, label: 1},
		{name: "split", x: []float64{0, 1, 0, 0, 0, 0, 0, 0}, proba: [2]float64{0.55, 0.45}, label: 0},
		{name: "threshold goes left", x: []float64{0, 0.5, 0, 0, 0, 0.5, 0, 0}, proba: [2]float64{0.85, 0.15}, label: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := cm.PredictProba(tt.x)
			require.NoError(t, err)
			require.InDelta(t, tt.proba[0], p[0], 1e-9)
			require.InDelta(t, tt.proba[1], p[1], 1e-9)

			label, err := cm.Predict(tt.x)
			require.NoError(t, err)
			require.Equal(t, tt.label, label)
		})
	}

	_, err = cm.PredictProba([]float64{1})
	require.Error(t, err)
}

func TestRandomForestTieGoesToNegative(t *testing.T) {
	m, err := artifact.NewRandomForest("", 1, []artifact.Tree{
		{Nodes: []artifact.Node{{Feature: -1, Value: [2]float64{5, 5}}}},
	})
	require.NoError(t, err)

	label, err := m.Predict([]float64{42})
	require.NoError(t, err)
	require.Equal(t, 0, label)
}
