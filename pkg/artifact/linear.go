package artifact

import (
	"fmt"
	"math"
)

// Model kinds.
const (
	KindLogisticRegression = "logistic_regression"
	KindRandomForest       = "random_forest"
	KindLinearSVM          = "linear_svm"
)

// linear holds the weights shared by the linear models.
type linear struct {
	name      string
	coef      []float64
	intercept float64
}

func newLinear(name string, coef []float64, intercept float64) (linear, error) {
	if len(coef) == 0 {
		return linear{}, fmt.Errorf("coef must not be empty")
	}
	for i, c := range coef {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return linear{}, fmt.Errorf("coef[%d] is not finite", i)
		}
	}
	if math.IsNaN(intercept) || math.IsInf(intercept, 0) {
		return linear{}, fmt.Errorf("intercept is not finite")
	}

	return linear{name: name, coef: coef, intercept: intercept}, nil
}

func (l linear) decision(kind string, x []float64) (float64, error) {
	if len(x) != len(l.coef) {
		return 0, shapeError(kind, len(l.coef), len(x))
	}

	z := l.intercept
	for i := range x {
		z += l.coef[i] * x[i]
	}
	if math.IsNaN(z) {
		return 0, fmt.Errorf("%s decision function is NaN", kind)
	}

	return z, nil
}

// LogisticRegression is a calibrated linear classifier.
type LogisticRegression struct {
	linear
}

// NewLogisticRegression validates and returns a LogisticRegression.
func NewLogisticRegression(name string, coef []float64, intercept float64) (*LogisticRegression, error) {
	l, err := newLinear(name, coef, intercept)
	if err != nil {
		return nil, err
	}
	if l.name == "" {
		l.name = "Logistic Regression"
	}

	return &LogisticRegression{linear: l}, nil
}

func (m *LogisticRegression) Name() string     { return m.name }
func (m *LogisticRegression) Kind() string     { return KindLogisticRegression }
func (m *LogisticRegression) NumFeatures() int { return len(m.coef) }

func (m *LogisticRegression) Predict(x []float64) (int, error) {
	z, err := m.decision(KindLogisticRegression, x)
	if err != nil {
		return 0, err
	}
	if z > 0 {
		return 1, nil
	}

	return 0, nil
}

func (m *LogisticRegression) PredictProba(x []float64) ([2]float64, error) {
	z, err := m.decision(KindLogisticRegression, x)
	if err != nil {
		return [2]float64{}, err
	}

	p1 := 1 / (1 + math.Exp(-z))

	return [2]float64{1 - p1, p1}, nil
}

// LinearSVM is a linear classifier without probability estimates.
type LinearSVM struct {
	linear
}

// NewLinearSVM validates and returns a LinearSVM.
func NewLinearSVM(name string, coef []float64, intercept float64) (*LinearSVM, error) {
	l, err := newLinear(name, coef, intercept)
	if err != nil {
		return nil, err
	}
	if l.name == "" {
		l.name = "Linear SVM"
	}

	return &LinearSVM{linear: l}, nil
}

func (m *LinearSVM) Name() string     { return m.name }
func (m *LinearSVM) Kind() string     { return KindLinearSVM }
func (m *LinearSVM) NumFeatures() int { return len(m.coef) }

func (m *LinearSVM) Predict(x []float64) (int, error) {
	z, err := m.decision(KindLinearSVM, x)
	if err != nil {
		return 0, err
	}
	if z > 0 {
		return 1, nil
	}

	return 0, nil
}
