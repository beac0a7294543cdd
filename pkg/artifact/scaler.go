package artifact

import "fmt"

// Scaler kinds.
const (
	KindStandardScaler = "standard_scaler"
	KindMinMaxScaler   = "min_max_scaler"
)

// StandardScaler centers each feature on its training mean and divides it by
// its training standard deviation.
type StandardScaler struct {
	Mean  []float64
	Scale []float64
}

// NewStandardScaler validates and returns a StandardScaler.
func NewStandardScaler(mean, scale []float64) (*StandardScaler, error) {
	if len(mean) == 0 || len(mean) != len(scale) {
		return nil, fmt.Errorf("mean and scale must be non-empty and of equal length (%d, %d)",
			len(mean), len(scale))
	}
	for i, s := range scale {
		if s == 0 {
			return nil, fmt.Errorf("scale[%d] is zero", i)
		}
	}

	return &StandardScaler{Mean: mean, Scale: scale}, nil
}

func (s *StandardScaler) Kind() string     { return KindStandardScaler }
func (s *StandardScaler) NumFeatures() int { return len(s.Mean) }

func (s *StandardScaler) Transform(x []float64) ([]float64, error) {
	if len(x) != len(s.Mean) {
		return nil, shapeError(KindStandardScaler, len(s.Mean), len(x))
	}

	out := make([]float64, len(x))
	for i := range x {
		out[i] = (x[i] - s.Mean[i]) / s.Scale[i]
	}

	return out, nil
}

// MinMaxScaler maps each feature linearly from its training range onto [0, 1].
// Features with a zero-width training range are mapped to 0.
type MinMaxScaler struct {
	DataMin []float64
	DataMax []float64
}

// NewMinMaxScaler validates and returns a MinMaxScaler.
func NewMinMaxScaler(dataMin, dataMax []float64) (*MinMaxScaler, error) {
	if len(dataMin) == 0 || len(dataMin) != len(dataMax) {
		return nil, fmt.Errorf("data_min and data_max must be non-empty and of equal length (%d, %d)",
			len(dataMin), len(dataMax))
	}
	for i := range dataMin {
		if dataMax[i] < dataMin[i] {
			return nil, fmt.Errorf("data_max[%d] is lower than data_min[%d]", i, i)
		}
	}

	return &MinMaxScaler{DataMin: dataMin, DataMax: dataMax}, nil
}

func (s *MinMaxScaler) Kind() string     { return KindMinMaxScaler }
func (s *MinMaxScaler) NumFeatures() int { return len(s.DataMin) }

func (s *MinMaxScaler) Transform(x []float64) ([]float64, error) {
	if len(x) != len(s.DataMin) {
		return nil, shapeError(KindMinMaxScaler, len(s.DataMin), len(x))
	}

	out := make([]float64, len(x))
	for i := range x {
		span := s.DataMax[i] - s.DataMin[i]
		if span == 0 {
			continue
		}
		out[i] = (x[i] - s.DataMin[i]) / span
	}

	return out, nil
}
