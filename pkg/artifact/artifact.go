// Package artifact loads the pre-trained scaler and model used for inference.
//
// Artifacts are JSON documents produced by the training pipeline. Each carries
// a "kind" discriminator selecting the implementation:
//
//	scaler: standard_scaler, min_max_scaler
//	model:  logistic_regression, random_forest (both calibrated), linear_svm (label only)
//
// Everything outside this package only relies on the Scaler, Model and
// CalibratedModel capabilities.
package artifact

import (
	"diabetes/pkg/serrors"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Scaler normalizes a raw feature vector before inference. Transform is
// deterministic and does not mutate its input.
type Scaler interface {
	// Kind returns the artifact kind, e.g. "standard_scaler".
	Kind() string
	// NumFeatures returns the vector length the scaler was fitted on.
	NumFeatures() int
	// Transform returns the scaled copy of x.
	Transform(x []float64) ([]float64, error)
}

// Model is a binary classifier that only yields labels.
type Model interface {
	// Name returns a human-readable model name.
	Name() string
	// Kind returns the artifact kind, e.g. "random_forest".
	Kind() string
	// NumFeatures returns the vector length the model was trained on.
	NumFeatures() int
	// Predict returns the class label, 0 or 1, for a scaled feature vector.
	Predict(x []float64) (int, error)
}

// CalibratedModel is a Model that can also estimate class probabilities.
type CalibratedModel interface {
	Model
	// PredictProba returns [p0, p1] with p0 + p1 ≈ 1.
	PredictProba(x []float64) ([2]float64, error)
}

// IsCalibrated reports whether m exposes class probabilities.
func IsCalibrated(m Model) bool {
	_, ok := m.(CalibratedModel)

	return ok
}

// Set is a loaded model and the scaler it was trained with.
type Set struct {
	Model  Model
	Scaler Scaler
}

// Load reads the model and scaler artifacts. Missing files are reported with
// serrors.ErrArtifactMissing and undecodable files with serrors.ErrArtifactCorrupt.
// Both files are checked for existence before either is decoded.
func Load(modelPath, scalerPath string) (*Set, error) {
	for _, p := range []string{modelPath, scalerPath} {
		if err := exists(p); err != nil {
			return nil, err
		}
	}

	model, err := LoadModel(modelPath)
	if err != nil {
		return nil, err
	}
	scaler, err := LoadScaler(scalerPath)
	if err != nil {
		return nil, err
	}

	return &Set{Model: model, Scaler: scaler}, nil
}

// LoadModel reads and decodes a model artifact.
func LoadModel(path string) (Model, error) {
	data, err := read(path)
	if err != nil {
		return nil, err
	}

	m, err := DecodeModel(data)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrArtifactCorrupt, err, "could not decode model artifact %s", path)
	}

	return m, nil
}

// LoadScaler reads and decodes a scaler artifact.
func LoadScaler(path string) (Scaler, error) {
	data, err := read(path)
	if err != nil {
		return nil, err
	}

	s, err := DecodeScaler(data)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrArtifactCorrupt, err, "could not decode scaler artifact %s", path)
	}

	return s, nil
}

func exists(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return serrors.Wrap(serrors.ErrArtifactMissing, err, "artifact file not found: %s", path)
		}

		return serrors.Wrap(serrors.ErrArtifactCorrupt, err, "could not stat artifact %s", path)
	}
	if info.IsDir() {
		return serrors.With(serrors.ErrArtifactCorrupt, "artifact path is a directory: %s", path)
	}

	return nil
}

func read(path string) ([]byte, error) {
	if err := exists(path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrArtifactCorrupt, err, "could not read artifact %s", path)
	}

	return data, nil
}

// shapeError is returned when a vector does not match the artifact's feature count.
func shapeError(kind string, want, got int) error {
	return fmt.Errorf("%s expects %d features, got %d", kind, want, got)
}
