package domain

// FeatureVector is the ordered numeric encoding of a PatientRecord that the
// scaler and model artifacts consume. Its length is always NumFeatures.
type FeatureVector []float64

// BuildFeatureVector copies the record's fields into a new vector in the
// fixed feature order. Values are not transformed.
func BuildFeatureVector(r PatientRecord) FeatureVector {
	return FeatureVector{
		float64(r.Pregnancies),
		r.Glucose,
		r.BloodPressure,
		r.SkinThickness,
		r.Insulin,
		r.BMI,
		r.DiabetesPedigreeFunction,
		float64(r.Age),
	}
}
