package domain

import (
	"fmt"
	"math"
)

// Feature names in the order the model artifacts expect them. The order is a
// contract with the serialized scaler and model and must never change.
const (
	FeaturePregnancies              = "pregnancies"
	FeatureGlucose                  = "glucose"
	FeatureBloodPressure            = "blood_pressure"
	FeatureSkinThickness            = "skin_thickness"
	FeatureInsulin                  = "insulin"
	FeatureBMI                      = "bmi"
	FeatureDiabetesPedigreeFunction = "diabetes_pedigree_function"
	FeatureAge                      = "age"
)

// NumFeatures is the length of every FeatureVector.
const NumFeatures = 8

// FeatureSpec describes a single patient measurement: its wire name, the
// closed range of valid values, the unit it is expressed in and whether it
// must be a whole number.
type FeatureSpec struct {
	Name    string
	Min     float64
	Max     float64
	Unit    string
	Integer bool
	// Default and Step are used by interactive adapters to pre-fill and nudge inputs.
	Default float64
	Step    float64
}

// Features lists every measurement in feature-vector order.
var Features = [NumFeatures]FeatureSpec{ //nolint: gochecknoglobals
	{Name: FeaturePregnancies, Min: 0, Max: 20, Unit: "count", Integer: true, Default: 0, Step: 1},
	{Name: FeatureGlucose, Min: 0, Max: 200, Unit: "mg/dL", Default: 120, Step: 1},
	{Name: FeatureBloodPressure, Min: 0, Max: 130, Unit: "mm Hg", Default: 70, Step: 1},
	{Name: FeatureSkinThickness, Min: 0, Max: 100, Unit: "mm", Default: 20, Step: 1},
	{Name: FeatureInsulin, Min: 0, Max: 900, Unit: "uU/mL", Default: 80, Step: 1},
	{Name: FeatureBMI, Min: 10.0, Max: 70.0, Unit: "kg/m²", Default: 25.0, Step: 0.1},
	{Name: FeatureDiabetesPedigreeFunction, Min: 0.0, Max: 2.5, Unit: "ratio", Default: 0.5, Step: 0.01},
	{Name: FeatureAge, Min: 1, Max: 100, Unit: "years", Integer: true, Default: 30, Step: 1},
}

// Check reports why v is not an acceptable value for the feature, or "" when it is.
func (f FeatureSpec) Check(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "must be a finite number"
	}
	if f.Integer && v != math.Trunc(v) {
		return "must be an integer"
	}
	if v < f.Min || v > f.Max {
		return fmt.Sprintf("must be between %s and %s", formatBound(f.Min), formatBound(f.Max))
	}

	return ""
}

func formatBound(v float64) string {
	return fmt.Sprintf("%g", v)
}

// FeatureByName returns the spec of the named feature.
func FeatureByName(name string) (FeatureSpec, bool) {
	for _, f := range Features {
		if f.Name == name {
			return f, true
		}
	}

	return FeatureSpec{}, false
}

// PatientRecord holds the eight clinical measurements of a single patient.
// It is a value object: adapters build it, nothing mutates it afterwards.
type PatientRecord struct {
	Pregnancies              int     `json:"pregnancies"`
	Glucose                  float64 `json:"glucose"`
	BloodPressure            float64 `json:"blood_pressure"`
	SkinThickness            float64 `json:"skin_thickness"`
	Insulin                  float64 `json:"insulin"`
	BMI                      float64 `json:"bmi"`
	DiabetesPedigreeFunction float64 `json:"diabetes_pedigree_function"`
	Age                      int     `json:"age"`
}

// DefaultPatientRecord returns the record interactive adapters start from.
func DefaultPatientRecord() PatientRecord {
	r, _ := RecordFromValues(DefaultValues())

	return r
}

// DefaultValues returns the default value of every feature keyed by name.
func DefaultValues() map[string]float64 {
	values := make(map[string]float64, NumFeatures)
	for _, f := range Features {
		values[f.Name] = f.Default
	}

	return values
}

// Values returns the record as a map keyed by feature name.
func (r PatientRecord) Values() map[string]float64 {
	v := BuildFeatureVector(r)
	out := make(map[string]float64, NumFeatures)
	for i, f := range Features {
		out[f.Name] = v[i]
	}

	return out
}

// Validate checks every field against its declared range. It returns a
// *ValidationError listing all offending fields, or nil.
func (r PatientRecord) Validate() error {
	v := BuildFeatureVector(r)
	var verr ValidationError
	for i, f := range Features {
		if msg := f.Check(v[i]); msg != "" {
			verr.Add(f.Name, msg)
		}
	}
	if verr.Empty() {
		return nil
	}

	return &verr
}

// RecordFromValues builds a PatientRecord from values keyed by feature name.
// Missing fields, non-integral integer fields and out-of-range values are all
// reported together in a *ValidationError. Unknown keys are ignored.
func RecordFromValues(values map[string]float64) (PatientRecord, error) {
	var verr ValidationError
	v := make(FeatureVector, NumFeatures)
	for i, f := range Features {
		x, ok := values[f.Name]
		if !ok {
			verr.Add(f.Name, "field required")

			continue
		}
		if msg := f.Check(x); msg != "" {
			verr.Add(f.Name, msg)

			continue
		}
		v[i] = x
	}
	if !verr.Empty() {
		return PatientRecord{}, &verr
	}

	return PatientRecord{
		Pregnancies:              int(v[0]),
		Glucose:                  v[1],
		BloodPressure:            v[2],
		SkinThickness:            v[3],
		Insulin:                  v[4],
		BMI:                      v[5],
		DiabetesPedigreeFunction: v[6],
		Age:                      int(v[7]),
	}, nil
}
