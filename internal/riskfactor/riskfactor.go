// Package riskfactor explains a patient record with simple clinical rules,
// independently of the model, and suggests lifestyle recommendations.
package riskfactor

import "diabetes/pkg/domain"

// Type tells whether a factor raises the risk or is reassuring.
type Type string

const (
	TypeRisk     Type = "risk"
	TypePositive Type = "positive"
)

// Severity grades risk factors. Positive factors have no severity.
type Severity string

const (
	SeverityHigh     Severity = "high"
	SeverityModerate Severity = "moderate"
)

// Factor is a single observation about a patient record.
type Factor struct {
	Type     Type
	Message  string
	Severity Severity
}

// Analysis splits the observations into risk and positive factors, each in
// rule order.
type Analysis struct {
	RiskFactors     []Factor
	PositiveFactors []Factor
}

func (a *Analysis) risk(severity Severity, message string) {
	a.RiskFactors = append(a.RiskFactors, Factor{Type: TypeRisk, Message: message, Severity: severity})
}

func (a *Analysis) positive(message string) {
	a.PositiveFactors = append(a.PositiveFactors, Factor{Type: TypePositive, Message: message})
}

// Analyze applies the glucose, BMI, age, blood pressure, pedigree and insulin
// rules to r. Values falling between two rules produce no factor.
func Analyze(r domain.PatientRecord) Analysis {
	a := Analysis{RiskFactors: []Factor{}, PositiveFactors: []Factor{}}

	switch {
	case r.Glucose > 125:
		a.risk(SeverityHigh, "High Glucose Level (>125 mg/dL) - Indicates potential diabetes")
	case r.Glucose < 100:
		a.positive("Normal Glucose Level (<100 mg/dL)")
	}

	switch {
	case r.BMI >= 30:
		a.risk(SeverityHigh, "Obesity (BMI >= 30) - Significantly increases diabetes risk")
	case r.BMI >= 25:
		a.risk(SeverityModerate, "Overweight (BMI 25-29.9) - Moderate risk factor")
	case r.BMI >= 18.5 && r.BMI <= 24.9:
		a.positive("Healthy BMI (18.5-24.9 kg/m²)")
	}

	if r.Age >= 45 {
		a.risk(SeverityModerate, "Age Factor (>= 45 years) - Increased risk with age")
	}

	switch {
	case r.BloodPressure > 80:
		a.risk(SeverityModerate, "Elevated Blood Pressure (>80 mm Hg)")
	case r.BloodPressure >= 60:
		a.positive("Normal Blood Pressure (60-80 mm Hg)")
	}

	if r.DiabetesPedigreeFunction > 0.5 {
		a.risk(SeverityHigh, "Genetic Predisposition (DPF >0.5) - Family history indicates higher risk")
	}

	if r.Insulin > 200 {
		a.risk(SeverityModerate, "Elevated Insulin (>200 uU/mL) - May indicate insulin resistance")
	}

	return a
}
