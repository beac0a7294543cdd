package dashboard

import (
	"diabetes/pkg/domain"
	"diabetes/pkg/serrors"
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

func formatValue(f domain.FeatureSpec, v float64) string {
	if f.Integer {
		return strconv.Itoa(int(v))
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}

// recordFromInputs parses the form. Every rejected field is returned keyed by
// feature name with the reason.
func recordFromInputs(inputs []textinput.Model) (domain.PatientRecord, map[string]string) {
	fieldErrs := map[string]string{}
	values := make(map[string]float64, len(inputs))
	for i, f := range domain.Features {
		raw := strings.TrimSpace(inputs[i].Value())
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			fieldErrs[f.Name] = "must be a number"

			continue
		}
		values[f.Name] = v
	}

	record, err := domain.RecordFromValues(values)
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		for _, fe := range verr.Fields {
			if _, ok := fieldErrs[fe.Field]; !ok {
				fieldErrs[fe.Field] = fe.Message
			}
		}
	}

	return record, fieldErrs
}

// userMessage turns a prediction failure into a short status line.
func userMessage(err error) string {
	switch serrors.KindOf(err) {
	case serrors.ErrInvalidInput:
		return "Invalid patient record"
	case serrors.ErrUnavailable:
		return "Models are not loaded"
	case serrors.ErrScalingFailed, serrors.ErrClassificationFailed:
		return "Prediction failed (see logs)"
	default:
		return "Unexpected error (see logs)"
	}
}
