package v1handler

import (
	"diabetes/internal/riskfactor"
	"diabetes/pkg/domain"
	"diabetes/pkg/serrors"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-faster/jx"
)

// MaxBodyBytes limits the size of request bodies.
const MaxBodyBytes = 1 << 20

// DecodeRecord reads a patient record from a single JSON object. Malformed
// JSON and trailing data are an serrors.ErrBadRequest. Numbers may also be
// sent as numeric strings. Missing fields, values that are not numbers and
// range violations are reported together as serrors.ErrInvalidInput wrapping
// a *domain.ValidationError. Unknown keys are ignored.
func DecodeRecord(body []byte) (domain.PatientRecord, error) {
	d := jx.DecodeBytes(body)
	if d.Next() != jx.Object {
		return domain.PatientRecord{}, serrors.With(serrors.ErrBadRequest, "request body must be a JSON object")
	}

	values := make(map[string]float64, domain.NumFeatures)
	typeErrs := make(map[string]string)
	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		name := string(key)
		if _, ok := domain.FeatureByName(name); !ok {
			return d.Skip()
		}

		v, ok, err := decodeNumber(d)
		if err != nil {
			return fmt.Errorf("could not decode %s: %w", name, err)
		}
		if !ok {
			typeErrs[name] = "must be a number"

			return nil
		}
		values[name] = v

		return nil
	})
	if err != nil {
		return domain.PatientRecord{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid JSON body")
	}
	// only whitespace may follow the object
	if err := d.Skip(); !errors.Is(err, io.EOF) {
		return domain.PatientRecord{}, serrors.With(serrors.ErrBadRequest, "unexpected data after JSON object")
	}

	record, err := domain.RecordFromValues(values)
	if err == nil {
		return record, nil
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		return domain.PatientRecord{}, serrors.Wrap(serrors.ErrInvalidInput, err, "")
	}
	for i, f := range verr.Fields {
		if msg, ok := typeErrs[f.Field]; ok {
			verr.Fields[i].Message = msg
		}
	}

	return domain.PatientRecord{}, serrors.Wrap(serrors.ErrInvalidInput, verr, "")
}

// decodeNumber reads a JSON number or a string holding a finite decimal
// number. ok is false for any other value, which is skipped.
func decodeNumber(d *jx.Decoder) (float64, bool, error) {
	switch d.Next() {
	case jx.Number:
		v, err := d.Float64()
		if err != nil {
			return 0, false, err
		}

		return v, true, nil
	case jx.String:
		raw, err := d.Str()
		if err != nil {
			return 0, false, err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false, nil //nolint: nilerr
		}

		return v, true, nil
	default:
		return 0, false, d.Skip()
	}
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "could not read request body")
	}

	return body, nil
}

func encodeFieldErrors(e *jx.Encoder, fields []domain.FieldError) {
	e.Arr(func(e *jx.Encoder) {
		for _, f := range fields {
			e.Obj(func(e *jx.Encoder) {
				e.FieldStart("field")
				e.Str(f.Field)
				e.FieldStart("message")
				e.Str(f.Message)
			})
		}
	})
}

func encodeOutcomeFields(e *jx.Encoder, o domain.PredictionOutcome) {
	e.FieldStart("prediction")
	e.Int(o.Label)
	e.FieldStart("is_diabetic")
	e.Bool(o.IsPositiveClass)
	e.FieldStart("probability_negative")
	e.Float64(o.ProbabilityNegative)
	e.FieldStart("probability_positive")
	e.Float64(o.ProbabilityPositive)
	e.FieldStart("risk_level")
	e.Str(string(o.RiskTier))
	e.FieldStart("message")
	e.Str(o.Message)
}

func encodeRecord(e *jx.Encoder, r domain.PatientRecord) {
	v := domain.BuildFeatureVector(r)
	e.Obj(func(e *jx.Encoder) {
		for i, f := range domain.Features {
			e.FieldStart(f.Name)
			if f.Integer {
				e.Int(int(v[i]))

				continue
			}
			e.Float64(v[i])
		}
	})
}

// encodeOutcome writes the response of the predict endpoint. The id is only
// present when the prediction was stored.
func encodeOutcome(e *jx.Encoder, p *domain.Prediction) {
	e.Obj(func(e *jx.Encoder) {
		if !p.ID.IsZero() {
			e.FieldStart("id")
			e.Str(p.ID.String())
		}
		encodeOutcomeFields(e, p.Outcome)
	})
}

func encodePrediction(e *jx.Encoder, p *domain.Prediction) {
	e.Obj(func(e *jx.Encoder) {
		e.FieldStart("id")
		e.Str(p.ID.String())
		if p.RequestID != "" {
			e.FieldStart("request_id")
			e.Str(p.RequestID)
		}
		e.FieldStart("model")
		e.Str(p.ModelName)
		e.FieldStart("record")
		encodeRecord(e, p.Record)
		encodeOutcomeFields(e, p.Outcome)
		e.FieldStart("created_at")
		e.Str(p.CreatedAt.UTC().Format(time.RFC3339Nano))
	})
}

func encodeFactors(e *jx.Encoder, factors []riskfactor.Factor) {
	e.Arr(func(e *jx.Encoder) {
		for _, f := range factors {
			e.Obj(func(e *jx.Encoder) {
				e.FieldStart("type")
				e.Str(string(f.Type))
				e.FieldStart("message")
				e.Str(f.Message)
				if f.Severity != "" {
					e.FieldStart("severity")
					e.Str(string(f.Severity))
				}
			})
		}
	})
}

func encodeRecommendations(e *jx.Encoder, recs []riskfactor.Recommendation) {
	e.Arr(func(e *jx.Encoder) {
		for _, r := range recs {
			e.Obj(func(e *jx.Encoder) {
				e.FieldStart("title")
				e.Str(r.Title)
				e.FieldStart("description")
				e.Str(r.Description)
			})
		}
	})
}
