package v1handler

import (
	"diabetes/internal/riskfactor"
	"diabetes/pkg/domain"
	"diabetes/pkg/serrors"
	"net/http"
	"strconv"

	"github.com/go-faster/jx"
)

// Root describes the API entry points.
func (h Handler) Root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.FieldStart("message")
			e.Str("Diabetes Prediction API")
			e.FieldStart("docs")
			e.Str(h.deps.DocsPath)
			e.FieldStart("health")
			e.Str(APIPrefix + "/health")
		})
	})
}

// Health reports process liveness regardless of the artifacts.
func (h Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.FieldStart("status")
			e.Str("ok")
			e.FieldStart("service")
			e.Str("diabetes-prediction-api")
		})
	})
}

// DiabetesHealth reports whether predictions can be served.
func (h Handler) DiabetesHealth(w http.ResponseWriter, r *http.Request) {
	if !h.deps.Prediction.Ready() {
		h.NewError(r.Context(), w,
			serrors.With(serrors.ErrUnavailable, "Prediction service is not available. Models not loaded."))

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.FieldStart("status")
			e.Str("healthy")
			e.FieldStart("service")
			e.Str("diabetes-prediction")
			e.FieldStart("models_loaded")
			e.Bool(true)
		})
	})
}

// Info describes the loaded model, the expected inputs and the risk levels.
func (h Handler) Info(w http.ResponseWriter, _ *http.Request) {
	model := h.deps.Prediction.ModelName()

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.FieldStart("model")
			if model == "" {
				e.Null()
			} else {
				e.Str(model)
			}
			e.FieldStart("features")
			e.Arr(func(e *jx.Encoder) {
				for _, f := range domain.Features {
					e.Obj(func(e *jx.Encoder) {
						e.FieldStart("name")
						e.Str(f.Name)
						e.FieldStart("min")
						e.Float64(f.Min)
						e.FieldStart("max")
						e.Float64(f.Max)
						e.FieldStart("unit")
						e.Str(f.Unit)
					})
				}
			})
			e.FieldStart("risk_levels")
			e.Obj(func(e *jx.Encoder) {
				for _, t := range domain.RiskTiers {
					e.FieldStart(string(t))
					e.Str(t.Description())
				}
			})
		})
	})
}

// Predict runs a patient record through the model.
func (h Handler) Predict(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := readBody(w, r)
	if err != nil {
		h.NewError(ctx, w, err)

		return
	}
	record, err := DecodeRecord(body)
	if err != nil {
		h.NewError(ctx, w, err)

		return
	}

	p, err := h.deps.Prediction.Predict(ctx, record)
	if err != nil {
		h.NewError(ctx, w, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		encodeOutcome(e, p)
	})
}

// RiskFactors explains a patient record with the clinical rules. The
// is_diabetic query parameter selects the recommendation list.
func (h Handler) RiskFactors(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	positive := false
	if v := r.URL.Query().Get("is_diabetic"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			h.NewError(ctx, w, serrors.With(serrors.ErrBadRequest, "is_diabetic must be a boolean"))

			return
		}
		positive = b
	}

	body, err := readBody(w, r)
	if err != nil {
		h.NewError(ctx, w, err)

		return
	}
	record, err := DecodeRecord(body)
	if err != nil {
		h.NewError(ctx, w, err)

		return
	}

	analysis := riskfactor.Analyze(record)

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.FieldStart("risk_factors")
			encodeFactors(e, analysis.RiskFactors)
			e.FieldStart("positive_factors")
			encodeFactors(e, analysis.PositiveFactors)
			e.FieldStart("recommendations_title")
			e.Str(riskfactor.RecommendationsTitle(positive))
			e.FieldStart("recommendations")
			encodeRecommendations(e, riskfactor.Recommendations(positive))
		})
	})
}
