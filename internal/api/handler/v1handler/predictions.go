package v1handler

import (
	"diabetes/pkg/domain"
	"diabetes/pkg/serrors"
	"net/http"
	"strconv"

	"github.com/go-faster/jx"
	"github.com/google/uuid"
)

// ListPredictions returns stored predictions, newest first.
func (h Handler) ListPredictions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	var tier domain.RiskTier
	if v := q.Get("risk_level"); v != "" {
		t, err := domain.ParseRiskTier(v)
		if err != nil {
			h.NewError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, ""))

			return
		}
		tier = t
	}

	var limit uint
	if v := q.Get("limit"); v != "" {
		l, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			h.NewError(ctx, w, serrors.With(serrors.ErrBadRequest, "limit must be a positive integer"))

			return
		}
		limit = uint(l)
	}

	predictions, nextCursor, err := h.deps.Prediction.List(ctx, tier, q.Get("cursor"), limit)
	if err != nil {
		h.NewError(ctx, w, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.FieldStart("items")
			e.Arr(func(e *jx.Encoder) {
				for i := range predictions {
					encodePrediction(e, &predictions[i])
				}
			})
			e.FieldStart("next_cursor")
			if nextCursor == "" {
				e.Null()
			} else {
				e.Str(nextCursor)
			}
		})
	})
}

// GetPrediction returns a stored prediction by ID.
func (h Handler) GetPrediction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.NewError(ctx, w, serrors.With(serrors.ErrBadRequest, "invalid prediction id"))

		return
	}

	p, err := h.deps.Prediction.Get(ctx, domain.PredictionID(id))
	if err != nil {
		h.NewError(ctx, w, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		encodePrediction(e, p)
	})
}

// PredictionStats returns the number of stored predictions per risk level.
func (h Handler) PredictionStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	counts, err := h.deps.Prediction.Stats(ctx)
	if err != nil {
		h.NewError(ctx, w, err)

		return
	}

	var total int64
	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.FieldStart("risk_levels")
			e.Obj(func(e *jx.Encoder) {
				for _, t := range domain.RiskTiers {
					e.FieldStart(string(t))
					e.Int64(counts[t])
					total += counts[t]
				}
			})
			e.FieldStart("total")
			e.Int64(total)
		})
	})
}
