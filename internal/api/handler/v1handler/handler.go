// Package v1handler is the HTTP presentation adapter of the prediction
// service. Requests and responses are JSON encoded with go-faster/jx.
package v1handler

import (
	"context"
	"diabetes/internal/prediction"
	"diabetes/pkg/domain"
	"diabetes/pkg/logger"
	"diabetes/pkg/serrors"
	"errors"
	"net/http"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// APIPrefix is the path prefix of the diabetes endpoints.
const APIPrefix = "/api/diabetes"

// Deps are the services the handlers delegate to.
type Deps struct {
	Prediction prediction.Service
	// DocsPath is advertised by the root endpoint.
	DocsPath string
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Register adds every v1 route to mux.
func (h Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.Root)
	mux.HandleFunc("GET /health", h.Health)

	mux.HandleFunc("GET "+APIPrefix+"/health", h.DiabetesHealth)
	mux.HandleFunc("GET "+APIPrefix+"/info", h.Info)
	mux.HandleFunc("POST "+APIPrefix+"/predict", h.Predict)
	mux.HandleFunc("POST "+APIPrefix+"/risk-factors", h.RiskFactors)
	mux.HandleFunc("GET "+APIPrefix+"/predictions", h.ListPredictions)
	mux.HandleFunc("GET "+APIPrefix+"/predictions/stats", h.PredictionStats)
	mux.HandleFunc("GET "+APIPrefix+"/predictions/{id}", h.GetPrediction)
}

// NewError writes err as a JSON error response. The status code is derived
// from the semantic kind of err; errors without a kind, and internal
// prediction failures, are reported as 500 with an opaque message.
func (h Handler) NewError(ctx context.Context, w http.ResponseWriter, err error) {
	status := serrors.HTTPStatus(serrors.KindOf(err))

	var verr *domain.ValidationError
	if status == http.StatusUnprocessableEntity && errors.As(err, &verr) {
		writeJSON(w, status, func(e *jx.Encoder) {
			e.Obj(func(e *jx.Encoder) {
				e.FieldStart("detail")
				e.Str("invalid patient record")
				e.FieldStart("fields")
				encodeFieldErrors(e, verr.Fields)
			})
		})

		return
	}

	detail := "internal server error"
	if status == http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
		switch serrors.KindOf(err) {
		case serrors.ErrScalingFailed, serrors.ErrClassificationFailed:
			detail = "prediction failed"
		}
	} else {
		detail = errorDetail(err)
	}

	writeJSON(w, status, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.FieldStart("detail")
			e.Str(detail)
		})
	})
}

// errorDetail returns the message of the outermost semantic error in the
// chain, falling back to its full text.
func errorDetail(err error) string {
	var serr *serrors.Error
	if errors.As(err, &serr) {
		if msg := serr.Message(); msg != "" {
			return msg
		}

		return serr.Error()
	}

	return err.Error()
}

func writeJSON(w http.ResponseWriter, status int, encode func(e *jx.Encoder)) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	encode(e)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}
