package storage

import (
	"context"
	"diabetes/pkg/domain"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// cursorSep separates the timestamp and the ID in an encoded Cursor. It can
// not appear in an RFC3339 timestamp nor in a UUID.
const cursorSep = "_"

// Cursor is a keyset position in the history ordered by (CreatedAt, ID)
// descending. A zero ID matches every row older than CreatedAt.
type Cursor struct {
	CreatedAt time.Time
	ID        domain.PredictionID
}

// IsZero reports whether c points at the start of the history.
func (c Cursor) IsZero() bool {
	return c.CreatedAt.IsZero()
}

// String encodes c as "<RFC3339Nano>_<uuid>".
func (c Cursor) String() string {
	if c.IsZero() {
		return ""
	}
	ts := c.CreatedAt.UTC().Format(time.RFC3339Nano)
	if c.ID.IsZero() {
		return ts
	}

	return ts + cursorSep + c.ID.String()
}

// ParseCursor decodes a cursor produced by Cursor.String. A bare RFC3339
// timestamp is accepted as well.
func ParseCursor(s string) (Cursor, error) {
	if s == "" {
		return Cursor{}, nil
	}

	ts, id, hasID := strings.Cut(s, cursorSep)
	createdAt, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return Cursor{}, fmt.Errorf("could not parse cursor time: %w", err)
	}
	if !hasID {
		return Cursor{CreatedAt: createdAt}, nil
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return Cursor{}, fmt.Errorf("could not parse cursor id: %w", err)
	}

	return Cursor{CreatedAt: createdAt, ID: domain.PredictionID(parsed)}, nil
}

// PredictionsPage groups a page of predictions together with an optional
// NextCursor used for pagination.
type PredictionsPage struct {
	// Predictions contains the current page, newest first.
	Predictions []domain.Prediction
	// NextCursor points at the last row of this page. It is nil when there is
	// no next page.
	NextCursor *Cursor
}

// PredictionStorage persists the prediction history. Stored predictions are
// immutable.
type PredictionStorage interface {
	// StorePredictions inserts one or more predictions and returns the stored
	// rows including the generated ID and CreatedAt.
	StorePredictions(ctx context.Context, predictions ...domain.Prediction) ([]domain.Prediction, error)
	// PredictionByID fetches a prediction by its ID. Returns nil when not found.
	PredictionByID(ctx context.Context, ID domain.PredictionID) (*domain.Prediction, error)
	// Predictions returns a page of predictions strictly after cursor in
	// (created_at, id) descending order, limited by the given limit. If tier is
	// non-empty, results are filtered to predictions with the given risk tier.
	Predictions(ctx context.Context, tier domain.RiskTier, cursor Cursor, limit uint) (PredictionsPage, error)
	// CountByRiskTier returns the number of stored predictions per risk tier.
	CountByRiskTier(ctx context.Context) (map[domain.RiskTier]int64, error)
}
