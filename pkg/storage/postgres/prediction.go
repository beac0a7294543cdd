package postgres

import (
	"context"
	"diabetes/pkg/domain"
	"diabetes/pkg/storage"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	predictionsTable = "predictions"
)

func (p *PgSQL) StorePredictions(ctx context.Context, predictions ...domain.Prediction) ([]domain.Prediction, error) {
	if len(predictions) == 0 {
		return nil, nil
	}

	pgPredictions, err := domainPredictionsToPg(predictions)
	if err != nil {
		return nil, err
	}

	var result []PgPrediction
	if err := p.Builder.Insert(predictionsTable).
		Rows(pgPredictions).
		Returning(&PgPrediction{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store predictions into pg: %w", err)
	}

	return pgPredictionsToDomain(result)
}

// PredictionByID returns a prediction by its ID.
func (p *PgSQL) PredictionByID(ctx context.Context, id domain.PredictionID) (*domain.Prediction, error) {
	var row PgPrediction
	found, err := p.Builder.From(predictionsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch prediction by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// Predictions returns predictions filtered by optional risk tier, strictly
// after cursor in (created_at, id) descending order, limited by limit.
func (p *PgSQL) Predictions(ctx context.Context,
	tier domain.RiskTier,
	cursor storage.Cursor,
	limit uint) (storage.PredictionsPage, error) {
	var w []goqu.Expression
	if tier != "" {
		w = append(w, goqu.I("risk_tier").Eq(string(tier)))
	}
	if !cursor.IsZero() {
		w = append(w, keysetBefore(cursor))
	}

	// fetch one extra to determine if there is a next page
	fetch := limit + 1
	ds := p.Builder.From(predictionsTable).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch)
	if len(w) > 0 {
		ds = ds.Where(w...)
	}

	var rows []PgPrediction
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.PredictionsPage{}, fmt.Errorf("could not fetch predictions from pg: %w", err)
	}

	var nextCursor *storage.Cursor
	if uint(len(rows)) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		nextCursor = &storage.Cursor{
			CreatedAt: last.CreatedAt,
			ID:        domain.PredictionID(last.ID),
		}
	}

	domainRows, err := pgPredictionsToDomain(rows)
	if err != nil {
		return storage.PredictionsPage{}, err
	}

	return storage.PredictionsPage{
		Predictions: domainRows,
		NextCursor:  nextCursor,
	}, nil
}

// keysetBefore matches rows that sort after cursor in (created_at, id)
// descending order. Rows sharing the cursor timestamp are told apart by id.
func keysetBefore(cursor storage.Cursor) goqu.Expression {
	older := goqu.I("created_at").Lt(cursor.CreatedAt)
	if cursor.ID.IsZero() {
		return older
	}

	return goqu.Or(
		older,
		goqu.And(
			goqu.I("created_at").Eq(cursor.CreatedAt),
			goqu.I("id").Lt(uuid.UUID(cursor.ID)),
		),
	)
}

// CountByRiskTier returns the number of stored predictions grouped by risk tier.
// Tiers without predictions are reported as zero.
func (p *PgSQL) CountByRiskTier(ctx context.Context) (map[domain.RiskTier]int64, error) {
	var rows []struct {
		RiskTier string `db:"risk_tier"`
		Count    int64  `db:"count"`
	}
	if err := p.Builder.From(predictionsTable).
		Select(goqu.I("risk_tier"), goqu.COUNT("*").As("count")).
		GroupBy(goqu.I("risk_tier")).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not count predictions by risk tier: %w", err)
	}

	counts := make(map[domain.RiskTier]int64, len(domain.RiskTiers))
	for _, tier := range domain.RiskTiers {
		counts[tier] = 0
	}
	for _, row := range rows {
		counts[domain.RiskTier(row.RiskTier)] = row.Count
	}

	return counts, nil
}
