package inference

import (
	"diabetes/pkg/domain"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache memoizes successful outcomes per patient record. Outcomes only depend
// on the record and the artifacts, which never change for a running process.
type Cache struct {
	Predictor
	outcomes *lru.Cache[domain.PatientRecord, domain.PredictionOutcome]
}

// NewCache wraps p with an LRU cache holding up to size outcomes. A size of
// 0 or less disables caching and returns p unchanged.
func NewCache(p Predictor, size int) (Predictor, error) {
	if size <= 0 {
		return p, nil
	}

	outcomes, err := lru.New[domain.PatientRecord, domain.PredictionOutcome](size)
	if err != nil {
		return nil, fmt.Errorf("could not create outcome cache: %w", err)
	}

	return &Cache{Predictor: p, outcomes: outcomes}, nil
}

func (c *Cache) Predict(record domain.PatientRecord) (domain.PredictionOutcome, error) {
	if outcome, ok := c.outcomes.Get(record); ok {
		return outcome, nil
	}

	outcome, err := c.Predictor.Predict(record)
	if err != nil {
		return outcome, err
	}
	c.outcomes.Add(record, outcome)

	return outcome, nil
}

// Len returns the number of cached outcomes.
func (c *Cache) Len() int { return c.outcomes.Len() }
