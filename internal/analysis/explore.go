// Package analysis provides the pure aggregation functions of the dashboard:
// descriptive statistics, rankings, progress deltas and cross-indicator
// correlation. Every function takes a cleaned table and computes fresh values;
// nothing here holds state.
package analysis

import (
	"sort"

	"github.com/montanaflynn/stats"

	"oceandash/domain/table"
	"oceandash/internal/errors"
)

// DefaultRankSize is how many entities the top/bottom lists carry.
const DefaultRankSize = 5

// Summary is the five-number summary plus mean of the metric column.
type Summary struct {
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// EntityMean is one entity's mean metric value over the table.
type EntityMean struct {
	Entity string
	Mean   float64
}

// Exploration bundles everything the exploratory stats panel shows.
type Exploration struct {
	EntityCount int
	FirstYear   int
	LastYear    int
	Mean        float64
	Std         float64
	Summary     Summary
	Top         []EntityMean
	Bottom      []EntityMean
}

// Explore computes the exploratory statistics for a cleaned table. A table
// with zero rows has no year span, so it fails with EMPTY_DATASET.
func Explore(t *table.Table) (*Exploration, error) {
	minYear, maxYear, ok := t.YearSpan()
	if !ok {
		return nil, errors.EmptyDataset(t.Indicator.Label)
	}

	summary, err := Describe(t.Values())
	if err != nil {
		return nil, err
	}

	return &Exploration{
		EntityCount: len(t.Entities()),
		FirstYear:   minYear,
		LastYear:    maxYear,
		Mean:        summary.Mean,
		Std:         summary.Std,
		Summary:     summary,
		Top:         TopEntities(t, DefaultRankSize),
		Bottom:      BottomEntities(t, DefaultRankSize),
	}, nil
}

// Describe computes count, mean, sample standard deviation, min, quartiles
// and max over the given values.
func Describe(values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, errors.EmptyDataset("metric column")
	}

	mean, err := stats.Mean(values)
	if err != nil {
		return Summary{}, errors.Wrap(err, "mean")
	}
	// Sample std is undefined for a single observation; report 0 there the
	// way the dashboard displays it.
	std := 0.0
	if len(values) > 1 {
		if std, err = stats.StandardDeviationSample(values); err != nil {
			return Summary{}, errors.Wrap(err, "sample standard deviation")
		}
	}
	min, err := stats.Min(values)
	if err != nil {
		return Summary{}, errors.Wrap(err, "min")
	}
	max, err := stats.Max(values)
	if err != nil {
		return Summary{}, errors.Wrap(err, "max")
	}
	median, err := stats.Median(values)
	if err != nil {
		return Summary{}, errors.Wrap(err, "median")
	}
	q1, err := stats.Percentile(values, 25)
	if err != nil {
		return Summary{}, errors.Wrap(err, "first quartile")
	}
	q3, err := stats.Percentile(values, 75)
	if err != nil {
		return Summary{}, errors.Wrap(err, "third quartile")
	}

	return Summary{
		Count:  len(values),
		Mean:   mean,
		Std:    std,
		Min:    min,
		Q1:     q1,
		Median: median,
		Q3:     q3,
		Max:    max,
	}, nil
}

// EntityMeans computes the per-entity mean of the metric, sorted by entity
// name ascending.
func EntityMeans(t *table.Table) []EntityMean {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, row := range t.Rows {
		sums[row.Entity] += row.Value
		counts[row.Entity]++
	}

	out := make([]EntityMean, 0, len(sums))
	for entity, sum := range sums {
		out = append(out, EntityMean{Entity: entity, Mean: sum / float64(counts[entity])})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Entity < out[j].Entity })
	return out
}

// TopEntities returns the n entities with the highest per-entity mean.
// Ties break by entity name ascending so the listing is deterministic.
func TopEntities(t *table.Table, n int) []EntityMean {
	means := EntityMeans(t)
	sort.SliceStable(means, func(i, j int) bool { return means[i].Mean > means[j].Mean })
	return truncate(means, n)
}

// BottomEntities returns the n entities with the lowest per-entity mean,
// ties by entity name ascending.
func BottomEntities(t *table.Table, n int) []EntityMean {
	means := EntityMeans(t)
	sort.SliceStable(means, func(i, j int) bool { return means[i].Mean < means[j].Mean })
	return truncate(means, n)
}

func truncate(means []EntityMean, n int) []EntityMean {
	if n < len(means) {
		means = means[:n]
	}
	return means
}

// PeriodMetrics summarizes a filtered view: the mean over all selected rows
// and the between-entity variability (sample std of the per-entity means).
// ok is false when the view is empty.
func PeriodMetrics(view *table.Table) (mean, betweenEntityStd float64, ok bool) {
	if view.IsEmpty() {
		return 0, 0, false
	}

	mean, _ = stats.Mean(view.Values())

	entityMeans := EntityMeans(view)
	if len(entityMeans) > 1 {
		values := make([]float64, len(entityMeans))
		for i, em := range entityMeans {
			values[i] = em.Mean
		}
		betweenEntityStd, _ = stats.StandardDeviationSample(values)
	}
	return mean, betweenEntityStd, true
}

// RankingForYear returns the rows for one year sorted by metric descending,
// capped at limit. Ties break by entity name ascending.
func RankingForYear(t *table.Table, year, limit int) []table.Row {
	var rows []table.Row
	for _, row := range t.Rows {
		if row.Year == year {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Value != rows[j].Value {
			return rows[i].Value > rows[j].Value
		}
		return rows[i].Entity < rows[j].Entity
	})
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}
	return rows
}
