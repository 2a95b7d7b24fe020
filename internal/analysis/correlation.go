package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"oceandash/domain/table"
)

// CorrelationPair is one (entity, year) observation present in both tables.
type CorrelationPair struct {
	Entity string
	Year   int
	X      float64
	Y      float64
}

// CorrelationResult is the joined observations and their Pearson coefficient.
// Defined is false when the join is empty or the coefficient is not finite
// (degenerate variance); 0 by itself is a legitimate coefficient and never
// stands in for "no result".
type CorrelationResult struct {
	Pairs       []CorrelationPair
	Coefficient float64
	Defined     bool
}

type entityYear struct {
	entity string
	year   int
}

// Correlate inner-joins two cleaned tables on (entity, year) and computes the
// Pearson correlation over the matched value pairs. The join keeps
// multiplicity: a key appearing m times in one table and n in the other
// contributes m*n pairs, so the result is symmetric in its arguments up to
// floating-point error even when a table carries duplicate keys.
func Correlate(a, b *table.Table) CorrelationResult {
	right := make(map[entityYear][]float64, len(b.Rows))
	for _, row := range b.Rows {
		key := entityYear{row.Entity, row.Year}
		right[key] = append(right[key], row.Value)
	}

	var pairs []CorrelationPair
	for _, row := range a.Rows {
		for _, y := range right[entityYear{row.Entity, row.Year}] {
			pairs = append(pairs, CorrelationPair{Entity: row.Entity, Year: row.Year, X: row.Value, Y: y})
		}
	}
	// Join order should not depend on input row order.
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Entity != pairs[j].Entity {
			return pairs[i].Entity < pairs[j].Entity
		}
		if pairs[i].Year != pairs[j].Year {
			return pairs[i].Year < pairs[j].Year
		}
		if pairs[i].X != pairs[j].X {
			return pairs[i].X < pairs[j].X
		}
		return pairs[i].Y < pairs[j].Y
	})

	if len(pairs) == 0 {
		return CorrelationResult{}
	}

	xs := make([]float64, len(pairs))
	ys := make([]float64, len(pairs))
	for i, p := range pairs {
		xs[i] = p.X
		ys[i] = p.Y
	}

	r := stat.Correlation(xs, ys, nil)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return CorrelationResult{Pairs: pairs}
	}
	return CorrelationResult{Pairs: pairs, Coefficient: r, Defined: true}
}

// InterpretCorrelation classifies |r| the way the dashboard explains it:
// strong above 0.7, moderate above 0.3, weak otherwise.
func InterpretCorrelation(r float64) string {
	switch abs := math.Abs(r); {
	case abs > 0.7:
		return "strong"
	case abs > 0.3:
		return "moderate"
	default:
		return "weak"
	}
}
