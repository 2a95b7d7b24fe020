// Package table holds the cleaned, strongly-typed in-memory representation of
// one indicator dataset and the pure selection operations over it.
package table

import (
	"sort"

	"oceandash/domain/indicator"
)

// Canonical column names used everywhere downstream of the loader.
const (
	EntityColumn = "Country/Region"
	YearColumn   = "Year"
)

// Row is a single validated observation: entity is non-empty, year is an
// integer and value is a finite number. Rows failing those checks never make
// it past the loader.
type Row struct {
	Entity string
	Year   int
	Value  float64
}

// Table is a cleaned dataset for one indicator. It is a value container:
// nothing mutates a Table after the loader returns it.
type Table struct {
	Indicator indicator.Definition
	Rows      []Row
}

// YearRange is an inclusive [Min, Max] year selection.
type YearRange struct {
	Min int
	Max int
}

// Contains reports whether year falls inside the range, bounds included.
func (r YearRange) Contains(year int) bool {
	return year >= r.Min && year <= r.Max
}

// Filter returns a new table holding the rows whose entity is in entities and
// whose year falls within years. An empty entity selection yields an empty
// table; selection is explicit, never "everything".
func (t *Table) Filter(entities []string, years YearRange) *Table {
	selected := make(map[string]struct{}, len(entities))
	for _, e := range entities {
		selected[e] = struct{}{}
	}

	out := &Table{Indicator: t.Indicator}
	for _, row := range t.Rows {
		if _, ok := selected[row.Entity]; !ok {
			continue
		}
		if !years.Contains(row.Year) {
			continue
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}

// Entities returns the distinct entity names, sorted ascending.
func (t *Table) Entities() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, row := range t.Rows {
		if _, ok := seen[row.Entity]; !ok {
			seen[row.Entity] = struct{}{}
			out = append(out, row.Entity)
		}
	}
	sort.Strings(out)
	return out
}

// Years returns the distinct years present, sorted ascending.
func (t *Table) Years() []int {
	seen := make(map[int]struct{})
	var out []int
	for _, row := range t.Rows {
		if _, ok := seen[row.Year]; !ok {
			seen[row.Year] = struct{}{}
			out = append(out, row.Year)
		}
	}
	sort.Ints(out)
	return out
}

// YearSpan returns the minimum and maximum year. ok is false for an empty
// table, where the span is undefined.
func (t *Table) YearSpan() (min, max int, ok bool) {
	if len(t.Rows) == 0 {
		return 0, 0, false
	}
	min, max = t.Rows[0].Year, t.Rows[0].Year
	for _, row := range t.Rows[1:] {
		if row.Year < min {
			min = row.Year
		}
		if row.Year > max {
			max = row.Year
		}
	}
	return min, max, true
}

// Values returns the metric column as a flat slice, in row order.
func (t *Table) Values() []float64 {
	out := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row.Value
	}
	return out
}

// Len reports the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// IsEmpty reports whether the table holds no rows.
func (t *Table) IsEmpty() bool {
	return len(t.Rows) == 0
}
