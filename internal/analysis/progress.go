package analysis

import (
	"sort"

	"oceandash/domain/table"
)

// ProgressRecord captures an entity's change between its earliest and latest
// observation in the current selection.
type ProgressRecord struct {
	Entity        string
	FirstYear     int
	LastYear      int
	FirstValue    float64
	LastValue     float64
	AbsoluteDelta float64
	PercentDelta  float64
}

// AnalyzeProgress builds one ProgressRecord per requested entity that has at
// least two observations in the table. Entities with fewer observations are
// skipped silently. Output order follows the order of entities as given.
func AnalyzeProgress(t *table.Table, entities []string) []ProgressRecord {
	byEntity := make(map[string][]table.Row)
	for _, row := range t.Rows {
		byEntity[row.Entity] = append(byEntity[row.Entity], row)
	}

	var records []ProgressRecord
	for _, entity := range entities {
		rows := byEntity[entity]
		if len(rows) < 2 {
			continue
		}
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Year < rows[j].Year })

		first, last := rows[0], rows[len(rows)-1]
		delta := last.Value - first.Value
		percent := 0.0
		if first.Value != 0 {
			percent = delta / first.Value * 100
		}

		records = append(records, ProgressRecord{
			Entity:        entity,
			FirstYear:     first.Year,
			LastYear:      last.Year,
			FirstValue:    first.Value,
			LastValue:     last.Value,
			AbsoluteDelta: delta,
			PercentDelta:  percent,
		})
	}
	return records
}
