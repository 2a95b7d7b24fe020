package ui

import (
	"net/http"
	"strconv"

	"oceandash/domain/indicator"
	"oceandash/domain/table"
)

// selection is one resolved dashboard request: the loaded table plus the
// entity/year filter applied to it. Recomputed on every request.
type selection struct {
	Key      string
	Def      indicator.Definition
	Table    *table.Table
	Entities []string
	Years    table.YearRange
	View     *table.Table
}

// defaultEntityCount mirrors the dashboard default of preselecting the first
// five entities alphabetically.
const defaultEntityCount = 5

// resolveSelection loads the indicator named by the request and applies the
// requested (or default) entity and year filters.
func (a *App) resolveSelection(r *http.Request) (*selection, error) {
	q := r.URL.Query()

	key := q.Get("indicator")
	if key == "" {
		key = a.registry.Keys()[0]
	}

	tbl, err := a.cache.Load(key)
	if err != nil {
		return nil, err
	}

	entities := q["entity"]
	if len(entities) == 0 {
		entities = tbl.Entities()
		if len(entities) > defaultEntityCount {
			entities = entities[:defaultEntityCount]
		}
	}

	minYear, maxYear, _ := tbl.YearSpan()
	years := table.YearRange{Min: minYear, Max: maxYear}
	if v, err := strconv.Atoi(q.Get("year_min")); err == nil {
		years.Min = v
	}
	if v, err := strconv.Atoi(q.Get("year_max")); err == nil {
		years.Max = v
	}

	return &selection{
		Key:      key,
		Def:      tbl.Indicator,
		Table:    tbl,
		Entities: entities,
		Years:    years,
		View:     tbl.Filter(entities, years),
	}, nil
}

// rankYear picks the year for the ranking chart: the request's rank_year if
// present, else the latest year in the table.
func rankYear(r *http.Request, t *table.Table) int {
	if v, err := strconv.Atoi(r.URL.Query().Get("rank_year")); err == nil {
		return v
	}
	_, max, _ := t.YearSpan()
	return max
}
