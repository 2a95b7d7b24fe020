// Package loader turns an indicator key into a cleaned, strongly-typed table.
// All schema validation and type coercion happens here, once; everything
// downstream operates on validated fields only.
package loader

import (
	"math"
	"path/filepath"
	"strconv"

	"oceandash/adapters/tabular"
	"oceandash/domain/indicator"
	"oceandash/domain/table"
	"oceandash/internal"
	"oceandash/internal/errors"
)

// Input column names expected in the source files. The loader renames them to
// the canonical table.EntityColumn / table.YearColumn.
const (
	sourceEntityColumn = "Entity"
	sourceYearColumn   = "Year"
)

// Loader resolves indicator keys against the registry and reads their backing
// files from the data directory. Each Load call is independent and idempotent
// for unchanged file content.
type Loader struct {
	registry *indicator.Registry
	dataDir  string
	logger   *internal.Logger
}

// New creates a loader over the given registry and data directory.
func New(registry *indicator.Registry, dataDir string) *Loader {
	return &Loader{
		registry: registry,
		dataDir:  dataDir,
		logger:   internal.NewDefaultLogger(),
	}
}

// Load reads, validates and cleans the dataset for one indicator.
//
// Failure modes are typed: UNKNOWN_INDICATOR for a bad key,
// DATA_SOURCE_MISSING when the file is absent, MALFORMED_INPUT on a parse
// error and SCHEMA_MISMATCH when an expected column is missing. Row-level
// problems (missing fields, unparsable year or metric) are not errors; those
// rows are dropped.
func (l *Loader) Load(key string) (*table.Table, error) {
	def, ok := l.registry.Lookup(key)
	if !ok {
		return nil, errors.UnknownIndicator(key)
	}

	path := filepath.Join(l.dataDir, def.Filename)
	reader := tabular.NewReader(path)
	if !reader.Exists() {
		return nil, errors.DataSourceMissing(path)
	}

	raw, err := reader.Read()
	if err != nil {
		return nil, errors.MalformedInput(path, err)
	}

	for _, required := range []string{sourceEntityColumn, sourceYearColumn, def.MetricColumn} {
		if !raw.HasColumn(required) {
			return nil, errors.SchemaMismatch(required, raw.Headers)
		}
	}

	cleaned := &table.Table{Indicator: def}
	dropped := 0
	for _, row := range raw.Rows {
		entity := row[sourceEntityColumn]
		yearStr := row[sourceYearColumn]
		metricStr := row[def.MetricColumn]
		if entity == "" || yearStr == "" || metricStr == "" {
			dropped++
			continue
		}

		year, ok := parseYear(yearStr)
		if !ok {
			dropped++
			continue
		}

		value, err := strconv.ParseFloat(metricStr, 64)
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
			dropped++
			continue
		}

		cleaned.Rows = append(cleaned.Rows, table.Row{Entity: entity, Year: year, Value: value})
	}

	l.logger.Debug("loaded %s: %d rows kept, %d dropped", key, len(cleaned.Rows), dropped)
	return cleaned, nil
}

// Years outside this window are data noise; the bound also keeps an integral
// float like "1e300" from overflowing the int conversion.
const (
	minValidYear = 1000
	maxValidYear = 9999
)

// parseYear accepts plain integers and integral floats ("2000", "2000.0")
// within the valid year window. Anything else drops the row.
func parseYear(s string) (int, bool) {
	if year, err := strconv.Atoi(s); err == nil {
		if year < minValidYear || year > maxValidYear {
			return 0, false
		}
		return year, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < minValidYear || f > maxValidYear {
		return 0, false
	}
	return int(f), true
}
