// Package export writes the currently filtered view back out as a delimited
// file for download.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"oceandash/domain/table"
	"oceandash/internal/errors"
)

// WriteCSV writes the view as UTF-8 comma-separated text with a header row.
// Columns are the view's columns: the canonical entity and year names plus
// the indicator's metric column, verbatim.
func WriteCSV(w io.Writer, view *table.Table) error {
	cw := csv.NewWriter(w)

	header := []string{table.EntityColumn, table.YearColumn, view.Indicator.MetricColumn}
	if err := cw.Write(header); err != nil {
		return errors.Wrap(err, "failed to write CSV header")
	}
	for _, row := range view.Rows {
		record := []string{
			row.Entity,
			strconv.Itoa(row.Year),
			strconv.FormatFloat(row.Value, 'f', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return errors.Wrap(err, "failed to write CSV row")
		}
	}

	cw.Flush()
	return errors.Wrap(cw.Error(), "failed to flush CSV")
}

// WriteXLSX writes the view as a single-sheet workbook with the same columns
// as the CSV export.
func WriteXLSX(w io.Writer, view *table.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	headers := []string{table.EntityColumn, table.YearColumn, view.Indicator.MetricColumn}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return errors.Wrap(err, "failed to address header cell")
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return errors.Wrap(err, "failed to write header cell")
		}
	}

	for i, row := range view.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.Wrap(err, "failed to address row")
		}
		if err := f.SetSheetRow(sheet, cell, &[]interface{}{row.Entity, row.Year, row.Value}); err != nil {
			return errors.Wrap(err, "failed to write row")
		}
	}

	if err := f.Write(w); err != nil {
		return errors.Wrap(err, "failed to write workbook")
	}
	return nil
}

// Filename builds the download name for one export, e.g.
// ods14_ocean-health-index_20260826_1a2b3c4d.csv
func Filename(indicatorKey, ext string, now time.Time) string {
	shortID := uuid.NewString()[:8]
	return fmt.Sprintf("ods14_%s_%s_%s.%s", indicatorKey, now.Format("20060102"), shortID, ext)
}
