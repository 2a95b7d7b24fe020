// Package tabular reads delimited indicator files (CSV, plus XLSX exports of
// the same data) into raw string rows for the loader to validate and coerce.
package tabular

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// RawRow is one file row as header-keyed string cells.
type RawRow map[string]string

// RawData is the parsed but uncleaned content of one indicator file.
type RawData struct {
	Headers []string
	Rows    []RawRow
}

// HasColumn reports whether a header with the given name is present.
func (d *RawData) HasColumn(name string) bool {
	for _, h := range d.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// Reader reads one tabular file, dispatching on extension.
type Reader struct {
	filePath string
	fileType string // "csv" or "xlsx"
}

// NewReader creates a reader for the given file path.
func NewReader(filePath string) *Reader {
	fileType := "csv"
	if strings.ToLower(filepath.Ext(filePath)) == ".xlsx" {
		fileType = "xlsx"
	}
	return &Reader{filePath: filePath, fileType: fileType}
}

// Exists reports whether the backing file is present on disk.
func (r *Reader) Exists() bool {
	_, err := os.Stat(r.filePath)
	return err == nil
}

// Read parses the file into raw rows. The first row is the header; short rows
// are kept as-is (missing trailing cells are simply absent from the RawRow).
func (r *Reader) Read() (*RawData, error) {
	switch r.fileType {
	case "xlsx":
		return r.readXLSX()
	default:
		return r.readCSV()
	}
}

func (r *Reader) readCSV() (*RawData, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // ragged rows are row-level noise, not a parse error

	readStart := time.Now()
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	log.Printf("[tabular] CSV %s read in %.2fms (%d rows)",
		filepath.Base(r.filePath), float64(time.Since(readStart).Nanoseconds())/1e6, len(rows))

	if len(rows) == 0 {
		return nil, fmt.Errorf("file has no header row")
	}
	return processRows(rows), nil
}

func (r *Reader) readXLSX() (*RawData, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %s has no header row", sheets[0])
	}
	log.Printf("[tabular] XLSX %s sheet %s read (%d rows)", filepath.Base(r.filePath), sheets[0], len(rows))

	return processRows(rows), nil
}

// processRows converts raw string rows into header-keyed rows.
func processRows(rows [][]string) *RawData {
	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		headers[i] = strings.TrimSpace(stripBOM(header))
	}

	var dataRows []RawRow
	for i := 1; i < len(rows); i++ {
		rowData := make(RawRow, len(headers))
		for j, cell := range rows[i] {
			if j < len(headers) {
				rowData[headers[j]] = strings.TrimSpace(cell)
			}
		}
		dataRows = append(dataRows, rowData)
	}

	return &RawData{Headers: headers, Rows: dataRows}
}

// stripBOM removes a UTF-8 byte-order mark. Our World in Data exports carry
// one on the first header cell.
func stripBOM(s string) string {
	return strings.TrimPrefix(s, "\ufeff")
}
