// Dataset loading. A missing or unreadable file yields an empty Table and
// a logged diagnostic so the dashboard stays servable with empty charts
// instead of failing at startup.
package dataset

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Load reads the tabular file at path. The format is chosen by extension:
// .xlsx/.xlsm via excelize, .csv via encoding/csv. Any failure (missing
// file, corrupt content, unsupported extension) returns an empty Table
// after logging the cause; Load never fails the pipeline.
func Load(path string) Table {
	if _, err := os.Stat(path); err != nil {
		log.Printf("dataset %s: %v", path, err)
		return Table{}
	}

	var (
		t   Table
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		t, err = loadExcel(path)
	case ".csv":
		t, err = loadCSV(path)
	default:
		err = fmt.Errorf("unsupported extension %q", filepath.Ext(path))
	}
	if err != nil {
		log.Printf("dataset %s: %v", path, err)
		return Table{}
	}
	return t
}

// loadExcel reads the first sheet of an xlsx workbook. The first row is
// the header; short data rows are padded with empty cells.
func loadExcel(path string) (Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return Table{}, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return Table{}, nil
	}
	return fromCells(rows[0], rows[1:]), nil
}

// loadCSV reads a comma-separated file with a header row.
func loadCSV(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	cells, err := r.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("read csv: %w", err)
	}
	if len(cells) == 0 {
		return Table{}, nil
	}
	return fromCells(cells[0], cells[1:]), nil
}

// fromCells builds a Table from a header row and data rows. Header names
// are trimmed; a blank header becomes "Unnamed: <index>" so that files
// exported with an unnamed index column stay addressable by the resolver.
func fromCells(header []string, data [][]string) Table {
	columns := make([]string, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		columns[i] = name
	}

	rows := make([]Row, 0, len(data))
	for _, cells := range data {
		row := make(Row, len(columns))
		for i, col := range columns {
			if i < len(cells) {
				row[col] = cells[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}
	return Table{Columns: columns, Rows: rows}
}
