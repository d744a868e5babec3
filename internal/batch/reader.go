package batch

import (
	"bytes"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Required input columns. Header matching is case-insensitive.
const (
	ColumnFirstName = "firstName"
	ColumnLastName  = "lastName"
)

// Row is one input record awaiting correction. Line is the 1-based data row
// number, kept for log messages.
type Row struct {
	Line      int
	FirstName string
	LastName  string
}

// ReadTable loads a tabular input file. XLSX workbooks are read from their
// first sheet; anything else is treated as CSV with encoding detection.
func ReadTable(path string) ([]Row, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return readXLSX(path)
	}
	return readCSV(path)
}

func readCSV(path string) ([]Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &UnreadableFileError{Path: path, Err: err}
	}
	decoded, _, err := decodeToUTF8(data)
	if err != nil {
		return nil, &UnreadableFileError{Path: path, Err: err}
	}

	r := csv.NewReader(bytes.NewReader(decoded))
	r.LazyQuotes = true
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, &UnreadableFileError{Path: path, Err: err}
	}
	if len(records) == 0 {
		return nil, &UnreadableFileError{Path: path, Err: errors.New("file has no header row")}
	}
	return rowsFromRecords(records)
}

func readXLSX(path string) ([]Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &UnreadableFileError{Path: path, Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &UnreadableFileError{Path: path, Err: errors.New("workbook has no sheets")}
	}
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &UnreadableFileError{Path: path, Err: err}
	}
	if len(records) == 0 {
		return nil, &UnreadableFileError{Path: path, Err: errors.New("sheet has no header row")}
	}
	return rowsFromRecords(records)
}

func rowsFromRecords(records [][]string) ([]Row, error) {
	header := records[0]
	firstCol, lastCol := -1, -1
	for i, h := range header {
		switch {
		case strings.EqualFold(strings.TrimSpace(h), ColumnFirstName):
			firstCol = i
		case strings.EqualFold(strings.TrimSpace(h), ColumnLastName):
			lastCol = i
		}
	}
	if firstCol < 0 {
		return nil, &MissingColumnError{Column: ColumnFirstName}
	}
	if lastCol < 0 {
		return nil, &MissingColumnError{Column: ColumnLastName}
	}

	rows := make([]Row, 0, len(records)-1)
	for i, rec := range records[1:] {
		row := Row{Line: i + 1}
		if firstCol < len(rec) {
			row.FirstName = rec[firstCol]
		}
		if lastCol < len(rec) {
			row.LastName = rec[lastCol]
		}
		rows = append(rows, row)
	}
	return rows, nil
}
