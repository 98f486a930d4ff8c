package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Row is one card to import. Line is the 1-based row in the source file.
type Row struct {
	Line     int
	Source   string
	Target   string
	Category string
}

type ReadConfig struct {
	FilePath string
	// SheetName defaults to the first sheet of a workbook.
	SheetName  string
	SkipHeader bool
}

// ReadRows reads source, target and category columns from a .csv file or an
// Excel workbook, picked by extension.
func ReadRows(cfg ReadConfig) ([]Row, error) {
	ext := strings.ToLower(filepath.Ext(cfg.FilePath))
	if ext == ".csv" {
		file, err := os.Open(cfg.FilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open CSV file: %w", err)
		}
		defer file.Close()

		return readCSV(file, cfg.SkipHeader)
	}

	return readExcel(cfg)
}

func readExcel(cfg ReadConfig) ([]Row, error) {
	f, err := excelize.OpenFile(cfg.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheet := cfg.SheetName
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}

	return toRows(records, cfg.SkipHeader), nil
}

func readCSV(r io.Reader, skipHeader bool) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV: %w", err)
	}

	return toRows(records, skipHeader), nil
}

func toRows(records [][]string, skipHeader bool) []Row {
	rows := make([]Row, 0, len(records))
	for i, record := range records {
		if i == 0 && skipHeader {
			continue
		}

		row := Row{Line: i + 1}
		if len(record) > 0 {
			row.Source = strings.TrimSpace(record[0])
		}
		if len(record) > 1 {
			row.Target = strings.TrimSpace(record[1])
		}
		if len(record) > 2 {
			row.Category = strings.TrimSpace(record[2])
		}

		if row.Source == "" && row.Target == "" && row.Category == "" {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}
