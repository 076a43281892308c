// Package backup parses the CSV files produced by the export endpoint so
// a user can restore their spend history. Columns are matched by header
// name; id, type, and created_at columns from an export are ignored
// because the store reassigns them.
package backup

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	enc "github.com/arjunsachdev/regretly/internal/encoding"
	"github.com/arjunsachdev/regretly/internal/spend"
)

const (
	colDate        = "date"
	colAmount      = "amount"
	colCategory    = "category"
	colMood        = "mood"
	colDescription = "description"
)

var requiredCols = []string{colDate, colAmount, colCategory, colMood}

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// colIndex maps lower-cased column names to their position.
type colIndex map[string]int

func (p *Parser) Parse(r io.Reader) ([]spend.LogParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("empty file")
	}

	cols, err := headerIndex(rows[0])
	if err != nil {
		return nil, err
	}

	return parseRows(cols, rows[1:])
}

func headerIndex(header []string) (colIndex, error) {
	cols := make(colIndex)

	for i, cell := range header {
		name := strings.ToLower(strings.TrimSpace(cell))
		if name != "" {
			cols[name] = i
		}
	}

	for _, name := range requiredCols {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}

	return cols, nil
}

func parseRows(cols colIndex, rows [][]string) ([]spend.LogParams, error) {
	var params []spend.LogParams

	for i, row := range rows {
		rowNum := i + 2 // 1-based, skipping the header

		if isEmpty(row) {
			continue
		}

		date, err := time.Parse(time.DateOnly, cellValue(row, cols[colDate]))
		if err != nil {
			return nil, fmt.Errorf("row %d: bad date: %w", rowNum, err)
		}

		amount, err := strconv.ParseFloat(cellValue(row, cols[colAmount]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad amount: %w", rowNum, err)
		}

		category, err := spend.ParseCategory(cellValue(row, cols[colCategory]))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		mood, err := spend.ParseMood(cellValue(row, cols[colMood]))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		p := spend.LogParams{
			Amount:   amount,
			Category: category,
			Mood:     mood,
			Date:     date,
		}

		if idx, ok := cols[colDescription]; ok {
			p.Description = cellValue(row, idx)
		}

		params = append(params, p)
	}

	return params, nil
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

func isEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}
