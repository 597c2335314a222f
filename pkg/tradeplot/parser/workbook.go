package parser

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/ukaji3/tradeplot-go/pkg/tradeplot/models"
	"github.com/xuri/excelize/v2"
)

// ReadWorkbook reads the country table of the Countries sheet, or of the
// first sheet when there is none. The table starts with a header row naming
// at least the x and y columns.
func ReadWorkbook(f *excelize.File) (*models.Scenario, error) {
	sheet := CountriesSheet
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	table, ok := DetectCountryTable(rows)
	if !ok {
		return nil, fmt.Errorf("%w in sheet %s", ErrNoCountryTable, sheet)
	}
	slog.Debug("country table detected", "sheet", sheet, "range", table.Range())

	columns, err := headerColumns(rows[table.FirstRow], table)
	if err != nil {
		return nil, fmt.Errorf("sheet %s: %w", sheet, err)
	}

	s := &models.Scenario{}
	for rowIdx := table.FirstRow + 1; rowIdx <= table.LastRow; rowIdx++ {
		row := rows[rowIdx]
		if isBlank(row, table) {
			continue
		}
		c := models.Country{Productivity: 1, Population: 1}
		for name, colIdx := range columns {
			v, set, err := cellNumber(row, rowIdx, colIdx)
			if err != nil {
				return nil, fmt.Errorf("sheet %s: %w", sheet, err)
			}
			if !set {
				if name == "x" || name == "y" {
					cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
					return nil, fmt.Errorf("sheet %s: cell %s: missing %s", sheet, cell, name)
				}
				continue
			}
			switch name {
			case "x":
				c.X = v
			case "y":
				c.Y = v
			case "productivity":
				c.Productivity = v
			case "population":
				c.Population = v
			}
		}
		s.Countries = append(s.Countries, c)
	}
	return s, nil
}

// headerColumns maps the known column names to their column index.
func headerColumns(header []string, table Table) (map[string]int, error) {
	columns := make(map[string]int)
	for colIdx := table.FirstCol; colIdx <= table.LastCol && colIdx < len(header); colIdx++ {
		name := strings.ToLower(strings.TrimSpace(header[colIdx]))
		switch name {
		case "x", "y", "productivity", "population":
			if _, dup := columns[name]; !dup {
				columns[name] = colIdx
			}
		}
	}
	for _, required := range []string{"x", "y"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("%w: header has no %q column", ErrNoCountryTable, required)
		}
	}
	return columns, nil
}

// cellNumber parses the cell at colIdx. set is false for an empty cell.
func cellNumber(row []string, rowIdx, colIdx int) (v float64, set bool, err error) {
	if colIdx >= len(row) || strings.TrimSpace(row[colIdx]) == "" {
		return 0, false, nil
	}
	switch n := parseValue(strings.TrimSpace(row[colIdx])).(type) {
	case int64:
		return float64(n), true, nil
	case float64:
		return n, true, nil
	default:
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
		return 0, false, fmt.Errorf("cell %s: %q is not a number", cell, row[colIdx])
	}
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or s unchanged.
func parseValue(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

func isBlank(row []string, table Table) bool {
	for colIdx := table.FirstCol; colIdx <= table.LastCol && colIdx < len(row); colIdx++ {
		if strings.TrimSpace(row[colIdx]) != "" {
			return false
		}
	}
	return true
}
