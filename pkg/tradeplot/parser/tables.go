package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Table is the bounding box of a country table, 0-based and inclusive.
type Table struct {
	FirstRow, LastRow int
	FirstCol, LastCol int
}

// Range returns the table in Excel range notation (e.g., "A1:D6").
func (t Table) Range() string {
	start, _ := excelize.CoordinatesToCellName(t.FirstCol+1, t.FirstRow+1)
	end, _ := excelize.CoordinatesToCellName(t.LastCol+1, t.LastRow+1)
	return fmt.Sprintf("%s:%s", start, end)
}

// DetectCountryTable finds the bounding box of non-empty cells in rows as
// returned by excelize GetRows. ok is false when the sheet has no header row
// and at least one data row.
func DetectCountryTable(rows [][]string) (t Table, ok bool) {
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 || maxRow == minRow {
		return Table{}, false
	}
	return Table{FirstRow: minRow, LastRow: maxRow, FirstCol: minCol, LastCol: maxCol}, true
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 {
				minRow = rowIdx
			}
			maxRow = rowIdx
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}
