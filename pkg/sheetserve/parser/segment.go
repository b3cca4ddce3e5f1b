package parser

import (
	"github.com/ukaji3/sheetserve/pkg/sheetserve/models"
)

// SegmentTables splits a sheet grid into logically distinct tables.
//
// A row whose first cell holds text and whose remaining cells are all empty
// is a title row: it opens a new table named by that text and is not stored
// as data. A row whose first cell is empty is skipped. Every other row is a
// data row of the table opened most recently. Data rows that appear before
// any title are collected into a table named fallbackName, so no data row is
// ever dropped.
//
// Tables are returned in sheet order. A title directly followed by another
// title produces an empty table, and duplicate titles produce duplicate
// entries; callers decide how to resolve name collisions.
func SegmentTables(grid models.Grid, fallbackName string) []models.Table {
	var tables []models.Table
	current := -1

	for _, row := range grid {
		if len(row) == 0 || row[0].IsEmpty() {
			continue
		}
		if isTitleRow(row) {
			tables = append(tables, models.Table{Name: row[0].Raw})
			current = len(tables) - 1
			continue
		}
		if current < 0 {
			tables = append(tables, models.Table{Name: fallbackName})
			current = len(tables) - 1
		}
		tables[current].Rows = append(tables[current].Rows, models.Row{
			Label: row[0].Raw,
			Cells: row[1:],
		})
	}

	return tables
}

// isTitleRow reports whether row opens a new table: a text-valued first cell
// with every remaining cell empty. The caller has already ruled out rows with
// an empty first cell.
func isTitleRow(row []models.Cell) bool {
	if row[0].Kind != models.CellText {
		return false
	}
	for _, c := range row[1:] {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}
