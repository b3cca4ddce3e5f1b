package models

// Grid is the raw two-dimensional cell content of a single sheet, in sheet
// order. Rows may have differing lengths: trailing empty cells a sheet never
// materialized are simply absent.
type Grid [][]Cell

// RowCount returns the number of rows in the grid.
func (g Grid) RowCount() int {
	return len(g)
}

// IsEmpty reports whether the grid has no rows at all.
func (g Grid) IsEmpty() bool {
	return len(g) == 0
}
