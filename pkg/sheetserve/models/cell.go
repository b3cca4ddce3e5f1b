// Package models defines the data structures shared by the grid parser and
// the table catalog.
package models

// CellKind tags what a grid cell holds.
type CellKind int

const (
	// CellEmpty marks a cell with no content.
	CellEmpty CellKind = iota
	// CellText marks a cell holding non-numeric text.
	CellText
	// CellNumber marks a cell holding a numeric value.
	CellNumber
)

// String returns the kind name used in logs and test output.
func (k CellKind) String() string {
	switch k {
	case CellEmpty:
		return "empty"
	case CellText:
		return "text"
	case CellNumber:
		return "number"
	default:
		return "unknown"
	}
}

// Cell is one cell of a sheet grid. Raw always carries the cell text as
// displayed in the sheet; Number is set only when Kind is CellNumber.
type Cell struct {
	// Kind tags the cell content.
	Kind CellKind `json:"kind"`
	// Raw is the cell text as displayed (empty for CellEmpty).
	Raw string `json:"raw,omitempty"`
	// Number is the parsed numeric value when Kind is CellNumber.
	Number float64 `json:"number,omitempty"`
}

// EmptyCell returns a cell with no content.
func EmptyCell() Cell {
	return Cell{Kind: CellEmpty}
}

// TextCell returns a text cell.
func TextCell(raw string) Cell {
	return Cell{Kind: CellText, Raw: raw}
}

// NumberCell returns a numeric cell. raw keeps the displayed form.
func NumberCell(raw string, value float64) Cell {
	return Cell{Kind: CellNumber, Raw: raw, Number: value}
}

// IsEmpty reports whether the cell has no content.
func (c Cell) IsEmpty() bool {
	return c.Kind == CellEmpty
}
