package models

// Row is one data row of a segmented table.
type Row struct {
	// Label is the row's first-cell text, the lookup key within its table.
	Label string `json:"label"`
	// Cells holds the remaining cells of the row in sheet order.
	Cells []Cell `json:"cells,omitempty"`
}

// Table is one logically distinct table carved out of a sheet grid.
type Table struct {
	// Name is the title text that opened the table, or the sheet name for
	// rows that appear before any title.
	Name string `json:"name"`
	// Rows holds the table body in sheet order. A table directly followed
	// by another title has none.
	Rows []Row `json:"rows,omitempty"`
}

// RowCount returns the number of data rows in the table.
func (t Table) RowCount() int {
	return len(t.Rows)
}

// Labels returns every row label in sheet order. Duplicates are kept as-is.
func (t Table) Labels() []string {
	labels := make([]string, len(t.Rows))
	for i, r := range t.Rows {
		labels[i] = r.Label
	}
	return labels
}
