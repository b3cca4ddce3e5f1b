package catalog

import "fmt"

// TableNotFoundError reports a lookup for a table name the catalog does not
// hold.
type TableNotFoundError struct {
	// Name is the table name that was requested.
	Name string
}

func (e *TableNotFoundError) Error() string {
	return fmt.Sprintf("table %q not found", e.Name)
}

// RowNotFoundError reports a lookup for a row label that an existing table
// does not contain.
type RowNotFoundError struct {
	// Table is the table that was searched.
	Table string
	// Label is the row label that was requested.
	Label string
}

func (e *RowNotFoundError) Error() string {
	return fmt.Sprintf("row %q not found in table %q", e.Label, e.Table)
}
