// Package catalog holds the tables extracted from a workbook and answers
// name-based lookups over them.
package catalog

import (
	"github.com/tiendc/go-deepcopy"

	"github.com/ukaji3/sheetserve/pkg/sheetserve/models"
	"github.com/ukaji3/sheetserve/pkg/sheetserve/numeric"
)

// Catalog is an immutable snapshot of segmented tables in workbook order.
// Lookups by name resolve to the first table carrying that name; duplicates
// stay listed in TableNames.
type Catalog struct {
	tables []models.Table
	index  map[string]int
}

// New builds a catalog from tables. The slice is handed over and must not be
// modified by the caller afterwards.
func New(tables []models.Table) *Catalog {
	c := &Catalog{
		tables: tables,
		index:  make(map[string]int, len(tables)),
	}
	for i, t := range tables {
		if _, seen := c.index[t.Name]; !seen {
			c.index[t.Name] = i
		}
	}
	return c
}

// Len returns the number of tables, counting duplicates.
func (c *Catalog) Len() int {
	return len(c.tables)
}

// Empty reports whether the catalog holds no tables at all.
func (c *Catalog) Empty() bool {
	return len(c.tables) == 0
}

// TableNames returns every table name in workbook order, duplicates
// included. The slice is never nil.
func (c *Catalog) TableNames() []string {
	names := make([]string, len(c.tables))
	for i, t := range c.tables {
		names[i] = t.Name
	}
	return names
}

// Table returns a copy of the named table, so callers cannot reach back into
// the snapshot.
func (c *Catalog) Table(name string) (models.Table, error) {
	idx, ok := c.index[name]
	if !ok {
		return models.Table{}, &TableNotFoundError{Name: name}
	}
	var out models.Table
	if err := deepcopy.Copy(&out, c.tables[idx]); err != nil {
		return models.Table{}, err
	}
	return out, nil
}

// RowLabels returns the row labels of the named table in row order,
// duplicates included. An existing table with no rows yields an empty,
// non-nil slice.
func (c *Catalog) RowLabels(name string) ([]string, error) {
	idx, ok := c.index[name]
	if !ok {
		return nil, &TableNotFoundError{Name: name}
	}
	return c.tables[idx].Labels(), nil
}

// Row returns a copy of the first row of the named table carrying label.
func (c *Catalog) Row(table, label string) (models.Row, error) {
	row, err := c.findRow(table, label)
	if err != nil {
		return models.Row{}, err
	}
	var out models.Row
	if err := deepcopy.Copy(&out, *row); err != nil {
		return models.Row{}, err
	}
	return out, nil
}

// SumRow returns the sum of the recognized numeric cells in the first row of
// the named table carrying label.
func (c *Catalog) SumRow(table, label string) (float64, error) {
	row, err := c.findRow(table, label)
	if err != nil {
		return 0, err
	}
	return numeric.Sum(row.Cells), nil
}

func (c *Catalog) findRow(table, label string) (*models.Row, error) {
	idx, ok := c.index[table]
	if !ok {
		return nil, &TableNotFoundError{Name: table}
	}
	rows := c.tables[idx].Rows
	for i := range rows {
		if rows[i].Label == label {
			return &rows[i], nil
		}
	}
	return nil, &RowNotFoundError{Table: table, Label: label}
}
