package parser

import (
	"math"
	"strconv"

	"github.com/ukaji3/sheetserve/pkg/sheetserve/models"
	"github.com/xuri/excelize/v2"
)

// ExtractGrid reads every cell of a sheet into a Grid.
// Cell values arrive from excelize already formatted, so the text seen here
// matches what a spreadsheet application would display.
func ExtractGrid(f *excelize.File, sheetName string) (models.Grid, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	grid := make(models.Grid, 0, len(rows))
	for _, row := range rows {
		cells := make([]models.Cell, 0, len(row))
		for _, value := range row {
			cells = append(cells, classifyCell(value))
		}
		grid = append(grid, cells)
	}
	return grid, nil
}

// classifyCell turns a formatted cell string into a tagged cell.
// Only finite floats in plain decimal or scientific notation become numbers;
// the other spellings ParseFloat accepts ("NaN", "Inf", hex floats,
// underscore grouping) stay text.
func classifyCell(value string) models.Cell {
	if value == "" {
		return models.EmptyCell()
	}
	if n, err := strconv.ParseFloat(value, 64); err == nil && plainDecimal(value) {
		if !math.IsNaN(n) && !math.IsInf(n, 0) {
			return models.NumberCell(value, n)
		}
	}
	return models.TextCell(value)
}

// plainDecimal reports whether a parseable value is spelled in plain decimal
// or scientific notation rather than a Go-only literal form.
func plainDecimal(value string) bool {
	for _, r := range value {
		switch r {
		case 'x', 'X', 'p', 'P', '_':
			return false
		}
	}
	return true
}
