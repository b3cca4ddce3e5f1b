package sheetserve

import (
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/sheetserve/pkg/sheetserve/catalog"
	"github.com/ukaji3/sheetserve/pkg/sheetserve/models"
	"github.com/ukaji3/sheetserve/pkg/sheetserve/parser"
)

// Load opens the workbook at path and builds a catalog of every table found.
// Sheets are processed in workbook order and segmented independently; the
// resulting tables fold into a single catalog. Rows that appear before any
// title row are kept under a table named after their sheet.
//
// Failures to open or read the workbook come back as a *SourceError whose
// chain matches ErrSourceUnavailable.
func Load(path string, opts Options) (*catalog.Catalog, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &SourceError{Path: path, Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if opts.Sheet != "" {
		sheets = []string{opts.Sheet}
	}

	var tables []models.Table
	for _, sheetName := range sheets {
		grid, err := parser.ExtractGrid(f, sheetName)
		if err != nil {
			return nil, &SourceError{Path: path, Err: err}
		}
		tables = append(tables, parser.SegmentTables(grid, sheetName)...)
	}

	return catalog.New(tables), nil
}
