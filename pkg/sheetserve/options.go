// Package sheetserve extracts logically distinct tables from spreadsheet
// workbooks and answers row-level numeric queries over them.
package sheetserve

// Options configures workbook loading.
type Options struct {
	// Sheet restricts loading to the named sheet.
	// Empty loads every sheet of the workbook in order.
	Sheet string
}

// DefaultOptions returns options that load every sheet.
func DefaultOptions() Options {
	return Options{}
}
