package sheetserve

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// writeFixture saves a two-sheet workbook and returns its path.
func writeFixture(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "A1", "Initial Investment")
	f.SetCellValue("Sheet1", "A2", "Tax Credit (if any)=")
	f.SetCellValue("Sheet1", "B2", "$10")
	f.SetCellValue("Sheet1", "C2", "5%")
	f.SetCellValue("Sheet1", "A3", "Salvage Value=")
	f.SetCellValue("Sheet1", "B3", 100)

	if _, err := f.NewSheet("Sheet2"); err != nil {
		t.Fatalf("Failed to add sheet: %v", err)
	}
	f.SetCellValue("Sheet2", "A1", "Operating Cashflows")
	f.SetCellValue("Sheet2", "A2", "Year 1=")
	f.SetCellValue("Sheet2", "B2", 1000)

	path := filepath.Join(t.TempDir(), "fixture.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save fixture: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	cat, err := Load(writeFixture(t), DefaultOptions())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	names := cat.TableNames()
	if len(names) != 2 || names[0] != "Initial Investment" || names[1] != "Operating Cashflows" {
		t.Fatalf("Unexpected table names %v", names)
	}

	labels, err := cat.RowLabels("Initial Investment")
	if err != nil {
		t.Fatalf("RowLabels failed: %v", err)
	}
	if len(labels) != 2 || labels[0] != "Tax Credit (if any)=" || labels[1] != "Salvage Value=" {
		t.Errorf("Unexpected labels %v", labels)
	}

	sum, err := cat.SumRow("Initial Investment", "Tax Credit (if any)=")
	if err != nil {
		t.Fatalf("SumRow failed: %v", err)
	}
	if sum != 15.0 {
		t.Errorf("SumRow = %v, expected 15.0", sum)
	}

	sum, err = cat.SumRow("Operating Cashflows", "Year 1=")
	if err != nil {
		t.Fatalf("SumRow failed: %v", err)
	}
	if sum != 1000 {
		t.Errorf("SumRow = %v, expected 1000", sum)
	}
}

func TestLoadSingleSheet(t *testing.T) {
	cat, err := Load(writeFixture(t), Options{Sheet: "Sheet2"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	names := cat.TableNames()
	if len(names) != 1 || names[0] != "Operating Cashflows" {
		t.Errorf("Unexpected table names %v", names)
	}
}

func TestLoadUnknownSheet(t *testing.T) {
	_, err := Load(writeFixture(t), Options{Sheet: "Nope"})
	if !errors.Is(err, ErrSourceUnavailable) {
		t.Errorf("Expected ErrSourceUnavailable, got %v", err)
	}
}

func TestLoadUntitledRows(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	// No title row anywhere: rows belong to a table named after the sheet
	f.SetCellValue("Sheet1", "A1", "Orphan=")
	f.SetCellValue("Sheet1", "B1", 5)

	path := filepath.Join(t.TempDir(), "untitled.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save fixture: %v", err)
	}

	cat, err := Load(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	names := cat.TableNames()
	if len(names) != 1 || names[0] != "Sheet1" {
		t.Fatalf("Expected fallback table 'Sheet1', got %v", names)
	}
	sum, err := cat.SumRow("Sheet1", "Orphan=")
	if err != nil {
		t.Fatalf("SumRow failed: %v", err)
	}
	if sum != 5 {
		t.Errorf("SumRow = %v, expected 5", sum)
	}
}

func TestLoadEmptyWorkbook(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	path := filepath.Join(t.TempDir(), "blank.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save fixture: %v", err)
	}

	cat, err := Load(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cat.Empty() {
		t.Errorf("Expected empty catalog, got %d tables", cat.Len())
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.xlsx"), DefaultOptions())
	if !errors.Is(err, ErrSourceUnavailable) {
		t.Fatalf("Expected ErrSourceUnavailable, got %v", err)
	}

	var srcErr *SourceError
	if !errors.As(err, &srcErr) {
		t.Fatalf("Expected *SourceError, got %T", err)
	}
	if srcErr.Path == "" || srcErr.Err == nil {
		t.Errorf("SourceError missing context: %+v", srcErr)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.xlsx")
	if err := os.WriteFile(path, []byte("not a workbook"), 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	_, err := Load(path, DefaultOptions())
	if !errors.Is(err, ErrSourceUnavailable) {
		t.Errorf("Expected ErrSourceUnavailable, got %v", err)
	}
}
