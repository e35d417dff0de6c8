package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/piwi3910/FurniLayout/internal/model"
	"github.com/xuri/excelize/v2"
)

// ─── DetectCSVDelimiter Tests ──────────────────────────────

func TestDetectCSVDelimiter_Comma(t *testing.T) {
	data := []byte("Name,Width,Depth,Category\nSofa,260,100,living\nChair,46,75,dining\n")
	got := DetectCSVDelimiter(data)
	if got != ',' {
		t.Errorf("expected comma delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Semicolon(t *testing.T) {
	data := []byte("Name;Width;Depth;Category\nSofa;260;100;living\nChair;46;75;dining\n")
	got := DetectCSVDelimiter(data)
	if got != ';' {
		t.Errorf("expected semicolon delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Tab(t *testing.T) {
	data := []byte("Name\tWidth\tDepth\nSofa\t260\t100\nChair\t46\t75\n")
	got := DetectCSVDelimiter(data)
	if got != '\t' {
		t.Errorf("expected tab delimiter, got %q", got)
	}
}

// ─── DetectColumns Tests ───────────────────────────────────

func TestDetectColumns_StandardHeaders(t *testing.T) {
	row := []string{"ID", "Name", "Width", "Depth", "Category", "Color", "Note"}
	mapping, isHeader := DetectColumns(row)

	if !isHeader {
		t.Fatal("expected header to be detected")
	}
	want := ColumnMapping{ID: 0, Name: 1, Width: 2, Depth: 3, Category: 4, Color: 5, Note: 6}
	if mapping != want {
		t.Errorf("expected %+v, got %+v", want, mapping)
	}
}

func TestDetectColumns_AliasesAndOrder(t *testing.T) {
	row := []string{"WARNA", "Panjang", "lebar", "Nama"}
	mapping, isHeader := DetectColumns(row)

	if !isHeader {
		t.Fatal("expected header to be detected")
	}
	if mapping.Color != 0 || mapping.Width != 1 || mapping.Depth != 2 || mapping.Name != 3 {
		t.Errorf("unexpected mapping %+v", mapping)
	}
	if mapping.ID != -1 || mapping.Category != -1 {
		t.Errorf("unmapped columns should be -1, got %+v", mapping)
	}
}

func TestDetectColumns_NoHeader(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"Sofa", "260", "100"})
	if isHeader {
		t.Error("expected no header")
	}
	if mapping.Name != 0 || mapping.Width != 1 || mapping.Depth != 2 || mapping.Category != 3 {
		t.Errorf("expected positional mapping, got %+v", mapping)
	}
}

// ─── CSV Import Tests ──────────────────────────────────────

func TestImportCatalogCSVFromReader_WithHeaders(t *testing.T) {
	data := "ID,Name,Width,Depth,Category,Color\n" +
		"S1,Sofa,260,100,living,#8B7355\n" +
		"P1,Flower Pot,36,36,Decoration,#228B22\n"
	result := ImportCatalogCSVFromReader(strings.NewReader(data), ',')

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(result.Entries))
	}
	sofa := result.Entries[0]
	if sofa.ID != "S1" || sofa.Name != "Sofa" || sofa.Width != 260 || sofa.Depth != 100 {
		t.Errorf("unexpected entry %+v", sofa)
	}
	if sofa.Color != "#8B7355" {
		t.Errorf("expected color #8B7355, got %s", sofa.Color)
	}
	if result.Entries[1].Category != model.CategoryDecoration {
		t.Errorf("category should be lowercased, got %s", result.Entries[1].Category)
	}
}

func TestImportCatalogCSVFromReader_WithoutHeaders(t *testing.T) {
	data := "Sofa,260,100,living\nChair,46,75,dining\n"
	result := ImportCatalogCSVFromReader(strings.NewReader(data), ',')

	if len(result.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d (errors: %v)", len(result.Entries), result.Errors)
	}
	if result.Entries[1].Category != model.CategoryDining {
		t.Errorf("expected dining, got %s", result.Entries[1].Category)
	}
	if result.Entries[0].ID == "" {
		t.Error("entries without an ID column should get a generated ID")
	}
	if result.Entries[0].Color != model.DefaultSettings().DefaultColor {
		t.Errorf("expected default color, got %s", result.Entries[0].Color)
	}
}

func TestImportCatalogCSVFromReader_UnknownCategoryAndColor(t *testing.T) {
	data := "Name,Width,Depth,Category,Color\nLamp,30,30,garage,red\n"
	result := ImportCatalogCSVFromReader(strings.NewReader(data), ',')

	if len(result.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(result.Entries))
	}
	if result.Entries[0].Category != model.CategoryLiving {
		t.Errorf("unknown category should default to living, got %s", result.Entries[0].Category)
	}
	warnings := strings.Join(result.Warnings, "\n")
	if !strings.Contains(warnings, "Unknown category 'garage'") {
		t.Errorf("expected category warning, got %v", result.Warnings)
	}
	if !strings.Contains(warnings, "Invalid color 'red'") {
		t.Errorf("expected color warning, got %v", result.Warnings)
	}
}

func TestImportCatalogCSVFromReader_MissingRequiredColumn(t *testing.T) {
	data := "Name,Depth\nSofa,100\n"
	result := ImportCatalogCSVFromReader(strings.NewReader(data), ',')

	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "Width") {
		t.Errorf("expected missing Width error, got %v", result.Errors)
	}
	if len(result.Entries) != 0 {
		t.Errorf("expected no entries, got %d", len(result.Entries))
	}
}

func TestImportCatalogCSVFromReader_MixedValidAndInvalid(t *testing.T) {
	data := "Name,Width,Depth\nSofa,260,100\nBroken,abc,100\nGhost,0,50\n\nTable,98,98\n"
	result := ImportCatalogCSVFromReader(strings.NewReader(data), ',')

	if len(result.Entries) != 2 {
		t.Errorf("expected 2 valid entries, got %d", len(result.Entries))
	}
	if len(result.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %v", result.Errors)
	}
	if !strings.Contains(result.Errors[0], "Line 3") || !strings.Contains(result.Errors[0], "Invalid width") {
		t.Errorf("unexpected error %q", result.Errors[0])
	}
	if !strings.Contains(result.Errors[1], "must be positive") {
		t.Errorf("unexpected error %q", result.Errors[1])
	}
}

func TestImportCatalogCSVFromReader_EmptyName(t *testing.T) {
	data := "Name,Width,Depth\n,100,50\n"
	result := ImportCatalogCSVFromReader(strings.NewReader(data), ',')

	if len(result.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(result.Entries))
	}
	if result.Entries[0].Name != "Furniture 1" {
		t.Errorf("expected generated name, got %q", result.Entries[0].Name)
	}
}

func TestImportCatalogCSVFromReader_Empty(t *testing.T) {
	result := ImportCatalogCSVFromReader(strings.NewReader(""), ',')
	if len(result.Errors) == 0 {
		t.Error("expected an error for empty input")
	}
}

func TestImportCatalogCSV_SemicolonFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.csv")
	content := "Name;Width;Depth;Category\nSofa;260;100;living\nDesk;120;60;office\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	result := ImportCatalogCSV(path)

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(result.Entries))
	}
	found := false
	for _, w := range result.Warnings {
		if w == "Detected semicolon delimiter" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected delimiter warning, got %v", result.Warnings)
	}
}

func TestImportCatalogCSV_FileNotFound(t *testing.T) {
	result := ImportCatalogCSV("/nonexistent/catalog.csv")
	if len(result.Errors) == 0 {
		t.Error("expected an error for missing file")
	}
}

func TestImportCatalogCSV_BlankFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blank.csv")
	if err := os.WriteFile(path, []byte("  \n\n"), 0644); err != nil {
		t.Fatal(err)
	}
	result := ImportCatalogCSV(path)
	if len(result.Errors) != 1 || result.Errors[0] != "File is empty" {
		t.Errorf("expected 'File is empty', got %v", result.Errors)
	}
}

// ─── Excel Import Tests ────────────────────────────────────

func createTestExcel(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, row := range rows {
		for j, cell := range row {
			cellRef, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("failed to create cell reference: %v", err)
			}
			if err := f.SetCellValue(sheet, cellRef, cell); err != nil {
				t.Fatalf("failed to set cell value: %v", err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save Excel file: %v", err)
	}
	return path
}

func TestImportCatalogExcel_WithHeaders(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"Name", "Width", "Depth", "Category", "Color"},
		{"Dining Table", 240, 100, "dining", "#8B4513"},
		{"Beach Chair", 80, 200, "outdoor", "#4682B4"},
	})

	result := ImportCatalogExcel(path)

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(result.Entries))
	}
	if result.Entries[0].Name != "Dining Table" || result.Entries[0].Width != 240 {
		t.Errorf("unexpected entry %+v", result.Entries[0])
	}
	if result.Entries[1].Category != model.CategoryOutdoor {
		t.Errorf("expected outdoor, got %s", result.Entries[1].Category)
	}
}

func TestImportCatalogExcel_WithoutHeaders(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"Sofa", 260, 100},
		{"Chair", 46, 75},
	})

	result := ImportCatalogExcel(path)

	if len(result.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d (errors: %v)", len(result.Entries), result.Errors)
	}
}

func TestImportCatalogExcel_FileNotFound(t *testing.T) {
	result := ImportCatalogExcel("/nonexistent/catalog.xlsx")
	if len(result.Errors) == 0 {
		t.Error("expected an error for missing file")
	}
}
