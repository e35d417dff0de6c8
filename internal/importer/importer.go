// Package importer reads furniture catalogs from CSV and Excel files and
// floor backdrops from DXF drawings. Catalog imports detect the delimiter,
// map columns by header name case-insensitively, and fall back to
// positional columns when no header is present.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/piwi3910/FurniLayout/internal/model"
	"github.com/xuri/excelize/v2"
)

// ImportResult holds the results of a catalog import.
type ImportResult struct {
	Entries  []model.CatalogEntry
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	ID       int
	Name     int
	Width    int
	Depth    int
	Category int
	Color    int
	Note     int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"id":       {"id", "code", "sku", "catalog id"},
	"name":     {"name", "nama", "item", "furniture", "description", "desc", "label"},
	"width":    {"width", "w", "length", "len", "panjang"},
	"depth":    {"depth", "d", "lebar", "height", "h"},
	"category": {"category", "cat", "type", "room"},
	"color":    {"color", "colour", "hex", "warna"},
	"note":     {"note", "notes", "remark", "comment"},
}

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// Returns the mapping and true if a header was detected, or the positional
// mapping Name, Width, Depth, Category, Color and false otherwise.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{ID: -1, Name: -1, Width: -1, Depth: -1, Category: -1, Color: -1, Note: -1}
	slots := map[string]*int{
		"id": &mapping.ID, "name": &mapping.Name, "width": &mapping.Width, "depth": &mapping.Depth,
		"category": &mapping.Category, "color": &mapping.Color, "note": &mapping.Note,
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized == alias {
					isHeader = true
					if slot := slots[role]; *slot == -1 {
						*slot = i
					}
				}
			}
		}
	}

	if !isHeader {
		return ColumnMapping{ID: -1, Name: 0, Width: 1, Depth: 2, Category: 3, Color: 4, Note: -1}, false
	}
	return mapping, true
}

func validCategory(c string) bool {
	for _, known := range model.Categories {
		if known != model.CategoryAll && known == c {
			return true
		}
	}
	return false
}

// getCell safely retrieves a cell value from a row by column index.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseRow extracts a catalog entry from a row using the given column mapping.
// Returns the entry, any error message, and any warnings.
func parseRow(row []string, mapping ColumnMapping, rowLabel string, count int) (model.CatalogEntry, string, []string) {
	name := getCell(row, mapping.Name)
	if name == "" {
		name = fmt.Sprintf("Furniture %d", count+1)
	}

	widthStr := getCell(row, mapping.Width)
	if widthStr == "" {
		return model.CatalogEntry{}, fmt.Sprintf("%s: Missing width value", rowLabel), nil
	}
	width, err := strconv.ParseFloat(widthStr, 64)
	if err != nil {
		return model.CatalogEntry{}, fmt.Sprintf("%s: Invalid width '%s'", rowLabel, widthStr), nil
	}

	depthStr := getCell(row, mapping.Depth)
	if depthStr == "" {
		return model.CatalogEntry{}, fmt.Sprintf("%s: Missing depth value", rowLabel), nil
	}
	depth, err := strconv.ParseFloat(depthStr, 64)
	if err != nil {
		return model.CatalogEntry{}, fmt.Sprintf("%s: Invalid depth '%s'", rowLabel, depthStr), nil
	}

	if width <= 0 || depth <= 0 {
		return model.CatalogEntry{}, fmt.Sprintf("%s: Width and depth must be positive", rowLabel), nil
	}

	var warnings []string
	category := strings.ToLower(getCell(row, mapping.Category))
	if category == "" {
		category = model.CategoryLiving
	} else if !validCategory(category) {
		warnings = append(warnings, fmt.Sprintf("%s: Unknown category '%s', defaulting to living", rowLabel, category))
		category = model.CategoryLiving
	}

	color := getCell(row, mapping.Color)
	if color != "" && !hexColor.MatchString(color) {
		warnings = append(warnings, fmt.Sprintf("%s: Invalid color '%s', using default", rowLabel, color))
		color = ""
	}
	if color == "" {
		color = model.DefaultSettings().DefaultColor
	}

	entry := model.NewCatalogEntry(name, width, depth, category, color)
	if id := getCell(row, mapping.ID); id != "" {
		entry.ID = id
	}
	entry.Note = getCell(row, mapping.Note)
	return entry, "", warnings
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCatalogCSV imports catalog entries from a CSV file.
func ImportCatalogCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	records, err := readCSV(bytes.NewReader(data), delimiter)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	return importFromRows(records, "Line", result.Warnings)
}

// ImportCatalogCSVFromReader imports catalog entries from a CSV reader with a known delimiter.
func ImportCatalogCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	records, err := readCSV(reader, delimiter)
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("Cannot read CSV: %v", err)}}
	}
	return importFromRows(records, "Line", nil)
}

func readCSV(r io.Reader, delimiter rune) ([][]string, error) {
	csvReader := csv.NewReader(r)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1
	return csvReader.ReadAll()
}

// ImportCatalogExcel imports catalog entries from the first sheet of an Excel file.
func ImportCatalogExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	return importFromRows(rows, "Row", nil)
}

// importFromRows is the shared import logic for both CSV and Excel data.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		missing := []string{}
		if mapping.Width == -1 {
			missing = append(missing, "Width")
		}
		if mapping.Depth == -1 {
			missing = append(missing, "Depth")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else if len(rows[0]) >= 3 {
		if _, err := strconv.ParseFloat(strings.TrimSpace(rows[0][1]), 64); err != nil {
			// Unrecognized header: skip it but keep positional mapping
			startRow = 1
			result.Warnings = append(result.Warnings, "Detected header row, skipping")
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		entry, errMsg, warnings := parseRow(row, mapping, rowLabel, len(result.Entries))
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		result.Warnings = append(result.Warnings, warnings...)
		result.Entries = append(result.Entries, entry)
	}

	return result
}
