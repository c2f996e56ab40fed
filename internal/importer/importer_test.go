package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

// ─── DetectCSVDelimiter Tests ──────────────────────────────

func TestDetectCSVDelimiter_Comma(t *testing.T) {
	data := []byte("Label,Width,Height,Qty\nShelf,600,300,2\nDoor,400,800,1\n")
	got := DetectCSVDelimiter(data)
	if got != ',' {
		t.Errorf("expected comma delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Semicolon(t *testing.T) {
	data := []byte("Label;Width;Height;Qty\nShelf;600;300;2\nDoor;400;800;1\n")
	got := DetectCSVDelimiter(data)
	if got != ';' {
		t.Errorf("expected semicolon delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Tab(t *testing.T) {
	data := []byte("Label\tWidth\tHeight\tQty\nShelf\t600\t300\t2\nDoor\t400\t800\t1\n")
	got := DetectCSVDelimiter(data)
	if got != '\t' {
		t.Errorf("expected tab delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Pipe(t *testing.T) {
	data := []byte("Label|Width|Height|Qty\nShelf|600|300|2\nDoor|400|800|1\n")
	got := DetectCSVDelimiter(data)
	if got != '|' {
		t.Errorf("expected pipe delimiter, got %q", got)
	}
}

// ─── DetectColumns Tests ───────────────────────────────────

func TestDetectColumns_StandardHeaders(t *testing.T) {
	row := []string{"Label", "Width", "Height", "Quantity", "Rotatable"}
	mapping, isHeader := DetectColumns(row)

	if !isHeader {
		t.Error("expected header to be detected")
	}
	if mapping.Label != 0 {
		t.Errorf("expected Label at 0, got %d", mapping.Label)
	}
	if mapping.Width != 1 {
		t.Errorf("expected Width at 1, got %d", mapping.Width)
	}
	if mapping.Height != 2 {
		t.Errorf("expected Height at 2, got %d", mapping.Height)
	}
	if mapping.Quantity != 3 {
		t.Errorf("expected Quantity at 3, got %d", mapping.Quantity)
	}
	if mapping.Rotatable != 4 {
		t.Errorf("expected Rotatable at 4, got %d", mapping.Rotatable)
	}
}

func TestDetectColumns_CaseInsensitive(t *testing.T) {
	row := []string{"NAME", "WIDTH", "HEIGHT", "QTY", "ROT"}
	mapping, isHeader := DetectColumns(row)

	if !isHeader {
		t.Error("expected header to be detected")
	}
	if mapping.Label != 0 {
		t.Errorf("expected Label at 0, got %d", mapping.Label)
	}
	if mapping.Rotatable != 4 {
		t.Errorf("expected Rotatable at 4, got %d", mapping.Rotatable)
	}
}

func TestDetectColumns_AlternativeNames(t *testing.T) {
	row := []string{"RID", "W", "H", "Pcs", "Rotate"}
	mapping, isHeader := DetectColumns(row)

	if !isHeader {
		t.Error("expected header to be detected")
	}
	if mapping.Label != 0 {
		t.Errorf("expected Label at 0, got %d", mapping.Label)
	}
	if mapping.Width != 1 {
		t.Errorf("expected Width at 1, got %d", mapping.Width)
	}
	if mapping.Height != 2 {
		t.Errorf("expected Height at 2, got %d", mapping.Height)
	}
	if mapping.Quantity != 3 {
		t.Errorf("expected Quantity at 3, got %d", mapping.Quantity)
	}
	if mapping.Rotatable != 4 {
		t.Errorf("expected Rotatable at 4, got %d", mapping.Rotatable)
	}
}

func TestDetectColumns_ReorderedColumns(t *testing.T) {
	row := []string{"Qty", "Height", "Width", "Label"}
	mapping, isHeader := DetectColumns(row)

	if !isHeader {
		t.Error("expected header to be detected")
	}
	if mapping.Quantity != 0 {
		t.Errorf("expected Quantity at 0, got %d", mapping.Quantity)
	}
	if mapping.Height != 1 {
		t.Errorf("expected Height at 1, got %d", mapping.Height)
	}
	if mapping.Width != 2 {
		t.Errorf("expected Width at 2, got %d", mapping.Width)
	}
	if mapping.Label != 3 {
		t.Errorf("expected Label at 3, got %d", mapping.Label)
	}
}

func TestDetectColumns_NoHeader(t *testing.T) {
	row := []string{"600", "300", "2", "Shelf"}
	mapping, isHeader := DetectColumns(row)

	if isHeader {
		t.Error("expected no header detection for numeric data")
	}
	// Should fall back to positional
	if mapping.Width != 0 || mapping.Height != 1 || mapping.Quantity != 2 || mapping.Label != 3 {
		t.Errorf("expected positional mapping, got %+v", mapping)
	}
}

// ─── CSV Import Tests ──────────────────────────────────────

func TestImportCSVFromReader_WithHeaders(t *testing.T) {
	data := "Label,Width,Height,Quantity,Rotatable\nShelf,600,300,2,yes\nDoor,400,800,1,no\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Parts) != 2 {
		t.Fatalf("expected 2 parts, got %d", len(result.Parts))
	}

	if result.Parts[0].Label != "Shelf" {
		t.Errorf("expected label 'Shelf', got '%s'", result.Parts[0].Label)
	}
	if result.Parts[0].Width != 600 {
		t.Errorf("expected width 600, got %f", result.Parts[0].Width)
	}
	if result.Parts[0].Height != 300 {
		t.Errorf("expected height 300, got %f", result.Parts[0].Height)
	}
	if result.Parts[0].Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", result.Parts[0].Quantity)
	}
	if !result.Parts[0].Rotatable {
		t.Error("expected first part rotatable")
	}
	if result.Parts[1].Rotatable {
		t.Error("expected second part not rotatable")
	}
	if result.Parts[0].ID == "" {
		t.Error("expected generated ID")
	}
}

func TestImportCSVFromReader_WithoutHeaders(t *testing.T) {
	data := "600,300,2,Shelf\n400,800,1,Door\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Parts) != 2 {
		t.Fatalf("expected 2 parts, got %d (errors: %v)", len(result.Parts), result.Errors)
	}
	if result.Parts[0].Label != "Shelf" {
		t.Errorf("expected label 'Shelf', got '%s'", result.Parts[0].Label)
	}
	if result.Parts[0].Width != 600 {
		t.Errorf("expected width 600, got %f", result.Parts[0].Width)
	}
}

func TestImportCSVFromReader_PositionalMinimal(t *testing.T) {
	// Only width and height: quantity defaults to 1, label is generated.
	data := "600,300\n400,800\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Parts) != 2 {
		t.Fatalf("expected 2 parts, got %d (errors: %v)", len(result.Parts), result.Errors)
	}
	if result.Parts[0].Quantity != 1 {
		t.Errorf("expected default quantity 1, got %d", result.Parts[0].Quantity)
	}
	if result.Parts[0].Label != "Part 1" {
		t.Errorf("expected auto-generated label 'Part 1', got '%s'", result.Parts[0].Label)
	}
	if result.Parts[1].Label != "Part 2" {
		t.Errorf("expected auto-generated label 'Part 2', got '%s'", result.Parts[1].Label)
	}
}

func TestImportCSVFromReader_SemicolonDelimiter(t *testing.T) {
	data := "Label;Width;Height;Quantity\nShelf;600;300;2\n"
	result := ImportCSVFromReader(strings.NewReader(data), ';')

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Parts) != 1 {
		t.Fatalf("expected 1 part, got %d", len(result.Parts))
	}
	if result.Parts[0].Label != "Shelf" {
		t.Errorf("expected label 'Shelf', got '%s'", result.Parts[0].Label)
	}
}

func TestImportCSVFromReader_ReorderedColumns(t *testing.T) {
	data := "Qty,Height,Width,Name\n2,300,600,Shelf\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Parts) != 1 {
		t.Fatalf("expected 1 part, got %d", len(result.Parts))
	}
	if result.Parts[0].Width != 600 {
		t.Errorf("expected width 600, got %f", result.Parts[0].Width)
	}
	if result.Parts[0].Height != 300 {
		t.Errorf("expected height 300, got %f", result.Parts[0].Height)
	}
	if result.Parts[0].Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", result.Parts[0].Quantity)
	}
}

func TestImportCSVFromReader_EmptyFile(t *testing.T) {
	result := ImportCSVFromReader(strings.NewReader(""), ',')

	if len(result.Errors) == 0 {
		t.Error("expected error for empty file")
	}
}

func TestImportCSVFromReader_InvalidWidth(t *testing.T) {
	data := "Label,Width,Height,Quantity\nShelf,abc,300,2\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Errors) == 0 {
		t.Error("expected error for invalid width")
	}
	if len(result.Parts) != 0 {
		t.Errorf("expected 0 parts, got %d", len(result.Parts))
	}
}

func TestImportCSVFromReader_NegativeValues(t *testing.T) {
	data := "Label,Width,Height,Quantity\nShelf,-600,300,2\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Errors) == 0 {
		t.Error("expected error for negative width")
	}
}

func TestImportCSVFromReader_ZeroQuantity(t *testing.T) {
	data := "Label,Width,Height,Quantity\nShelf,600,300,0\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Errors) == 0 {
		t.Error("expected error for zero quantity")
	}
}

func TestImportCSVFromReader_MixedValidAndInvalid(t *testing.T) {
	data := "Label,Width,Height,Quantity\nGood,600,300,2\nBad,abc,300,2\nAlsoGood,400,200,1\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Parts) != 2 {
		t.Errorf("expected 2 valid parts, got %d", len(result.Parts))
	}
	if len(result.Errors) != 1 {
		t.Errorf("expected 1 error, got %d", len(result.Errors))
	}
	if len(result.Errors) == 1 && !strings.Contains(result.Errors[0], "Line 3") {
		t.Errorf("expected error to name line 3, got: %v", result.Errors[0])
	}
}

func TestImportCSVFromReader_EmptyRows(t *testing.T) {
	data := "Label,Width,Height,Quantity\nShelf,600,300,2\n\n\nDoor,400,800,1\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Parts) != 2 {
		t.Errorf("expected 2 parts (skipping empty rows), got %d (errors: %v)", len(result.Parts), result.Errors)
	}
}

func TestImportCSVFromReader_RotationParsing(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
		warning  bool
	}{
		{"yes", true, false},
		{"Y", true, false},
		{"true", true, false},
		{"1", true, false},
		{"no", false, false},
		{"N", false, false},
		{"false", false, false},
		{"0", false, false},
		{"", true, false},
		{"sideways", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			data := "Label,Width,Height,Quantity,Rotatable\nPart,600,300,1," + tt.input + "\n"
			result := ImportCSVFromReader(strings.NewReader(data), ',')

			if len(result.Parts) != 1 {
				t.Fatalf("expected 1 part, got %d (errors: %v)", len(result.Parts), result.Errors)
			}
			if result.Parts[0].Rotatable != tt.expected {
				t.Errorf("flag %q: expected %v, got %v", tt.input, tt.expected, result.Parts[0].Rotatable)
			}
			hasWarning := false
			for _, w := range result.Warnings {
				if strings.Contains(w, "Unknown rotation flag") {
					hasWarning = true
				}
			}
			if tt.warning != hasWarning {
				t.Errorf("flag %q: warning mismatch, got %v", tt.input, result.Warnings)
			}
		})
	}
}

func TestImportCSVFromReader_MissingRequiredColumnInHeader(t *testing.T) {
	data := "Label,Width,Qty\nShelf,600,2\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Errors) == 0 {
		t.Error("expected error for missing Height column")
	}
	foundMissing := false
	for _, e := range result.Errors {
		if strings.Contains(e, "Required columns not found") {
			foundMissing = true
		}
	}
	if !foundMissing {
		t.Errorf("expected 'Required columns not found' error, got: %v", result.Errors)
	}
}

// ─── CSV File Import Tests ──────────────────────────────────

func TestImportCSV_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "parts.csv")
	content := "Label,Width,Height,Quantity\nShelf,600,300,2\nDoor,400,800,1\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	result := ImportCSV(path)
	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Parts) != 2 {
		t.Fatalf("expected 2 parts, got %d", len(result.Parts))
	}
}

func TestImportCSV_FileWithSemicolons(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "parts.csv")
	content := "Label;Width;Height;Quantity\nShelf;600;300;2\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	result := ImportCSV(path)
	if len(result.Parts) != 1 {
		t.Fatalf("expected 1 part, got %d (errors: %v)", len(result.Parts), result.Errors)
	}
	foundDelim := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "semicolon") {
			foundDelim = true
		}
	}
	if !foundDelim {
		t.Errorf("expected delimiter warning, got: %v", result.Warnings)
	}
}

func TestImportCSV_MissingFile(t *testing.T) {
	result := ImportCSV("/nonexistent/path/parts.csv")
	if len(result.Errors) == 0 {
		t.Error("expected error for missing file")
	}
}

// ─── Excel Import Tests ─────────────────────────────────────

func TestImportExcel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "parts.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"Label", "Width", "Height", "Quantity"},
		{"Shelf", 600, 300, 2},
		{"Door", 400, 800, 1},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	f.Close()

	result := ImportExcel(path)
	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Parts) != 2 {
		t.Fatalf("expected 2 parts, got %d", len(result.Parts))
	}
	if result.Parts[0].Label != "Shelf" {
		t.Errorf("expected label 'Shelf', got '%s'", result.Parts[0].Label)
	}
	if result.Parts[1].Height != 800 {
		t.Errorf("expected height 800, got %f", result.Parts[1].Height)
	}
}

func TestImportExcel_MissingFile(t *testing.T) {
	result := ImportExcel("/nonexistent/path/parts.xlsx")
	if len(result.Errors) == 0 {
		t.Error("expected error for missing file")
	}
}
