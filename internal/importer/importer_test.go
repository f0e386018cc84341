package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/StairMason/internal/model"
)

// ─── DetectCSVDelimiter Tests ──────────────────────────────

func TestDetectCSVDelimiter_Comma(t *testing.T) {
	data := []byte("Name,Kind,Height,Width,Length\nHollow block,block,23.8,17.5,49.8\n")
	got := DetectCSVDelimiter(data)
	if got != ',' {
		t.Errorf("expected comma delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Semicolon(t *testing.T) {
	data := []byte("Name;Kind;Height;Width;Length\nHollow block;block;23.8;17.5;49.8\n")
	got := DetectCSVDelimiter(data)
	if got != ';' {
		t.Errorf("expected semicolon delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Tab(t *testing.T) {
	data := []byte("Name\tKind\tHeight\tWidth\tLength\nHollow block\tblock\t23.8\t17.5\t49.8\n")
	got := DetectCSVDelimiter(data)
	if got != '\t' {
		t.Errorf("expected tab delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Pipe(t *testing.T) {
	data := []byte("Name|Kind|Height|Width|Length\nHollow block|block|23.8|17.5|49.8\n")
	got := DetectCSVDelimiter(data)
	if got != '|' {
		t.Errorf("expected pipe delimiter, got %q", got)
	}
}

// ─── DetectColumns Tests ───────────────────────────────────

func TestDetectColumns_StandardHeaders(t *testing.T) {
	row := []string{"Name", "Kind", "Height", "Width", "Length"}
	mapping, isHeader := DetectColumns(row)

	if !isHeader {
		t.Error("expected header to be detected")
	}
	if mapping.Name != 0 {
		t.Errorf("expected Name at 0, got %d", mapping.Name)
	}
	if mapping.Kind != 1 {
		t.Errorf("expected Kind at 1, got %d", mapping.Kind)
	}
	if mapping.Height != 2 {
		t.Errorf("expected Height at 2, got %d", mapping.Height)
	}
	if mapping.Width != 3 {
		t.Errorf("expected Width at 3, got %d", mapping.Width)
	}
	if mapping.Length != 4 {
		t.Errorf("expected Length at 4, got %d", mapping.Length)
	}
}

func TestDetectColumns_Aliases(t *testing.T) {
	row := []string{"material", "type", "course height", "w", "len"}
	mapping, isHeader := DetectColumns(row)

	if !isHeader {
		t.Error("expected header to be detected")
	}
	if mapping.Name != 0 || mapping.Kind != 1 || mapping.Height != 2 || mapping.Width != 3 || mapping.Length != 4 {
		t.Errorf("aliases not mapped: %+v", mapping)
	}
}

func TestDetectColumns_NoHeader(t *testing.T) {
	row := []string{"Hollow block", "block", "23.8", "17.5", "49.8"}
	mapping, isHeader := DetectColumns(row)

	if isHeader {
		t.Error("expected no header for data row")
	}
	// Positional fallback
	if mapping.Name != 0 || mapping.Kind != 1 || mapping.Height != 2 {
		t.Errorf("expected positional mapping, got %+v", mapping)
	}
}

func TestDetectColumns_ShuffledHeader(t *testing.T) {
	row := []string{"Width", "Length", "Name", "Height"}
	mapping, isHeader := DetectColumns(row)

	if !isHeader {
		t.Error("expected header to be detected")
	}
	if mapping.Width != 0 || mapping.Length != 1 || mapping.Name != 2 || mapping.Height != 3 {
		t.Errorf("shuffled header not mapped: %+v", mapping)
	}
	if mapping.Kind != -1 {
		t.Errorf("expected Kind unmapped, got %d", mapping.Kind)
	}
}

// ─── CSV Import Tests ──────────────────────────────────────

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "units.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestImportCSV_WithHeader(t *testing.T) {
	path := writeTempCSV(t, "Name,Kind,Height,Width,Length\nHollow block 30,block,23.8,30,49.8\nField brick,brick,6.5,11.5,24\n")

	result := ImportCSV(path)
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Materials) != 2 {
		t.Fatalf("expected 2 materials, got %d", len(result.Materials))
	}

	block := result.Materials[0]
	if block.Name != "Hollow block 30" || block.Kind != model.KindBlock {
		t.Errorf("block not parsed: %+v", block)
	}
	if block.CourseHeight != 23.8 || block.Width != 30 || block.Length != 49.8 {
		t.Errorf("block dimensions not parsed: %+v", block)
	}

	brick := result.Materials[1]
	if brick.Kind != model.KindBrick {
		t.Errorf("expected brick kind, got %s", brick.Kind)
	}
	if brick.ID == "" {
		t.Error("imported unit should get a generated ID")
	}
}

func TestImportCSV_SemicolonDelimited(t *testing.T) {
	path := writeTempCSV(t, "Name;Height;Width;Length\nAerated block;19.9;20;59.9\n")

	result := ImportCSV(path)
	if len(result.Materials) != 1 {
		t.Fatalf("expected 1 material, got %d (errors: %v)", len(result.Materials), result.Errors)
	}
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "semicolon") {
			found = true
		}
	}
	if !found {
		t.Error("expected a delimiter warning")
	}
}

func TestImportCSV_MissingName(t *testing.T) {
	path := writeTempCSV(t, "Name,Height,Width,Length\n,19.9,20,59.9\n")

	result := ImportCSV(path)
	if len(result.Materials) != 1 {
		t.Fatalf("expected 1 material, got %d", len(result.Materials))
	}
	if result.Materials[0].Name != "Unit 1" {
		t.Errorf("expected placeholder name, got %q", result.Materials[0].Name)
	}
}

func TestImportCSV_InvalidRowsCollectErrors(t *testing.T) {
	path := writeTempCSV(t, "Name,Height,Width,Length\nGood,19.9,20,59.9\nBad,,20,59.9\nWorse,19.9,-3,59.9\n")

	result := ImportCSV(path)
	if len(result.Materials) != 1 {
		t.Errorf("expected 1 good material, got %d", len(result.Materials))
	}
	if len(result.Errors) != 2 {
		t.Errorf("expected 2 errors, got %v", result.Errors)
	}
}

func TestImportCSV_UnknownKindWarns(t *testing.T) {
	path := writeTempCSV(t, "Name,Kind,Height,Width,Length\nOdd,pebble,19.9,20,59.9\n")

	result := ImportCSV(path)
	if len(result.Materials) != 1 {
		t.Fatalf("expected 1 material, got %d", len(result.Materials))
	}
	if result.Materials[0].Kind != model.KindBlock {
		t.Errorf("expected block fallback, got %s", result.Materials[0].Kind)
	}
	warned := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "pebble") {
			warned = true
		}
	}
	if !warned {
		t.Errorf("expected kind warning, got %v", result.Warnings)
	}
}

func TestImportCSV_HeaderMissingRequiredColumn(t *testing.T) {
	path := writeTempCSV(t, "Name,Height,Width\nBlock,19.9,20\n")

	result := ImportCSV(path)
	if len(result.Errors) == 0 {
		t.Fatal("expected error for missing Length column")
	}
	if !strings.Contains(result.Errors[0], "Length") {
		t.Errorf("expected the missing column to be named, got %q", result.Errors[0])
	}
}

func TestImportCSV_EmptyFile(t *testing.T) {
	path := writeTempCSV(t, "")

	result := ImportCSV(path)
	if len(result.Errors) == 0 {
		t.Error("expected error for empty file")
	}
}

func TestImportCSVFromReader_NoHeaderPositional(t *testing.T) {
	data := "Hollow block,block,23.8,17.5,49.8\nAerated block,block,19.9,20,59.9\n"

	result := ImportCSVFromReader(strings.NewReader(data), ',')
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Materials) != 2 {
		t.Fatalf("expected 2 materials, got %d", len(result.Materials))
	}
	if result.Materials[1].Width != 20 {
		t.Errorf("positional mapping wrong: %+v", result.Materials[1])
	}
}

func TestImportCSV_SkipsEmptyRows(t *testing.T) {
	path := writeTempCSV(t, "Name,Height,Width,Length\nBlock,19.9,20,59.9\n,,,\n\n")

	result := ImportCSV(path)
	if len(result.Materials) != 1 {
		t.Errorf("expected 1 material, got %d", len(result.Materials))
	}
	if len(result.Errors) != 0 {
		t.Errorf("empty rows should not error: %v", result.Errors)
	}
}

// ─── Excel Import Tests ────────────────────────────────────

func writeTempExcel(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatal(err)
		}
	}

	path := filepath.Join(t.TempDir(), "units.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestImportExcel_WithHeader(t *testing.T) {
	path := writeTempExcel(t, [][]interface{}{
		{"Name", "Kind", "Height", "Width", "Length"},
		{"Hollow block 30", "block", 23.8, 30, 49.8},
		{"Field brick", "brick", 6.5, 11.5, 24},
	})

	result := ImportExcel(path)
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Materials) != 2 {
		t.Fatalf("expected 2 materials, got %d", len(result.Materials))
	}
	if result.Materials[0].Width != 30 {
		t.Errorf("dimensions not parsed: %+v", result.Materials[0])
	}
	if result.Materials[1].Kind != model.KindBrick {
		t.Errorf("expected brick kind, got %s", result.Materials[1].Kind)
	}
}

func TestImportExcel_MissingFile(t *testing.T) {
	result := ImportExcel(filepath.Join(t.TempDir(), "nope.xlsx"))
	if len(result.Errors) == 0 {
		t.Error("expected error for missing file")
	}
}
