package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/javajack/sheetview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func createWorkbook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	require.NoError(t, f.SetCellValue(sheet, "A1", "Name"))
	require.NoError(t, f.SetCellValue(sheet, "B1", "Age"))
	require.NoError(t, f.SetCellValue(sheet, "A2", "Alice"))
	require.NoError(t, f.SetCellValue(sheet, "B2", 30))
	require.NoError(t, f.SetCellValue(sheet, "A3", "Bob"))
	require.NoError(t, f.SetCellValue(sheet, "B3", 41.5))

	_, err := f.NewSheet("Calc")
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue("Calc", "A1", "Total"))
	require.NoError(t, f.SetCellFormula("Calc", "A2", "SUM(Sheet1!B2:B3)"))
	require.NoError(t, f.SetCellValue("Calc", "B2", 1))

	path := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCLI_Header(t *testing.T) {
	out, err := run(t, "header", createWorkbook(t))
	require.NoError(t, err)
	assert.Equal(t, "Name,Age\n", out)
}

func TestCLI_Row(t *testing.T) {
	path := createWorkbook(t)

	out, err := run(t, "row", path, "1")
	require.NoError(t, err)
	assert.Equal(t, "Alice,30.0\n", out)

	_, err = run(t, "row", path, "9")
	assert.EqualError(t, err, "row 9 not present")

	_, err = run(t, "row", path, "x")
	assert.Error(t, err)
}

func TestCLI_Cell(t *testing.T) {
	path := createWorkbook(t)

	out, err := run(t, "cell", path, "B2")
	require.NoError(t, err)
	assert.Equal(t, "30.0\n", out)

	out, err = run(t, "cell", path, "Calc!$A$1")
	require.NoError(t, err)
	assert.Equal(t, "Total\n", out)

	out, err = run(t, "cell", path, "D2")
	require.NoError(t, err)
	assert.Equal(t, "\n", out)

	_, err = run(t, "cell", path, "A9")
	assert.EqualError(t, err, "cell Sheet1!A9 not present")

	_, err = run(t, "cell", path, "Calc!B2")
	assert.ErrorIs(t, err, sheetview.ErrUnsupportedCellKind)

	_, err = run(t, "cell", path, "A0")
	assert.ErrorContains(t, err, "invalid cell reference")
}

func TestCLI_DumpCSVWithFilter(t *testing.T) {
	out, err := run(t, "dump", createWorkbook(t), "--skip", "1", "--where", `col["Name"] == "Bob"`)
	require.NoError(t, err)
	assert.Equal(t, "Bob,41.5\n", out)
}

func TestCLI_DumpJSON(t *testing.T) {
	out, err := run(t, "dump", createWorkbook(t), "--format", "json")
	require.NoError(t, err)

	var records []map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	assert.Equal(t, []map[string]string{
		{"Name": "Alice", "Age": "30.0"},
		{"Name": "Bob", "Age": "41.5"},
	}, records)
}

func TestCLI_DumpBadFormat(t *testing.T) {
	_, err := run(t, "dump", createWorkbook(t), "--format", "xml")
	assert.ErrorContains(t, err, "invalid format")
}

func TestCLI_SheetSelection(t *testing.T) {
	path := createWorkbook(t)

	out, err := run(t, "header", path, "--sheet", "Calc")
	require.NoError(t, err)
	assert.Equal(t, "Total\n", out)

	out, err = run(t, "header", path, "--sheet-index", "1")
	require.NoError(t, err)
	assert.Equal(t, "Total\n", out)

	_, err = run(t, "header", path, "--sheet", "Nope")
	assert.ErrorContains(t, err, "sheet not found")

	_, err = run(t, "header", path, "--backend", "poi")
	assert.ErrorContains(t, err, "invalid backend")
}

func TestCLI_Info(t *testing.T) {
	out, err := run(t, "info", createWorkbook(t))
	require.NoError(t, err)
	assert.Contains(t, out, "Sheet: Sheet1\n")
	assert.Contains(t, out, "Rows: 3\n")
	assert.Contains(t, out, "  2: Bob | 41.5\n")
}

func TestCLI_Validate(t *testing.T) {
	path := createWorkbook(t)

	out, err := run(t, "validate", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = run(t, "validate", path, "--sheet", "Calc")
	assert.ErrorIs(t, err, errValidation)
	assert.Contains(t, out, "[ERROR] Calc!A2")
}

func TestCLI_CSVInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("a|b\n1|2\n"), 0o644))

	out, err := run(t, "row", path, "1", "--comma", "|")
	require.NoError(t, err)
	assert.Equal(t, "1,2\n", out)

	_, err = run(t, "row", path, "1", "--comma", "||")
	assert.ErrorContains(t, err, "invalid delimiter")
}
