package sheetview

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"
	"github.com/xuri/excelize/v2"
)

// peopleSheet is the in-memory sheet used across tests.
//
//	row 0: "Name"  "Age"
//	row 1: "Alice" 30.0
func peopleSheet() *MemorySheet {
	return NewMemorySheet("People",
		[]Cell{StringCell("Name"), StringCell("Age")},
		[]Cell{StringCell("Alice"), NumberCell(30)},
	)
}

// createPeopleWorkbook writes an xlsx file with excelize.
// Layout of sheet "People":
//
//	A1: "Name"   B1: "Age"   C1: "Active"
//	A2: "Alice"  B2: 30      C2: TRUE
//	A3: "Bob"    B3: 41.5    C3: FALSE
//
// A second sheet "Totals" holds A1: =SUM(People!B2:B3) and B1: 71.5.
func createPeopleWorkbook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", "People"))
	sheet := "People"
	require.NoError(t, f.SetCellValue(sheet, "A1", "Name"))
	require.NoError(t, f.SetCellValue(sheet, "B1", "Age"))
	require.NoError(t, f.SetCellValue(sheet, "C1", "Active"))
	require.NoError(t, f.SetCellValue(sheet, "A2", "Alice"))
	require.NoError(t, f.SetCellValue(sheet, "B2", 30))
	require.NoError(t, f.SetCellBool(sheet, "C2", true))
	require.NoError(t, f.SetCellValue(sheet, "A3", "Bob"))
	require.NoError(t, f.SetCellValue(sheet, "B3", 41.5))
	require.NoError(t, f.SetCellBool(sheet, "C3", false))

	_, err := f.NewSheet("Totals")
	require.NoError(t, err)
	require.NoError(t, f.SetCellFormula("Totals", "A1", "SUM(People!B2:B3)"))
	require.NoError(t, f.SetCellValue("Totals", "B1", 71.5))

	path := filepath.Join(t.TempDir(), "people.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

// createTealegWorkbook writes the "People" layout of createPeopleWorkbook
// with tealeg/xlsx, plus a formula in A4.
func createTealegWorkbook(t *testing.T) string {
	t.Helper()
	f := xlsx.NewFile()
	sh, err := f.AddSheet("People")
	require.NoError(t, err)

	row := sh.AddRow()
	row.AddCell().SetString("Name")
	row.AddCell().SetString("Age")
	row.AddCell().SetString("Active")

	row = sh.AddRow()
	row.AddCell().SetString("Alice")
	row.AddCell().SetFloat(30)
	row.AddCell().SetBool(true)

	row = sh.AddRow()
	row.AddCell().SetString("Bob")
	row.AddCell().SetFloat(41.5)
	row.AddCell().SetBool(false)

	row = sh.AddRow()
	row.AddCell().SetFormula("B2+B3")

	path := filepath.Join(t.TempDir(), "tealeg.xlsx")
	require.NoError(t, f.Save(path))
	return path
}
