package sheetview

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// CellRef identifies a cell by sheet and 0-based coordinates.
type CellRef struct {
	Sheet string // empty when the reference names no sheet
	Row   int
	Col   int
}

// NewCellRef creates a CellRef from 0-based coordinates.
func NewCellRef(sheet string, row, col int) CellRef {
	return CellRef{Sheet: sheet, Row: row, Col: col}
}

// ParseCellRef parses an A1-style reference such as "B5", "$B$5",
// "People!C2" or "'My Sheet'!AA10".
func ParseCellRef(s string) (CellRef, error) {
	s = strings.TrimSpace(s)
	var sheet string
	if i := strings.LastIndex(s, "!"); i >= 0 {
		sheet = strings.Trim(s[:i], "'")
		s = s[i+1:]
	}

	col, row, err := excelize.CellNameToCoordinates(strings.ReplaceAll(s, "$", ""))
	if err != nil {
		return CellRef{}, fmt.Errorf("invalid cell reference %q: %w", s, err)
	}
	if col < 1 || row < 1 {
		return CellRef{}, fmt.Errorf("invalid cell reference %q", s)
	}
	return CellRef{Sheet: sheet, Row: row - 1, Col: col - 1}, nil
}

// String formats the reference as "Sheet1!A1", or "A1" without a sheet.
func (c CellRef) String() string {
	if c.Sheet != "" {
		return c.Sheet + "!" + c.CellName()
	}
	return c.CellName()
}

// CellName returns the A1 name without the sheet.
func (c CellRef) CellName() string {
	return ColToName(c.Col) + strconv.Itoa(c.Row+1)
}

// ColToName returns the column letters for a 0-based column index.
func ColToName(col int) string {
	name, err := excelize.ColumnNumberToName(col + 1)
	if err != nil {
		return "#" + strconv.Itoa(col)
	}
	return name
}
