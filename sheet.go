// Package sheetview exposes one worksheet of a parsed spreadsheet workbook
// through a narrow, row-oriented read interface with cell values rendered as text.
package sheetview

import "fmt"

// Worksheet is the capability a spreadsheet backend provides for one sheet.
// Implementations must not change while a SheetView reads from them.
type Worksheet interface {
	// Name returns the sheet's display name.
	Name() string
	// LastRowIndex returns the 0-based index of the last populated row, or -1
	// when the sheet has no rows.
	LastRowIndex() int
	// Cells returns the defined cells of a row in native order. Rows within
	// the sheet's extent that hold no cells return an empty slice.
	Cells(row int) []Cell
}

// SheetView is a read-only projection of a Worksheet into rows of text.
// It holds no state of its own; every call reads through the worksheet.
type SheetView struct {
	ws Worksheet
}

// New wraps ws. The view must not outlive the workbook that owns ws.
func New(ws Worksheet) *SheetView {
	return &SheetView{ws: ws}
}

// Name returns the worksheet's display name.
func (s *SheetView) Name() string {
	return s.ws.Name()
}

// RowCount returns the number of rows up to and including the last populated one.
func (s *SheetView) RowCount() int {
	return s.ws.LastRowIndex() + 1
}

// ColumnCount returns the length of the header row, or 0 for an empty sheet.
func (s *SheetView) ColumnCount() (int, error) {
	header, ok, err := s.Header()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}
	return len(header), nil
}

// Header returns row 0.
func (s *SheetView) Header() ([]string, bool, error) {
	return s.Row(0)
}

// Row returns the text of every cell in the given 0-based row.
//
// ok is false when rowNumber is past the last populated row; a row inside
// the sheet with no cells is returned as an empty, present row. A cell that
// cannot be rendered as text fails the whole row with an
// *UnsupportedCellKindError.
func (s *SheetView) Row(rowNumber int) (row []string, ok bool, err error) {
	if rowNumber < 0 {
		return nil, false, fmt.Errorf("%w: %d", ErrInvalidRowIndex, rowNumber)
	}
	if rowNumber > s.ws.LastRowIndex() {
		return nil, false, nil
	}

	cells := s.ws.Cells(rowNumber)
	row = make([]string, 0, len(cells))
	for col, cell := range cells {
		text, err := CellText(cell)
		if err != nil {
			return nil, false, &UnsupportedCellKindError{
				Sheet: s.ws.Name(),
				Row:   rowNumber,
				Col:   col,
				Kind:  cell.Kind,
			}
		}
		row = append(row, text)
	}
	return row, true, nil
}
