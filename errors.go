package sheetview

import (
	"errors"
	"fmt"
)

// ErrUnsupportedCellKind is matched by every *UnsupportedCellKindError.
var ErrUnsupportedCellKind = errors.New("unsupported cell kind")

// ErrInvalidRowIndex indicates a negative row index.
var ErrInvalidRowIndex = errors.New("invalid row index")

// ErrSheetNotFound indicates the workbook has no sheet with the requested name or index.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnsupportedFormat indicates the input is neither a workbook nor a delimited text file.
var ErrUnsupportedFormat = errors.New("unsupported format")

// UnsupportedCellKindError reports a cell whose kind cannot be rendered as text.
type UnsupportedCellKindError struct {
	Sheet string
	Row   int // 0-based
	Col   int // 0-based position within the row's cells
	Kind  CellKind
}

func (e *UnsupportedCellKindError) Error() string {
	ref := NewCellRef(e.Sheet, e.Row, e.Col)
	return fmt.Sprintf("cannot handle cells of kind %q at %s", e.Kind, ref)
}

// Is reports whether target is ErrUnsupportedCellKind.
func (e *UnsupportedCellKindError) Is(target error) bool {
	return target == ErrUnsupportedCellKind
}
