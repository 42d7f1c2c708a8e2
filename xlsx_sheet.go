package sheetview

import (
	"fmt"
	"io"
	"strconv"

	"github.com/tealeg/xlsx"
)

// tealegBook reads workbooks with tealeg/xlsx, which decodes the whole file up front.
type tealegBook struct {
	file *xlsx.File
}

func openTealegFile(path string) (*tealegBook, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %q: %w", path, err)
	}
	return &tealegBook{file: f}, nil
}

func openTealegReader(r io.Reader) (*tealegBook, error) {
	bs, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read workbook: %w", err)
	}
	f, err := xlsx.OpenBinary(bs)
	if err != nil {
		return nil, fmt.Errorf("open workbook reader: %w", err)
	}
	return &tealegBook{file: f}, nil
}

func (b *tealegBook) SheetNames() []string {
	names := make([]string, 0, len(b.file.Sheets))
	for _, sh := range b.file.Sheets {
		names = append(names, sh.Name)
	}
	return names
}

func (b *tealegBook) LoadSheet(name string) (*MemorySheet, error) {
	sh, ok := b.file.Sheet[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, name)
	}

	cells := make([][]Cell, len(sh.Rows))
	for rowIdx, row := range sh.Rows {
		if row == nil {
			cells[rowIdx] = []Cell{}
			continue
		}
		rc := make([]Cell, len(row.Cells))
		for colIdx, c := range row.Cells {
			cell, err := tealegCell(c)
			if err != nil {
				return nil, fmt.Errorf("read %s: %w", NewCellRef(name, rowIdx, colIdx), err)
			}
			rc[colIdx] = cell
		}
		cells[rowIdx] = rc
	}
	return NewMemorySheet(name, cells...), nil
}

func tealegCell(c *xlsx.Cell) (Cell, error) {
	if c == nil {
		return BlankCell(), nil
	}
	if f := c.Formula(); f != "" {
		return FormulaCell(f), nil
	}

	switch c.Type() {
	case xlsx.CellTypeNumeric:
		if c.Value == "" {
			return BlankCell(), nil
		}
		v, err := c.Float()
		if err != nil {
			return Cell{}, fmt.Errorf("numeric cell value %q: %w", c.Value, err)
		}
		return NumberCell(v), nil
	case xlsx.CellTypeBool:
		return BoolCell(c.Bool()), nil
	case xlsx.CellTypeString, xlsx.CellTypeInline:
		if c.Value == "" {
			return BlankCell(), nil
		}
		return StringCell(c.Value), nil
	case xlsx.CellTypeError:
		return ErrorCell(c.Value), nil
	case xlsx.CellTypeDate:
		return Cell{Kind: KindDate, Text: c.Value}, nil
	default:
		// general cells carry no type; infer it from the stored value
		if c.Value == "" {
			return BlankCell(), nil
		}
		if v, err := strconv.ParseFloat(c.Value, 64); err == nil {
			return NumberCell(v), nil
		}
		return StringCell(c.Value), nil
	}
}

// tealeg/xlsx holds no open handles once parsed.
func (b *tealegBook) Close() error { return nil }
