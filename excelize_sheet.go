package sheetview

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// excelizeBook reads workbooks with excelize.
type excelizeBook struct {
	file *excelize.File
}

func openExcelizeFile(path string) (*excelizeBook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %q: %w", path, err)
	}
	return &excelizeBook{file: f}, nil
}

func openExcelizeReader(r io.Reader) (*excelizeBook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook reader: %w", err)
	}
	return &excelizeBook{file: f}, nil
}

// NewExcelizeSheet loads one sheet of an already opened excelize file.
// The caller keeps ownership of f.
func NewExcelizeSheet(f *excelize.File, sheet string) (*MemorySheet, error) {
	return (&excelizeBook{file: f}).LoadSheet(sheet)
}

func (b *excelizeBook) SheetNames() []string {
	return b.file.GetSheetList()
}

// LoadSheet reads every cell of the sheet into memory. Raw cell values are
// used so numbers are not passed through their display format.
func (b *excelizeBook) LoadSheet(sheet string) (*MemorySheet, error) {
	rows, err := b.file.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read rows from sheet %q: %w", sheet, err)
	}

	cells := make([][]Cell, len(rows))
	for rowIdx, row := range rows {
		rc := make([]Cell, len(row))
		for colIdx, raw := range row {
			cellName := NewCellRef(sheet, rowIdx, colIdx).CellName()
			cell, err := b.readCell(sheet, cellName, raw)
			if err != nil {
				return nil, fmt.Errorf("read %s!%s: %w", sheet, cellName, err)
			}
			rc[colIdx] = cell
		}
		cells[rowIdx] = rc
	}
	return NewMemorySheet(sheet, cells...), nil
}

// readCell classifies one cell. Formulas win over the cached result type;
// numbers written without an explicit type attribute report CellTypeUnset.
func (b *excelizeBook) readCell(sheet, cellName, raw string) (Cell, error) {
	formula, err := b.file.GetCellFormula(sheet, cellName)
	if err != nil {
		return Cell{}, err
	}
	if formula != "" {
		return FormulaCell(formula), nil
	}

	cellType, err := b.file.GetCellType(sheet, cellName)
	if err != nil {
		return Cell{}, err
	}

	switch cellType {
	case excelize.CellTypeBool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return Cell{}, fmt.Errorf("boolean cell value %q: %w", raw, err)
		}
		return BoolCell(v), nil
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		if raw == "" {
			return BlankCell(), nil
		}
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return NumberCell(v), nil
		}
		return StringCell(raw), nil
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		if raw == "" {
			return BlankCell(), nil
		}
		return StringCell(raw), nil
	case excelize.CellTypeError:
		return ErrorCell(raw), nil
	case excelize.CellTypeDate:
		return Cell{Kind: KindDate, Text: raw}, nil
	case excelize.CellTypeFormula:
		return FormulaCell(""), nil
	default:
		return Cell{}, fmt.Errorf("unknown excelize cell type %d", cellType)
	}
}

func (b *excelizeBook) Close() error {
	return b.file.Close()
}
