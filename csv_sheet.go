package sheetview

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// csvBook is a delimited text file seen as a workbook with one sheet of
// string cells. Empty fields are blank cells.
type csvBook struct {
	sheet *MemorySheet
}

func openCSVFile(path, name string, comma rune) (*csvBook, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()
	return readCSV(f, name, comma)
}

func readCSV(r io.Reader, name string, comma rune) (*csvBook, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	rows := make([][]Cell, len(records))
	for i, rec := range records {
		row := make([]Cell, len(rec))
		for j, field := range rec {
			if field == "" {
				row[j] = BlankCell()
			} else {
				row[j] = StringCell(field)
			}
		}
		rows[i] = row
	}
	return &csvBook{sheet: NewMemorySheet(name, rows...)}, nil
}

func (b *csvBook) SheetNames() []string { return []string{b.sheet.Name()} }

func (b *csvBook) LoadSheet(name string) (*MemorySheet, error) {
	if name != b.sheet.Name() {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, name)
	}
	return b.sheet, nil
}

func (b *csvBook) Close() error { return nil }
