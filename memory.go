package sheetview

// MemorySheet is a Worksheet backed by cells already held in memory.
// Every file backend loads into one.
type MemorySheet struct {
	name string
	rows [][]Cell
}

// NewMemorySheet creates a worksheet from rows of cells. Trailing rows
// without cells are dropped so LastRowIndex reports the last populated row.
func NewMemorySheet(name string, rows ...[]Cell) *MemorySheet {
	last := len(rows) - 1
	for last >= 0 && len(rows[last]) == 0 {
		last--
	}
	return &MemorySheet{name: name, rows: rows[:last+1]}
}

// Name returns the sheet name.
func (m *MemorySheet) Name() string { return m.name }

// LastRowIndex returns the index of the last populated row, -1 if none.
func (m *MemorySheet) LastRowIndex() int { return len(m.rows) - 1 }

// Cells returns the cells of row, or nil outside the sheet.
func (m *MemorySheet) Cells(row int) []Cell {
	if row < 0 || row >= len(m.rows) {
		return nil
	}
	return m.rows[row]
}
