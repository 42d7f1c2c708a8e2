package sheetview

import (
	"fmt"
	"strings"
)

// Describe returns a human-readable summary of a sheet: its name, extent,
// header and the first maxRows rows (all rows when maxRows < 0).
// Rows that cannot be rendered are listed with their error instead of
// failing the whole description.
func Describe(s *SheetView, maxRows int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Sheet: %s\n", s.Name())
	fmt.Fprintf(&b, "Rows: %d\n", s.RowCount())

	header, ok, err := s.Header()
	switch {
	case err != nil:
		fmt.Fprintf(&b, "Columns: ?\nHeader: error: %v\n", err)
	case !ok:
		b.WriteString("Columns: 0\nHeader: <none>\n")
	default:
		fmt.Fprintf(&b, "Columns: %d\nHeader: %s\n", len(header), strings.Join(header, " | "))
	}

	n := s.RowCount()
	if maxRows >= 0 && maxRows+1 < n {
		n = maxRows + 1
	}
	for i := 1; i < n; i++ {
		row, _, err := s.Row(i)
		if err != nil {
			fmt.Fprintf(&b, "  %d: error: %v\n", i, err)
			continue
		}
		fmt.Fprintf(&b, "  %d: %s\n", i, strings.Join(row, " | "))
	}
	if n < s.RowCount() {
		fmt.Fprintf(&b, "  ... %d more rows\n", s.RowCount()-n)
	}
	return b.String()
}
