package sheetview

import (
	"errors"
	"fmt"
)

// Severity indicates the severity of a validation issue.
type Severity int

const (
	SeverityError   Severity = iota // Row cannot be read
	SeverityWarning                 // Row reads, but its shape differs from the header
)

// ValidationIssue represents a single problem found while scanning a sheet.
type ValidationIssue struct {
	Severity Severity
	CellRef  CellRef
	Message  string
}

// String formats the issue as "[ERROR] Sheet1!A2: message" or "[WARN] ...".
func (v ValidationIssue) String() string {
	sev := "ERROR"
	if v.Severity == SeverityWarning {
		sev = "WARN"
	}
	return fmt.Sprintf("[%s] %s: %s", sev, v.CellRef, v.Message)
}

// Validate reads every row of the sheet and reports the cells that cannot
// be rendered as text (errors) and data rows whose cell count differs from
// the header's (warnings). It reads the worksheet directly so every
// unsupported cell of a row is reported, not only the first.
func Validate(s *SheetView) []ValidationIssue {
	var issues []ValidationIssue

	width := -1
	for r := 0; r < s.RowCount(); r++ {
		rowOK := true
		cells := s.ws.Cells(r)
		for c, cell := range cells {
			if _, err := CellText(cell); err != nil {
				rowOK = false
				var kindErr *UnsupportedCellKindError
				msg := err.Error()
				if errors.As(err, &kindErr) {
					msg = fmt.Sprintf("unsupported cell kind %q", kindErr.Kind)
				}
				issues = append(issues, ValidationIssue{
					Severity: SeverityError,
					CellRef:  NewCellRef(s.Name(), r, c),
					Message:  msg,
				})
			}
		}

		if r == 0 {
			if rowOK {
				width = len(cells)
			}
			continue
		}
		if width >= 0 && len(cells) != width {
			issues = append(issues, ValidationIssue{
				Severity: SeverityWarning,
				CellRef:  NewCellRef(s.Name(), r, 0),
				Message:  fmt.Sprintf("row has %d cells, header has %d", len(cells), width),
			})
		}
	}
	return issues
}

// HasErrors returns true if any issue has SeverityError.
func HasErrors(issues []ValidationIssue) bool {
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}
