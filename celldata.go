package sheetview

// CellKind represents the type of data in a cell.
type CellKind int

const (
	KindBlank CellKind = iota
	KindString
	KindNumeric
	KindBoolean
	KindDate
	KindFormula
	KindError
)

// String returns a human-readable name for the CellKind.
func (k CellKind) String() string {
	switch k {
	case KindBlank:
		return "Blank"
	case KindString:
		return "String"
	case KindNumeric:
		return "Numeric"
	case KindBoolean:
		return "Boolean"
	case KindDate:
		return "Date"
	case KindFormula:
		return "Formula"
	case KindError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Cell holds a single cell as reported by a Worksheet backend.
// Only the field matching Kind is meaningful.
type Cell struct {
	Kind    CellKind
	Number  float64 // KindNumeric
	Bool    bool    // KindBoolean
	Text    string  // KindString, KindBlank, and the raw value of unsupported kinds
	Formula string  // KindFormula (without leading =)
}

// NumberCell creates a numeric cell.
func NumberCell(v float64) Cell {
	return Cell{Kind: KindNumeric, Number: v}
}

// BoolCell creates a boolean cell.
func BoolCell(v bool) Cell {
	return Cell{Kind: KindBoolean, Bool: v}
}

// StringCell creates a text cell.
func StringCell(s string) Cell {
	return Cell{Kind: KindString, Text: s}
}

// BlankCell creates an empty cell.
func BlankCell() Cell {
	return Cell{Kind: KindBlank}
}

// FormulaCell creates a formula cell.
func FormulaCell(formula string) Cell {
	return Cell{Kind: KindFormula, Formula: formula}
}

// ErrorCell creates a cell holding a spreadsheet error value such as "#DIV/0!".
func ErrorCell(code string) Cell {
	return Cell{Kind: KindError, Text: code}
}
