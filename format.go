package sheetview

import (
	"math"
	"strconv"
	"strings"
)

// CellText renders a cell as text.
//
// Numbers use the default double-to-string form of the JVM ("3.0", "1.0E7"),
// booleans render as "true"/"false", strings verbatim and blanks as "".
// Every other kind fails with ErrUnsupportedCellKind; the returned
// *UnsupportedCellKindError carries only the kind, callers fill in the position.
func CellText(c Cell) (string, error) {
	switch c.Kind {
	case KindNumeric:
		return FormatNumber(c.Number), nil
	case KindBoolean:
		return strconv.FormatBool(c.Bool), nil
	case KindString, KindBlank:
		return c.Text, nil
	case KindDate, KindFormula, KindError:
		return "", &UnsupportedCellKindError{Kind: c.Kind}
	default:
		return "", &UnsupportedCellKindError{Kind: c.Kind}
	}
}

// FormatNumber renders v the way Double.toString does: shortest round-trip
// digits, always at least one fractional digit, and scientific notation with
// an unsigned "E" exponent outside [1e-3, 1e7).
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		if math.Signbit(v) {
			return "-0.0"
		}
		return "0.0"
	}

	abs := math.Abs(v)
	if abs >= 1e-3 && abs < 1e7 {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	s := strconv.FormatFloat(v, 'e', -1, 64) // e.g. "-1.2345e-05"
	mantissa, exp, _ := strings.Cut(s, "e")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	n, _ := strconv.Atoi(exp)
	return mantissa + "E" + strconv.Itoa(n)
}
