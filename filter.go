package sheetview

import (
	"fmt"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// RowFilter is a compiled boolean expression evaluated against one row.
//
// The expression sees:
//
//	row    []string           the row's cell text
//	index  int                the 0-based row index
//	header []string           the header row (nil when the sheet has none)
//	col    map[string]string  header name → cell text for this row
//
// e.g. `col["Age"] != "" && index > 0` or `len(row) == len(header)`.
type RowFilter struct {
	source  string
	program *vm.Program
}

var filterCache sync.Map // expression string → *vm.Program

func filterEnv(index int, row, header []string) map[string]any {
	col := make(map[string]string, len(header))
	for i, name := range header {
		if i < len(row) {
			col[name] = row[i]
		} else {
			col[name] = ""
		}
	}
	return map[string]any{
		"row":    row,
		"index":  index,
		"header": header,
		"col":    col,
	}
}

// CompileFilter compiles a row predicate. Compiled programs are shared
// between filters with the same source.
func CompileFilter(source string) (*RowFilter, error) {
	if cached, ok := filterCache.Load(source); ok {
		return &RowFilter{source: source, program: cached.(*vm.Program)}, nil
	}
	program, err := expr.Compile(source, expr.Env(filterEnv(0, nil, nil)), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile filter %q: %w", source, err)
	}
	filterCache.Store(source, program)
	return &RowFilter{source: source, program: program}, nil
}

// String returns the filter's source expression.
func (f *RowFilter) String() string { return f.source }

// Match reports whether the row satisfies the filter.
func (f *RowFilter) Match(index int, row, header []string) (bool, error) {
	result, err := expr.Run(f.program, filterEnv(index, row, header))
	if err != nil {
		return false, fmt.Errorf("evaluate filter %q: %w", f.source, err)
	}
	b, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("filter %q evaluated to %T, expected bool", f.source, result)
	}
	return b, nil
}
