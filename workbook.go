package sheetview

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// book is a parsed workbook owned by one backend library.
type book interface {
	SheetNames() []string
	LoadSheet(name string) (*MemorySheet, error)
	Close() error
}

// Workbook is an opened spreadsheet file. Sheets are read into memory on
// first access and served as SheetViews from then on.
type Workbook struct {
	opts   *Options
	source string
	book   book

	mu     sync.Mutex
	sheets map[string]*SheetView
}

// Open opens a workbook, choosing the parser from the file extension:
// .xlsx/.xlsm/.xltx/.xltm use the configured Backend, .csv/.txt are read as
// a single delimited sheet.
func Open(path string, opts ...Option) (*Workbook, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	var (
		b    book
		err  error
		kind string
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		kind = string(o.backend)
		b, err = openXLSXFile(path, o.backend)
	case ".csv", ".txt":
		kind = "csv"
		name := o.name
		if name == "" {
			name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		}
		b, err = openCSVFile(path, name, o.comma)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, err
	}

	o.logger.Debug("opened workbook",
		zap.String("path", path),
		zap.String("backend", kind),
		zap.Strings("sheets", b.SheetNames()))
	return newWorkbook(path, b, o), nil
}

// OpenReader reads a workbook from r. The format comes from WithFormat
// since there is no file name to inspect.
func OpenReader(r io.Reader, opts ...Option) (*Workbook, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	var (
		b   book
		err error
	)
	switch o.format {
	case FormatXLSX:
		b, err = openXLSXReader(r, o.backend)
	case FormatCSV:
		name := o.name
		if name == "" {
			name = "Sheet1"
		}
		b, err = readCSV(r, name, o.comma)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, o.format)
	}
	if err != nil {
		return nil, err
	}

	o.logger.Debug("opened workbook from reader",
		zap.String("format", string(o.format)),
		zap.Strings("sheets", b.SheetNames()))
	return newWorkbook("", b, o), nil
}

func newWorkbook(source string, b book, o *Options) *Workbook {
	return &Workbook{
		opts:   o,
		source: source,
		book:   b,
		sheets: make(map[string]*SheetView),
	}
}

func openXLSXFile(path string, backend Backend) (book, error) {
	switch backend {
	case BackendExcelize:
		return openExcelizeFile(path)
	case BackendTealeg:
		return openTealegFile(path)
	default:
		return nil, fmt.Errorf("unknown backend %q", backend)
	}
}

func openXLSXReader(r io.Reader, backend Backend) (book, error) {
	switch backend {
	case BackendExcelize:
		return openExcelizeReader(r)
	case BackendTealeg:
		return openTealegReader(r)
	default:
		return nil, fmt.Errorf("unknown backend %q", backend)
	}
}

// Source returns the path the workbook was opened from, empty for readers.
func (w *Workbook) Source() string { return w.source }

// SheetNames returns the sheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	return w.book.SheetNames()
}

// Sheet returns a view of the named sheet.
func (w *Workbook) Sheet(name string) (*SheetView, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if v, ok := w.sheets[name]; ok {
		return v, nil
	}
	if !slices.Contains(w.book.SheetNames(), name) {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, name)
	}

	ws, err := w.book.LoadSheet(name)
	if err != nil {
		return nil, fmt.Errorf("load sheet %q: %w", name, err)
	}
	v := New(ws)
	w.sheets[name] = v
	w.opts.logger.Debug("loaded sheet", zap.String("sheet", name), zap.Int("rows", v.RowCount()))
	return v, nil
}

// SheetAt returns a view of the sheet at the 0-based position.
func (w *Workbook) SheetAt(index int) (*SheetView, error) {
	names := w.book.SheetNames()
	if index < 0 || index >= len(names) {
		return nil, fmt.Errorf("%w: index %d out of range [0,%d)", ErrSheetNotFound, index, len(names))
	}
	return w.Sheet(names[index])
}

// Close releases the underlying workbook. Views already handed out keep
// working since their cells are held in memory.
func (w *Workbook) Close() error {
	return w.book.Close()
}
