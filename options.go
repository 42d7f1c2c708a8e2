package sheetview

import "go.uber.org/zap"

// Backend selects the library used to parse xlsx workbooks.
type Backend string

const (
	BackendExcelize Backend = "excelize" // github.com/xuri/excelize/v2 (default)
	BackendTealeg   Backend = "tealeg"   // github.com/tealeg/xlsx
)

// Format names the input format for OpenReader, which has no file name to inspect.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// Options holds configuration for opening a Workbook.
type Options struct {
	logger  *zap.Logger
	backend Backend
	format  Format
	comma   rune
	name    string
}

func defaultOptions() *Options {
	return &Options{
		logger:  zap.NewNop(),
		backend: BackendExcelize,
		format:  FormatXLSX,
		comma:   ',',
	}
}

// Option configures a Workbook.
type Option func(*Options)

// WithLogger sets the logger used while opening workbooks and looking up sheets.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithBackend chooses the xlsx parser (default: BackendExcelize).
func WithBackend(b Backend) Option {
	return func(o *Options) { o.backend = b }
}

// WithFormat sets the input format for OpenReader (default: FormatXLSX).
func WithFormat(f Format) Option {
	return func(o *Options) { o.format = f }
}

// WithComma sets the field delimiter for CSV input (default: ',').
func WithComma(r rune) Option {
	return func(o *Options) { o.comma = r }
}

// WithSheetName sets the sheet name reported for CSV input. Defaults to the
// file's base name for Open and "Sheet1" for OpenReader.
func WithSheetName(name string) Option {
	return func(o *Options) { o.name = name }
}
