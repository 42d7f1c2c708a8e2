package main

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/javajack/sheetview"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type globalFlags struct {
	sheet      string
	sheetIndex int
	backend    string
	comma      string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:   "sheetview",
		Short: "Read spreadsheet rows as text",
		Long: `sheetview opens an xlsx or csv file and prints one sheet's header,
rows or a summary, with every cell rendered as text.`,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&g.sheet, "sheet", "", "Sheet name (takes precedence over --sheet-index)")
	pf.IntVar(&g.sheetIndex, "sheet-index", 0, "0-based sheet index")
	pf.StringVar(&g.backend, "backend", string(sheetview.BackendExcelize), "xlsx parser: excelize or tealeg")
	pf.StringVar(&g.comma, "comma", ",", "Field delimiter for csv input")
	pf.BoolVarP(&g.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newInfoCmd(g),
		newHeaderCmd(g),
		newRowCmd(g),
		newCellCmd(g),
		newDumpCmd(g),
		newValidateCmd(g),
	)
	return root
}

// openSheet opens the workbook at path and selects the sheet named by the
// global flags. The returned func closes the workbook and flushes the logger.
func openSheet(g *globalFlags, path string) (*sheetview.SheetView, func(), error) {
	level := zapcore.WarnLevel
	if g.verbose {
		level = zapcore.DebugLevel
	}
	logger, syncLogger, err := sheetview.SetupLogger("sheetview", level, g.verbose)
	if err != nil {
		return nil, func() {}, fmt.Errorf("setup logger: %w", err)
	}

	backend := sheetview.Backend(g.backend)
	if backend != sheetview.BackendExcelize && backend != sheetview.BackendTealeg {
		syncLogger()
		return nil, func() {}, fmt.Errorf("invalid backend: %s (must be excelize or tealeg)", g.backend)
	}
	comma, size := utf8.DecodeRuneInString(g.comma)
	if size == 0 || size != len(g.comma) {
		syncLogger()
		return nil, func() {}, fmt.Errorf("invalid delimiter %q: must be a single character", g.comma)
	}

	wb, err := sheetview.Open(path,
		sheetview.WithLogger(logger),
		sheetview.WithBackend(backend),
		sheetview.WithComma(comma),
	)
	if err != nil {
		syncLogger()
		return nil, func() {}, err
	}
	cleanup := func() {
		if err := wb.Close(); err != nil {
			logger.Warn("close workbook", zap.Error(err))
		}
		syncLogger()
	}

	var view *sheetview.SheetView
	if g.sheet != "" {
		view, err = wb.Sheet(g.sheet)
	} else {
		view, err = wb.SheetAt(g.sheetIndex)
	}
	if err != nil {
		cleanup()
		return nil, func() {}, err
	}
	return view, cleanup, nil
}

func newInfoCmd(g *globalFlags) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "info FILE",
		Short: "Summarize a sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, done, err := openSheet(g, args[0])
			if err != nil {
				return err
			}
			defer done()
			_, err = io.WriteString(cmd.OutOrStdout(), sheetview.Describe(view, limit))
			return err
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "Number of data rows to show (-1 for all)")
	return cmd
}

func newHeaderCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "header FILE",
		Short: "Print the header row",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, done, err := openSheet(g, args[0])
			if err != nil {
				return err
			}
			defer done()
			return printRow(cmd.OutOrStdout(), view, 0)
		},
	}
}

func newRowCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "row FILE N",
		Short: "Print the 0-based row N",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid row number %q: %w", args[1], err)
			}
			view, done, err := openSheet(g, args[0])
			if err != nil {
				return err
			}
			defer done()
			return printRow(cmd.OutOrStdout(), view, n)
		},
	}
}

func newCellCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "cell FILE REF",
		Short: "Print one cell, e.g. B2 or 'My Sheet'!B2",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := sheetview.ParseCellRef(args[1])
			if err != nil {
				return err
			}
			flags := *g
			if ref.Sheet != "" {
				flags.sheet = ref.Sheet
			}
			view, done, err := openSheet(&flags, args[0])
			if err != nil {
				return err
			}
			defer done()

			ref.Sheet = view.Name()
			row, ok, err := view.Row(ref.Row)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("cell %s not present", ref)
			}
			// cells past the end of a present row read as blank
			var text string
			if ref.Col < len(row) {
				text = row[ref.Col]
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		},
	}
}

func printRow(w io.Writer, view *sheetview.SheetView, n int) error {
	row, ok, err := view.Row(n)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("row %d not present", n)
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(row); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

func newDumpCmd(g *globalFlags) *cobra.Command {
	var (
		format string
		where  string
		skip   int
	)
	cmd := &cobra.Command{
		Use:   "dump FILE",
		Short: "Print every row as csv or json",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "csv" && format != "json" {
				return fmt.Errorf("invalid format: %s (must be csv or json)", format)
			}
			var filter *sheetview.RowFilter
			if strings.TrimSpace(where) != "" {
				f, err := sheetview.CompileFilter(where)
				if err != nil {
					return err
				}
				filter = f
			}

			view, done, err := openSheet(g, args[0])
			if err != nil {
				return err
			}
			defer done()

			if format == "json" {
				return dumpJSON(cmd.OutOrStdout(), view, filter, skip)
			}
			return dumpCSV(cmd.OutOrStdout(), view, filter, skip)
		},
	}
	cmd.Flags().StringVar(&format, "format", "csv", "Output format: csv or json")
	cmd.Flags().StringVar(&where, "where", "", `Row filter expression, e.g. 'col["Age"] != ""'`)
	cmd.Flags().IntVar(&skip, "skip", 0, "Number of leading rows to skip")
	return cmd
}

// eachRow calls fn for every row from start on that passes filter, stopping
// at the first absent row.
func eachRow(view *sheetview.SheetView, filter *sheetview.RowFilter, start int, header []string, fn func(i int, row []string) error) error {
	for i := start; ; i++ {
		row, ok, err := view.Row(i)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if filter != nil {
			match, err := filter.Match(i, row, header)
			if err != nil {
				return err
			}
			if !match {
				continue
			}
		}
		if err := fn(i, row); err != nil {
			return err
		}
	}
}

func dumpCSV(w io.Writer, view *sheetview.SheetView, filter *sheetview.RowFilter, skip int) error {
	header, _, err := view.Header()
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	err = eachRow(view, filter, skip, header, func(_ int, row []string) error {
		return cw.Write(row)
	})
	if err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// dumpJSON writes the data rows as objects keyed by header name. Cells past
// the header's width are keyed by column letter.
func dumpJSON(w io.Writer, view *sheetview.SheetView, filter *sheetview.RowFilter, skip int) error {
	header, ok, err := view.Header()
	if err != nil {
		return err
	}
	if !ok {
		_, err := io.WriteString(w, "[]\n")
		return err
	}

	records := []map[string]string{}
	err = eachRow(view, filter, max(skip, 1), header, func(_ int, row []string) error {
		rec := make(map[string]string, len(row))
		for i, v := range row {
			key := sheetview.ColToName(i)
			if i < len(header) && header[i] != "" {
				key = header[i]
			}
			rec[key] = v
		}
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

func newValidateCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Report cells that cannot be read as text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, done, err := openSheet(g, args[0])
			if err != nil {
				return err
			}
			defer done()

			issues := sheetview.Validate(view)
			for _, issue := range issues {
				fmt.Fprintln(cmd.OutOrStdout(), issue)
			}
			if sheetview.HasErrors(issues) {
				return errValidation
			}
			return nil
		},
	}
}

var errValidation = errors.New("sheet has unreadable cells")
