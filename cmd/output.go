package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/go-gota/gota/dataframe"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/tealeg/xlsx/v2"
)

// addOutputFlags registers the rendering flags shared by the tabular
// commands.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().String("format", "table", "output format (table, csv, json, xlsx)")
	cmd.Flags().StringP("output", "o", "", "write to file instead of stdout")
}

// outputFlags reads the values registered by addOutputFlags.
func outputFlags(cmd *cobra.Command) (format, output string) {
	format, _ = cmd.Flags().GetString("format")
	output, _ = cmd.Flags().GetString("output")
	return format, output
}

// renderDataFrame writes df to the given path, or to stdout when the path
// is empty.
func renderDataFrame(df dataframe.DataFrame, format, output string) error {
	if output == "" {
		if strings.EqualFold(format, "xlsx") {
			return eris.New("output: xlsx format requires --output FILE")
		}
		return renderTo(os.Stdout, df, format)
	}

	f, err := os.Create(output)
	if err != nil {
		return eris.Wrapf(err, "output: create %s", output)
	}
	defer f.Close() //nolint:errcheck

	if err := renderTo(f, df, format); err != nil {
		return err
	}
	return f.Close()
}

// renderTo writes df to w in the requested format.
func renderTo(w io.Writer, df dataframe.DataFrame, format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "table":
		return writeTable(w, df)
	case "csv":
		if err := df.WriteCSV(w); err != nil {
			return eris.Wrap(err, "output: write csv")
		}
		return nil
	case "json":
		if err := df.WriteJSON(w); err != nil {
			return eris.Wrap(err, "output: write json")
		}
		return nil
	case "xlsx":
		return writeXLSX(w, df)
	default:
		return eris.Errorf("output: unknown format %q (valid: table, csv, json, xlsx)", format)
	}
}

// newTabWriter returns the tab writer every tabular listing uses.
func newTabWriter(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
}

// writeTable renders df as an aligned text table. The first record row is
// the column names.
func writeTable(w io.Writer, df dataframe.DataFrame) error {
	tw := newTabWriter(w)
	for i, rec := range df.Records() {
		_, _ = fmt.Fprintln(tw, strings.Join(rec, "\t"))
		if i == 0 {
			seps := make([]string, len(rec))
			for j, name := range rec {
				seps[j] = strings.Repeat("-", len(name))
			}
			_, _ = fmt.Fprintln(tw, strings.Join(seps, "\t"))
		}
	}
	return tw.Flush()
}

// writeXLSX renders df as a single-sheet workbook.
func writeXLSX(w io.Writer, df dataframe.DataFrame) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("dados")
	if err != nil {
		return eris.Wrap(err, "output: add sheet")
	}

	for _, rec := range df.Records() {
		row := sheet.AddRow()
		for _, val := range rec {
			cell := row.AddCell()
			cell.Value = val
		}
	}

	if err := file.Write(w); err != nil {
		return eris.Wrap(err, "output: write xlsx")
	}
	return nil
}
