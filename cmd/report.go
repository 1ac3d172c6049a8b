/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/gnames/cbstats/pkg/report"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

var formats = []string{"table", "csv", "md"}

// getReportCmd returns the report command.
func getReportCmd() *cobra.Command {
	var (
		pf     pipelineFlags
		format string
		names  []string
	)

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Print season reports to the terminal",
		Long: `Fetch and enrich records, then print reports without writing
anything to the store.

Reports can be selected by file name or by a short name:
  full, final, rounds, teams, counts, champions, grouped, titles

Examples:
  cbstats report
  cbstats report -t rounds -t teams
  cbstats report -t titles -f md
  cbstats report --offline -f csv -t tb_sys_grouped.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Update(pf.options(cmd))
			err := runReport(cmd.OutOrStdout(), format, names)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	pf.register(reportCmd)
	reportCmd.Flags().StringVarP(&format, "format", "f", "table",
		"output format: table, csv or md")
	reportCmd.Flags().StringSliceVarP(&names, "table", "t",
		[]string{"champions", "titles"}, "reports to print")

	return reportCmd
}

func runReport(w io.Writer, format string, names []string) error {
	if !slices.Contains(formats, format) {
		return fmt.Errorf("unknown format %q, use one of %v", format, formats)
	}

	res, err := enrich(context.Background(), cfg)
	if err != nil {
		return err
	}

	return printTables(w, res.tables, names, format)
}

func printTables(
	w io.Writer,
	tables []report.Table,
	names []string,
	format string,
) error {
	for _, name := range names {
		tbl, ok := tableByName(tables, name)
		if !ok {
			return fmt.Errorf("unknown report %q", name)
		}
		renderTable(w, tbl, format)
		fmt.Fprintln(w)
	}
	return nil
}
