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

	"github.com/gnames/cbstats/internal/ioexport"
	"github.com/gnames/cbstats/internal/iostore"
	"github.com/gnames/cbstats/pkg/report"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/spf13/cobra"
)

// getGetCmd returns the get command.
func getGetCmd() *cobra.Command {
	var (
		sf     storeFlags
		format string
	)

	getCmd := &cobra.Command{
		Use:   "get <file>",
		Short: "Print an artifact from the blob store",
		Long: `Read one artifact written by 'cbstats run' and print it.
CSV files are printed as tables, JSON files as indented JSON.

Examples:
  cbstats get manifest.json
  cbstats get tb_sys_titulos.csv
  cbstats get tb_sys_titulos.csv -f md --store sqlite --store-path cb.sqlite`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Update(sf.options(cmd))
			err := runGet(cmd.OutOrStdout(), args[0], format)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	sf.register(getCmd)
	getCmd.Flags().StringVarP(&format, "format", "f", "table",
		"output format of CSV files: table, csv or md")

	return getCmd
}

func runGet(w io.Writer, name, format string) error {
	if !slices.Contains(formats, format) {
		return fmt.Errorf("unknown format %q, use one of %v", format, formats)
	}

	ctx := context.Background()
	st, err := iostore.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	exp := ioexport.New(st, cfg.Store.Prefix, 1)
	data, ok := exp.Read(ctx, name)
	if !ok {
		gn.Warn("Cannot read <em>%s</em>, see log for details", name)
		return fmt.Errorf("artifact %q is not available", name)
	}

	return printArtifact(w, data, format)
}

func printArtifact(w io.Writer, data any, format string) error {
	if tbl, ok := data.(report.Table); ok {
		renderTable(w, tbl, format)
		return nil
	}

	enc := gnfmt.GNjson{Pretty: true}
	out, err := enc.Encode(data)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(out))
	return nil
}
