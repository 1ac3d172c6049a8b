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
	"time"

	"github.com/gnames/cbstats/internal/iodb"
	"github.com/gnames/cbstats/internal/ioexport"
	"github.com/gnames/cbstats/internal/iopopulate"
	"github.com/gnames/cbstats/internal/iostore"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/spf13/cobra"
)

// getRunCmd returns the run command.
func getRunCmd() *cobra.Command {
	var (
		pf     pipelineFlags
		sf     storeFlags
		withDB bool
		quiet  bool
	)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Fetch, enrich and export season reports",
		Long: `Run the whole pipeline.

This command:
  1. Fetches per-round standings from the source
  2. Adds the final round, champion and relegation history columns
  3. Builds the enriched table, validation reports and statistics
  4. Writes them as CSV files with a manifest.json to the blob store
  5. Optionally loads the enriched table into PostgreSQL (--db)

A failure in any step aborts the run before anything is published.

Examples:
  cbstats run
  cbstats run --offline --store sqlite --store-path cb.sqlite
  cbstats run -s ./standings.json -y 2024
  cbstats run --db`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Update(pf.options(cmd))
			cfg.Update(sf.options(cmd))
			err := runRun(withDB, quiet)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	pf.register(runCmd)
	sf.register(runCmd)
	runCmd.Flags().BoolVar(&withDB, "db", false,
		"also load enriched records into PostgreSQL")
	runCmd.Flags().BoolVarP(&quiet, "quiet", "q", false,
		"do not show progress bars")

	return runCmd
}

func runRun(withDB, quiet bool) error {
	ctx := context.Background()
	startTime := time.Now()

	res, err := enrich(ctx, cfg)
	if err != nil {
		return err
	}

	st, err := iostore.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	exp := ioexport.New(
		st, cfg.Store.Prefix, cfg.JobsNumber, ioexport.OptQuiet(quiet),
	)
	if err = exp.ExportAll(ctx, res.tables, res.manifest); err != nil {
		return err
	}
	gn.Info("Exported %d files to <em>%s</em> store under <em>%s</em>",
		len(res.tables)+1, cfg.Store.Kind, cfg.Store.Prefix)

	if withDB {
		op := iodb.NewPgxOperator()
		if err = op.Connect(ctx, &cfg.Database); err != nil {
			return err
		}
		defer op.Close()

		p := iopopulate.New(cfg, op, iopopulate.OptQuiet(quiet))
		if err = p.Populate(ctx, res.records, res.runID); err != nil {
			return err
		}
		gn.Info("Loaded records into <em>%s</em> database",
			cfg.Database.Database)
	}

	gn.Info("Run <em>%s</em> finished in %s", res.runID,
		gnfmt.TimeString(time.Since(startTime).Seconds()))
	return nil
}
