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

	"github.com/dustin/go-humanize"
	"github.com/gnames/cbstats/internal/iodb"
	"github.com/gnames/cbstats/internal/iopopulate"
	"github.com/gnames/cbstats/internal/ioschema"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getPopulateCmd returns the populate command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getPopulateCmd() *cobra.Command {
	var (
		pf      pipelineFlags
		migrate bool
		quiet   bool
	)

	populateCmd := &cobra.Command{
		Use:   "populate",
		Short: "Load enriched records into PostgreSQL",
		Long: `Fetch and enrich records, then load them into PostgreSQL.

Seasons present in the fetched data replace their previous rows in a
single transaction. Every load is registered in the runs table.

The schema has to exist, see 'cbstats create'. Use --migrate to update
an existing schema to the current models first.

Examples:
  cbstats populate
  cbstats populate --offline
  cbstats populate -s ./standings.json --migrate`,
		Aliases: []string{"add"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Update(pf.options(cmd))
			err := runPopulate(migrate, quiet)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	pf.register(populateCmd)
	populateCmd.Flags().BoolVarP(&migrate, "migrate", "m", false,
		"migrate schema before loading")
	populateCmd.Flags().BoolVarP(&quiet, "quiet", "q", false,
		"do not show the progress bar")

	return populateCmd
}

func runPopulate(migrate, quiet bool) error {
	ctx := context.Background()

	res, err := enrich(ctx, cfg)
	if err != nil {
		return err
	}

	op := iodb.NewPgxOperator()
	if err = op.Connect(ctx, &cfg.Database); err != nil {
		return err
	}
	defer op.Close()

	gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
		cfg.Database.User, cfg.Database.Host,
		cfg.Database.Port, cfg.Database.Database)

	if migrate {
		if err = ioschema.NewManager(op).Migrate(ctx); err != nil {
			return err
		}
	}

	p := iopopulate.New(cfg, op, iopopulate.OptQuiet(quiet))
	if err = p.Populate(ctx, res.records, res.runID); err != nil {
		return err
	}

	gn.Info("Loaded <em>%s</em> records, run <em>%s</em>",
		humanize.Comma(int64(len(res.records))), res.runID)
	return nil
}
