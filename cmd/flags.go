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
	"github.com/gnames/cbstats/pkg/config"
	"github.com/spf13/cobra"
)

// pipelineFlags are shared by commands that fetch and enrich records.
type pipelineFlags struct {
	source      string
	offline     bool
	firstSeason int
	currentYear int
	jobs        int
}

// storeFlags are shared by commands that use the blob store.
type storeFlags struct {
	kind   string
	path   string
	prefix string
}

func (f *pipelineFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.source, "source", "s", "",
		"source URL or path to a local JSON file")
	cmd.Flags().BoolVarP(&f.offline, "offline", "o", false,
		"use records cached by the last successful fetch")
	cmd.Flags().IntVar(&f.firstSeason, "first-season", 0,
		"first season of validation reports")
	cmd.Flags().IntVarP(&f.currentYear, "year", "y", 0,
		"season in progress (default is the current year)")
	cmd.Flags().IntVarP(&f.jobs, "jobs", "j", 0,
		"number of concurrent uploads")
}

// options converts explicitly set flags to config options.
func (f *pipelineFlags) options(cmd *cobra.Command) []config.Option {
	var res []config.Option
	flags := cmd.Flags()
	if flags.Changed("source") {
		res = append(res, config.OptSourceURL(f.source))
	}
	if flags.Changed("offline") {
		res = append(res, config.OptSourceOffline(f.offline))
	}
	if flags.Changed("first-season") {
		res = append(res, config.OptStatsFirstSeason(f.firstSeason))
	}
	if flags.Changed("year") {
		res = append(res, config.OptStatsCurrentYear(f.currentYear))
	}
	if flags.Changed("jobs") {
		res = append(res, config.OptJobsNumber(f.jobs))
	}
	return res
}

func (f *storeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.kind, "store", "",
		"blob store kind: fs, sqlite or azure")
	cmd.Flags().StringVar(&f.path, "store-path", "",
		"directory (fs) or database file (sqlite) of the store")
	cmd.Flags().StringVarP(&f.prefix, "prefix", "p", "",
		"prefix of artifact paths in the store")
}

// options converts explicitly set flags to config options.
func (f *storeFlags) options(cmd *cobra.Command) []config.Option {
	var res []config.Option
	flags := cmd.Flags()
	if flags.Changed("store") {
		res = append(res, config.OptStoreKind(f.kind))
	}
	if flags.Changed("store-path") {
		res = append(res, config.OptStorePath(f.path))
	}
	if flags.Changed("prefix") {
		res = append(res, config.OptStorePrefix(f.prefix))
	}
	return res
}
