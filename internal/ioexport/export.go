// Package ioexport implements lifecycle.Exporter on top of a store.Store.
// Tables are written as CSV, other values as JSON.
package ioexport

import (
	"bytes"
	"context"
	"encoding/csv"
	"log/slog"
	"path"
	"strings"

	"github.com/cheggaaa/pb/v3"
	"github.com/gnames/cbstats/pkg/lifecycle"
	"github.com/gnames/cbstats/pkg/report"
	"github.com/gnames/cbstats/pkg/store"
	jsoniter "github.com/json-iterator/go"
	"golang.org/x/sync/errgroup"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type exporter struct {
	st     store.Store
	prefix string
	jobs   int
	// quiet disables the progress bar.
	quiet bool
}

// Option configures the exporter.
type Option func(*exporter)

// OptQuiet disables the progress bar of ExportAll.
func OptQuiet(b bool) Option {
	return func(e *exporter) {
		e.quiet = b
	}
}

// New creates an Exporter that keeps artifacts under prefix in st and
// uploads at most jobs files at a time.
func New(
	st store.Store,
	prefix string,
	jobs int,
	opts ...Option,
) lifecycle.Exporter {
	if jobs < 1 {
		jobs = 1
	}
	res := &exporter{
		st:     st,
		prefix: strings.Trim(prefix, "/"),
		jobs:   jobs,
	}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Upload encodes data by the extension of name and stores it.
func (e *exporter) Upload(ctx context.Context, name string, data any) error {
	var bs []byte
	var err error

	switch ext := path.Ext(name); ext {
	case ".csv":
		bs, err = encodeCSV(name, data)
	case ".json":
		bs, err = json.MarshalIndent(data, "", "  ")
		if err != nil {
			err = EncodeError(name, err)
		}
	default:
		err = UnsupportedFileTypeError(name)
	}
	if err != nil {
		return err
	}

	if err = e.st.Put(ctx, e.key(name), bs); err != nil {
		return err
	}
	slog.Debug("Uploaded artifact", "path", e.key(name), "bytes", len(bs))
	return nil
}

// Read returns the decoded artifact. Any failure is logged and results in
// ok == false.
func (e *exporter) Read(ctx context.Context, name string) (any, bool) {
	key := e.key(name)
	bs, err := e.st.Get(ctx, key)
	if err != nil {
		slog.Error("Cannot read artifact", "path", key, "error", err)
		return nil, false
	}

	switch ext := path.Ext(name); ext {
	case ".csv":
		res, err := decodeCSV(name, bs)
		if err != nil {
			slog.Error("Cannot decode CSV", "path", key, "error", err)
			return nil, false
		}
		return res, true
	case ".json":
		var res any
		if err = json.Unmarshal(bs, &res); err != nil {
			slog.Error("Cannot decode JSON", "path", key, "error", err)
			return nil, false
		}
		return res, true
	default:
		slog.Error("Unsupported file type", "path", key)
		return nil, false
	}
}

// ExportAll uploads tables concurrently and writes the manifest last, so
// a manifest is only present when every table is stored.
func (e *exporter) ExportAll(
	ctx context.Context,
	tables []report.Table,
	m report.Manifest,
) error {
	var bar *pb.ProgressBar
	if !e.quiet {
		bar = pb.Full.Start(len(tables))
		bar.Set("prefix", "Uploading tables: ")
		bar.Set(pb.CleanOnFinish, true)
		defer bar.Finish()
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(e.jobs)
	for _, tbl := range tables {
		g.Go(func() error {
			if err := e.Upload(gCtx, tbl.Name, tbl); err != nil {
				return err
			}
			if bar != nil {
				bar.Increment()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if err := e.Upload(ctx, report.ManifestFile, m); err != nil {
		return err
	}

	slog.Info("Exported artifacts",
		"prefix", e.prefix,
		"tables", len(tables),
		"run_id", m.RunID,
	)
	return nil
}

func (e *exporter) key(name string) string {
	if e.prefix == "" {
		return name
	}
	return e.prefix + "/" + strings.TrimPrefix(name, "/")
}

func encodeCSV(name string, data any) ([]byte, error) {
	var tbl report.Table
	switch v := data.(type) {
	case report.Table:
		tbl = v
	case *report.Table:
		if v == nil {
			return nil, EncodeError(name, errNotTable)
		}
		tbl = *v
	default:
		return nil, EncodeError(name, errNotTable)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(tbl.Header); err != nil {
		return nil, EncodeError(name, err)
	}
	if err := w.WriteAll(tbl.Rows); err != nil {
		return nil, EncodeError(name, err)
	}
	return buf.Bytes(), nil
}

func decodeCSV(name string, data []byte) (report.Table, error) {
	res := report.Table{Name: path.Base(name)}
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return res, err
	}
	if len(rows) == 0 {
		return res, nil
	}
	res.Header = rows[0]
	res.Rows = rows[1:]
	return res, nil
}
