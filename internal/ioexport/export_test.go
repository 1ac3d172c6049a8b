package ioexport

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/gnames/cbstats/internal/iostore"
	"github.com/gnames/cbstats/pkg/errcode"
	"github.com/gnames/cbstats/pkg/report"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore keeps blobs in a map and can be told to fail writes.
type memStore struct {
	mu      sync.Mutex
	blobs   map[string][]byte
	failPut bool
}

func newMemStore() *memStore {
	return &memStore{blobs: make(map[string][]byte)}
}

func (m *memStore) Put(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failPut {
		return errors.New("disk full")
	}
	m.blobs[key] = data
	return nil
}

func (m *memStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	res, ok := m.blobs[key]
	if !ok {
		return nil, errors.New("not found")
	}
	return res, nil
}

func (m *memStore) Close() error { return nil }

func errCode(t *testing.T, err error) gn.ErrorCode {
	t.Helper()
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")
	return gnErr.Code
}

var titles = report.Table{
	Name:   report.TitlesFile,
	Header: []string{"time", "titulos"},
	Rows:   [][]string{{"Palmeiras", "3"}, {"São Paulo, SP", "1"}},
}

func TestUploadCSV(t *testing.T) {
	ctx := context.Background()
	st := newMemStore()
	e := New(st, "/analytics/cb/", 2)

	require.NoError(t, e.Upload(ctx, titles.Name, titles))
	data := st.blobs["analytics/cb/tb_sys_titulos.csv"]
	assert.Equal(t,
		"time,titulos\nPalmeiras,3\n\"São Paulo, SP\",1\n", string(data))

	res, ok := e.Read(ctx, titles.Name)
	require.True(t, ok)
	assert.Equal(t, titles, res)
}

func TestUploadJSON(t *testing.T) {
	ctx := context.Background()
	st := newMemStore()
	e := New(st, "", 1)

	require.NoError(t, e.Upload(ctx, "meta.json", map[string]int{"records": 3}))
	_, ok := st.blobs["meta.json"]
	assert.True(t, ok)

	res, ok := e.Read(ctx, "meta.json")
	require.True(t, ok)
	assert.Equal(t, map[string]any{"records": float64(3)}, res)
}

func TestUploadErrors(t *testing.T) {
	ctx := context.Background()
	e := New(newMemStore(), "x", 1)

	err := e.Upload(ctx, "data.parquet", titles)
	require.Error(t, err)
	assert.Equal(t, errcode.UnsupportedFileTypeError, errCode(t, err))

	err = e.Upload(ctx, "data.csv", map[string]int{"a": 1})
	require.Error(t, err)
	assert.Equal(t, errcode.EncodeError, errCode(t, err))

	err = e.Upload(ctx, "data.json", make(chan int))
	require.Error(t, err)
	assert.Equal(t, errcode.EncodeError, errCode(t, err))
}

func TestReadMissing(t *testing.T) {
	ctx := context.Background()
	st := newMemStore()
	e := New(st, "x", 1)

	res, ok := e.Read(ctx, "missing.csv")
	assert.False(t, ok)
	assert.Nil(t, res)

	st.blobs["x/bad.json"] = []byte("{")
	res, ok = e.Read(ctx, "bad.json")
	assert.False(t, ok)
	assert.Nil(t, res)

	st.blobs["x/bad.csv"] = []byte("a,b\n1\n")
	_, ok = e.Read(ctx, "bad.csv")
	assert.False(t, ok)

	st.blobs["x/data.txt"] = []byte("a")
	_, ok = e.Read(ctx, "data.txt")
	assert.False(t, ok)
}

func TestExportAll(t *testing.T) {
	ctx := context.Background()
	st, err := iostore.NewFS(filepath.Join(t.TempDir(), "store"))
	require.NoError(t, err)
	e := New(st, "analytics/cb", 3, OptQuiet(true))

	tables := []report.Table{
		titles,
		{Name: report.CountsFile, Header: []string{"time", "qtd"}},
		{Name: report.RoundCheckFile, Header: []string{"temporada", "rodada"},
			Rows: [][]string{{"2003", "46"}}},
	}
	m := report.Manifest{RunID: "run-1", Files: map[string]int{
		report.TitlesFile: 2, report.CountsFile: 0, report.RoundCheckFile: 1,
	}}
	require.NoError(t, e.ExportAll(ctx, tables, m))

	for _, v := range tables {
		res, ok := e.Read(ctx, v.Name)
		require.True(t, ok, v.Name)
		tbl := res.(report.Table)
		assert.Equal(t, v.Header, tbl.Header)
		assert.Len(t, tbl.Rows, len(v.Rows))
	}

	res, ok := e.Read(ctx, report.ManifestFile)
	require.True(t, ok)
	manifest := res.(map[string]any)
	assert.Equal(t, "run-1", manifest["run_id"])
}

func TestExportAllFails(t *testing.T) {
	st := newMemStore()
	st.failPut = true
	e := New(st, "x", 2, OptQuiet(true))

	err := e.ExportAll(context.Background(), []report.Table{titles},
		report.Manifest{RunID: "run-1"})
	require.Error(t, err)
	_, ok := st.blobs["x/"+report.ManifestFile]
	assert.False(t, ok)
}
