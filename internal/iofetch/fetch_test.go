package iofetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/cbstats/internal/iofs"
	"github.com/gnames/cbstats/pkg/config"
	"github.com/gnames/cbstats/pkg/errcode"
	"github.com/gnames/cbstats/pkg/season"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const payload = `[
  {"temporada": 2022, "rodada": 1, "time": " Palmeiras ", "posicao": 1,
   "pontos": 3, "gols": 2},
  {"temporada": 2022, "rodada": 1, "time": "Santos", "posicao": 2,
   "pontos": 0.0, "gols": 1.0}
]`

func testConfig(t *testing.T, src string) *config.Config {
	t.Helper()
	home := t.TempDir()
	require.NoError(t, iofs.EnsureDirs(home))
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptHomeDir(home),
		config.OptSourceURL(src),
		config.OptSourceTimeout(5),
	})
	return cfg
}

func errCode(t *testing.T, err error) gn.ErrorCode {
	t.Helper()
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")
	return gnErr.Code
}

func TestFetchHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(payload))
		}))
	defer srv.Close()

	cfg := testConfig(t, srv.URL)
	recs, err := New(cfg).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []season.Record{
		{Season: 2022, Round: 1, Team: "Palmeiras", Standing: 1, Points: 3, Goals: 2},
		{Season: 2022, Round: 1, Team: "Santos", Standing: 2, Points: 0, Goals: 1},
	}, recs)

	path := filepath.Join(config.CacheDir(cfg.HomeDir), CacheFile)
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestFetchOffline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(payload))
		}))

	cfg := testConfig(t, srv.URL)
	online, err := New(cfg).Fetch(context.Background())
	require.NoError(t, err)
	srv.Close()

	cfg.Update([]config.Option{config.OptSourceOffline(true)})
	offline, err := New(cfg).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, online, offline)
}

func TestFetchOfflineNoCache(t *testing.T) {
	cfg := testConfig(t, "http://localhost:1")
	cfg.Update([]config.Option{config.OptSourceOffline(true)})
	_, err := New(cfg).Fetch(context.Background())
	require.Error(t, err)
	assert.Equal(t, errcode.FetchCacheError, errCode(t, err))
}

func TestFetchFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(payload), 0644))

	recs, err := New(testConfig(t, path)).Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, recs, 2)
}

func TestFetchErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		code   gn.ErrorCode
	}{
		{"status", http.StatusInternalServerError, "", errcode.FetchStatusError},
		{"decode", http.StatusOK, `{"temporada": 2022}`, errcode.FetchDecodeError},
		{"empty", http.StatusOK, `[]`, errcode.FetchEmptyError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(
				func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(tt.status)
					_, _ = w.Write([]byte(tt.body))
				}))
			defer srv.Close()

			_, err := New(testConfig(t, srv.URL)).Fetch(context.Background())
			require.Error(t, err)
			assert.Equal(t, tt.code, errCode(t, err))
		})
	}
}

func TestFetchMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")
	_, err := New(testConfig(t, path)).Fetch(context.Background())
	require.Error(t, err)
	assert.Equal(t, errcode.FetchRequestError, errCode(t, err))
}

func TestFetchCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(payload))
		}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(testConfig(t, srv.URL)).Fetch(ctx)
	require.Error(t, err)
	assert.Equal(t, errcode.FetchRequestError, errCode(t, err))
}

func TestIsURL(t *testing.T) {
	assert.True(t, isURL("https://example.org/api"))
	assert.True(t, isURL("http://localhost:8080"))
	assert.False(t, isURL("/tmp/data.json"))
	assert.False(t, isURL("data.json"))
	assert.False(t, isURL("ftp://example.org/data.json"))
}
