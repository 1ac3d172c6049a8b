// Package iofetch implements lifecycle.Fetcher. It downloads per-round
// standings from an HTTP endpoint or reads them from a local JSON file.
// A gob copy of the last successful fetch is kept in the cache directory
// and can be used instead of the source in offline mode.
package iofetch

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/cbstats/pkg/config"
	"github.com/gnames/cbstats/pkg/lifecycle"
	"github.com/gnames/cbstats/pkg/season"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnlib"
	jsoniter "github.com/json-iterator/go"
)

// CacheFile is the name of the cached dataset in the cache directory.
const CacheFile = "records.gob"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// rawRecord accepts numbers with or without a fractional part.
type rawRecord struct {
	Season   float64 `json:"temporada"`
	Round    float64 `json:"rodada"`
	Team     string  `json:"time"`
	Standing float64 `json:"posicao"`
	Points   float64 `json:"pontos"`
	Goals    float64 `json:"gols"`
}

type fetcher struct {
	cfg    *config.Config
	client *http.Client
}

// New creates a Fetcher for the source given in cfg.
func New(cfg *config.Config) lifecycle.Fetcher {
	return &fetcher{
		cfg: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.Source.Timeout) * time.Second,
		},
	}
}

// Fetch reads the dataset from the source, or from the cache in offline
// mode. Only one attempt is made.
func (f *fetcher) Fetch(ctx context.Context) ([]season.Record, error) {
	if f.cfg.Source.Offline {
		return f.readCache()
	}

	startTime := time.Now()
	src := f.cfg.Source.URL

	var data []byte
	var err error
	if isURL(src) {
		data, err = f.download(ctx, src)
	} else {
		data, err = os.ReadFile(src)
		if err != nil {
			err = RequestError(src, err)
		}
	}
	if err != nil {
		return nil, err
	}

	recs, err := decode(data)
	if err != nil {
		return nil, DecodeError(src, err)
	}
	if len(recs) == 0 {
		return nil, EmptyError(src)
	}

	if err = f.writeCache(recs); err != nil {
		// the cache is only needed for offline runs
		slog.Warn("Cannot cache fetched records", "error", err)
	}

	slog.Info("Fetched season records",
		"source", src,
		"records", len(recs),
		"bytes", humanize.Bytes(uint64(len(data))),
		"duration", gnfmt.TimeString(time.Since(startTime).Seconds()),
	)
	return recs, nil
}

func (f *fetcher) download(ctx context.Context, src string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, RequestError(src, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, RequestError(src, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, StatusError(src, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, RequestError(src, err)
	}
	return data, nil
}

func decode(data []byte) ([]season.Record, error) {
	var raw []rawRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	res := make([]season.Record, len(raw))
	for i, v := range raw {
		res[i] = season.Record{
			Season:   int(v.Season),
			Round:    int(v.Round),
			Team:     strings.TrimSpace(gnlib.FixUtf8(v.Team)),
			Standing: int(v.Standing),
			Points:   int(v.Points),
			Goals:    int(v.Goals),
		}
	}
	return res, nil
}

func (f *fetcher) cachePath() string {
	if f.cfg.HomeDir == "" {
		return ""
	}
	return filepath.Join(config.CacheDir(f.cfg.HomeDir), CacheFile)
}

func (f *fetcher) writeCache(recs []season.Record) error {
	path := f.cachePath()
	if path == "" {
		return nil
	}

	enc := gnfmt.GNgob{}
	data, err := enc.Encode(recs)
	if err != nil {
		return CacheError(path, err)
	}

	if err = os.WriteFile(path, data, 0644); err != nil {
		return CacheError(path, err)
	}
	return nil
}

func (f *fetcher) readCache() ([]season.Record, error) {
	path := f.cachePath()
	if path == "" {
		return nil, CacheError("", os.ErrNotExist)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, CacheError(path, err)
	}

	var recs []season.Record
	enc := gnfmt.GNgob{}
	if err = enc.Decode(data, &recs); err != nil {
		return nil, CacheError(path, err)
	}
	if len(recs) == 0 {
		return nil, EmptyError(path)
	}

	slog.Info("Read season records from cache",
		"path", path,
		"records", len(recs),
	)
	return recs, nil
}

func isURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
