// Package iostore provides store.Store backends: a local directory, a
// single-file SQLite database and an Azure Blob Storage container.
package iostore

import (
	"context"
	"path"
	"strings"

	"github.com/gnames/cbstats/pkg/config"
	"github.com/gnames/cbstats/pkg/store"
)

// New creates the store selected by cfg.Store.Kind.
func New(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.Store.Kind {
	case "fs":
		return NewFS(cfg.Store.Path)
	case "sqlite":
		return NewSQLite(ctx, cfg.Store.Path)
	case "azure":
		return NewAzure(ctx, cfg.Store.ConnectionString, cfg.Store.Container)
	default:
		return nil, KindError(cfg.Store.Kind)
	}
}

// cleanKey normalizes a slash-separated blob path. Empty keys and keys
// with ".." segments are rejected.
func cleanKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	for _, v := range strings.Split(key, "/") {
		if v == ".." {
			return "", PathError(key)
		}
	}
	res := strings.TrimPrefix(path.Clean("/"+key), "/")
	if res == "" {
		return "", PathError(key)
	}
	return res, nil
}
