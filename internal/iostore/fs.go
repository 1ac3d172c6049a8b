package iostore

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gnames/cbstats/pkg/store"
)

type fsStore struct {
	root string
}

// NewFS creates a store that keeps every blob as a file under root.
func NewFS(root string) (store.Store, error) {
	if root == "" {
		return nil, OpenError("fs", root, os.ErrInvalid)
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, OpenError("fs", root, err)
	}
	return &fsStore{root: root}, nil
}

func (s *fsStore) Put(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return WriteError(key, err)
	}
	p, err := s.filePath(key)
	if err != nil {
		return err
	}
	if err = os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return WriteError(key, err)
	}

	// write and rename, so readers never see a partial file
	tmp := p + ".tmp"
	if err = os.WriteFile(tmp, data, 0644); err != nil {
		return WriteError(key, err)
	}
	if err = os.Rename(tmp, p); err != nil {
		_ = os.Remove(tmp)
		return WriteError(key, err)
	}
	return nil
}

func (s *fsStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, ReadError(key, err)
	}
	p, err := s.filePath(key)
	if err != nil {
		return nil, err
	}
	res, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, NotFoundError(key)
	}
	if err != nil {
		return nil, ReadError(key, err)
	}
	return res, nil
}

func (s *fsStore) Close() error {
	return nil
}

func (s *fsStore) filePath(key string) (string, error) {
	k, err := cleanKey(key)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.root, filepath.FromSlash(k)), nil
}
