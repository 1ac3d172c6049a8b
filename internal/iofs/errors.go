package iofs

import (
	"fmt"
	"runtime"

	"github.com/gnames/cbstats/pkg/errcode"
	"github.com/gnames/gn"
)

// CreateDirError is returned when one of the cbstats directories under
// the home directory cannot be made.
func CreateDirError(dir string, err error) error {
	return newError(errcode.CreateDirError,
		`Cannot create directory <em>%s</em>

<em>How to fix:</em>
  Check permissions of the home directory.`,
		dir, "create directory", err)
}

// CopyFileError is returned when the default config.yaml cannot be
// written on the first run.
func CopyFileError(file string, err error) error {
	return newError(errcode.CopyFileError,
		"Cannot write default configuration to <em>%s</em>",
		file, "write default config", err)
}

// ReadFileError is returned when config.yaml cannot be loaded.
func ReadFileError(path string, err error) error {
	return newError(errcode.ReadFileError,
		`Cannot load configuration from <em>%s</em>

<em>How to fix:</em>
  Fix the YAML syntax, or delete the file to get a fresh default.`,
		path, "load config", err)
}

// newError builds a gn.Error naming the function that called the public
// constructor.
func newError(
	code gn.ErrorCode,
	msg, path, action string,
	err error,
) error {
	pc, _, _, _ := runtime.Caller(2)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: code,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("from %s: %s %s: %w", fn.Name(), action, path, err),
	}
}
