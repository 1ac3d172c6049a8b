package ioexport

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gnames/cbstats/pkg/errcode"
	"github.com/gnames/gn"
)

var errNotTable = errors.New("CSV artifacts require a report.Table")

// UnsupportedFileTypeError is returned for artifact names that are neither
// .csv nor .json.
func UnsupportedFileTypeError(name string) error {
	msg := `Unsupported file type of <em>%s</em>

<em>How to fix:</em>
  Use a .csv or .json extension.`
	vars := []any{name}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.UnsupportedFileTypeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: unsupported file type %q", fn.Name(), name),
	}
}

// EncodeError is returned when an artifact cannot be serialized.
func EncodeError(name string, err error) error {
	msg := "Cannot encode <em>%s</em>"
	vars := []any{name}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.EncodeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot encode %q: %w", fn.Name(), name, err),
	}
}
