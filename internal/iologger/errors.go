package iologger

import (
	"fmt"
	"runtime"

	"github.com/gnames/cbstats/pkg/errcode"
	"github.com/gnames/gn"
)

// CreateLogFileError is returned when logging is directed to a file
// that cannot be created.
func CreateLogFileError(path string, err error) error {
	pc, _, _, _ := runtime.Caller(1)
	return &gn.Error{
		Code: errcode.CreateLogFileError,
		Msg: `Cannot create log file <em>%s</em>

<em>How to fix:</em>
  Set log.destination to "stderr" or make the log directory writable.`,
		Vars: []any{path},
		Err: fmt.Errorf("from %s: open log %s: %w",
			runtime.FuncForPC(pc).Name(), path, err),
	}
}
