package iofetch

import (
	"fmt"
	"runtime"

	"github.com/gnames/cbstats/pkg/errcode"
	"github.com/gnames/gn"
)

// RequestError is returned when the source cannot be reached or read.
func RequestError(src string, err error) error {
	msg := `Cannot get data from <em>%s</em>

<em>How to fix:</em>
  Check the network or use --offline to work with the cached copy.`
	vars := []any{src}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.FetchRequestError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: request to %s failed: %w", fn.Name(), src, err),
	}
}

// StatusError is returned when the source answers with a non-OK status.
func StatusError(src string, status int) error {
	msg := "Source <em>%s</em> returned status %d"
	vars := []any{src, status}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.FetchStatusError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: unexpected status %d from %s",
			fn.Name(), status, src),
	}
}

// DecodeError is returned when the payload is not a JSON array of records.
func DecodeError(src string, err error) error {
	msg := "Cannot decode records from <em>%s</em>"
	vars := []any{src}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.FetchDecodeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot decode %s: %w", fn.Name(), src, err),
	}
}

// CacheError is returned when the local copy of the dataset cannot be
// written or read.
func CacheError(path string, err error) error {
	msg := `Cannot use cached records at <em>%s</em>

<em>How to fix:</em>
  Run once without --offline to fill the cache.`
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.FetchCacheError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cache %q: %w", fn.Name(), path, err),
	}
}

// EmptyError is returned when the source has no records.
func EmptyError(src string) error {
	msg := "No records found in <em>%s</em>"
	vars := []any{src}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.FetchEmptyError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: no records in %s", fn.Name(), src),
	}
}
