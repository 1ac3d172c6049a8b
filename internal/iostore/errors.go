package iostore

import (
	"fmt"
	"runtime"

	"github.com/gnames/cbstats/pkg/errcode"
	"github.com/gnames/gn"
)

// KindError is returned for an unknown store backend.
func KindError(kind string) error {
	msg := `Unknown store kind <em>%s</em>

<em>How to fix:</em>
  Set store.kind to "fs", "sqlite" or "azure" in config.yaml.`
	vars := []any{kind}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.StoreKindError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: unknown store kind %q", fn.Name(), kind),
	}
}

// OpenError is returned when a store backend cannot be initialized.
func OpenError(kind, location string, err error) error {
	msg := "Cannot open %s store at <em>%s</em>"
	vars := []any{kind, location}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.StoreOpenError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot open %s store %q: %w",
			fn.Name(), kind, location, err),
	}
}

// PathError is returned for an empty blob path or one that escapes the
// store root.
func PathError(key string) error {
	msg := "Invalid blob path <em>%s</em>"
	vars := []any{key}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.StorePathError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: invalid blob path %q", fn.Name(), key),
	}
}

// WriteError is returned when a blob cannot be written.
func WriteError(key string, err error) error {
	msg := "Cannot write <em>%s</em>"
	vars := []any{key}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.StoreWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot write %q: %w", fn.Name(), key, err),
	}
}

// ReadError is returned when a blob exists but cannot be read.
func ReadError(key string, err error) error {
	msg := "Cannot read <em>%s</em>"
	vars := []any{key}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.StoreReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read %q: %w", fn.Name(), key, err),
	}
}

// NotFoundError is returned when nothing is stored under a path.
func NotFoundError(key string) error {
	msg := "<em>%s</em> not found"
	vars := []any{key}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.StoreNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: %q not found", fn.Name(), key),
	}
}
