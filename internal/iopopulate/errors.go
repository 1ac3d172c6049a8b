package iopopulate

import (
	"fmt"

	"github.com/gnames/cbstats/pkg/errcode"
	"github.com/gnames/gn"
)

// NotConnectedError creates an error for when populate
// operation is attempted without database connection.
func NotConnectedError() error {
	msg := "Populate operation attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// NoTablesError creates an error for when the schema was not created.
func NoTablesError(table string) error {
	msg := `Table <em>%s</em> does not exist

<em>How to fix:</em>
  Create the schema first: <em>cbstats create</em>`

	vars := []any{table}

	return &gn.Error{
		Code: errcode.DBEmptyDatabaseError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("table %s does not exist", table),
	}
}

// TransactionError creates an error for a failed begin or commit.
func TransactionError(err error) error {
	msg := "Database transaction failed, no records were changed"

	return &gn.Error{
		Code: errcode.PopulateTransactionError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("transaction failed: %w", err),
	}
}

// DeleteError creates an error for when old rows of the loaded seasons
// cannot be removed.
func DeleteError(seasons []int, err error) error {
	msg := "Cannot remove previous records of seasons %v"

	vars := []any{seasons}

	return &gn.Error{
		Code: errcode.PopulateDeleteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot delete seasons %v: %w", seasons, err),
	}
}

// CopyError creates an error for bulk insert failures.
func CopyError(err error) error {
	msg := "Cannot insert season records"

	return &gn.Error{
		Code: errcode.PopulateCopyError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("copy to season_records failed: %w", err),
	}
}

// RunError creates an error for when the run cannot be registered.
func RunError(runID string, err error) error {
	msg := "Cannot register run <em>%s</em>"

	vars := []any{runID}

	return &gn.Error{
		Code: errcode.PopulateRunError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot insert run %s: %w", runID, err),
	}
}
