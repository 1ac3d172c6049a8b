package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Fetch errors
	FetchRequestError
	FetchStatusError
	FetchDecodeError
	FetchCacheError
	FetchEmptyError

	// Enrichment errors
	ChampionTieError

	// Store errors
	StoreKindError
	StoreOpenError
	StorePathError
	StoreWriteError
	StoreReadError
	StoreNotFoundError

	// Export errors
	UnsupportedFileTypeError
	EncodeError

	// Database errors
	DBConnectionError
	DBTableCheckError
	DBEmptyDatabaseError
	DBNotConnectedError
	DBTableExistsCheckError
	DBDropTableError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError
	SchemaMigrateError

	// Populate errors
	PopulateTransactionError
	PopulateDeleteError
	PopulateCopyError
	PopulateRunError
)
