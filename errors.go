package parquetdb

import (
	"errors"
)

var (
	// ErrUnknownTable is returned when a table name does not resolve to one
	// of the store's fixed tables.
	ErrUnknownTable = errors.New("unknown table")

	// ErrClosed is returned by operations on a closed store.
	ErrClosed = errors.New("store is closed")
)

// Schema violations surface as *schema.MismatchError and a missing or null
// partition timestamp as *schema.MissingPartitionColumnError; both fail an
// upsert before any I/O and can be unwrapped with errors.As.
