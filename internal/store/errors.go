package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by store operations. Callers check them
// with errors.Is.
var (
	// ErrDuplicate means an add collided on a unique key.
	ErrDuplicate = errors.New("duplicate key")

	// ErrNotFound means a lookup or update referenced an absent key.
	ErrNotFound = errors.New("not found")

	// ErrProductNotFound means an order referenced a product code that
	// does not exist in the catalog.
	ErrProductNotFound = errors.New("product not found")

	// ErrIndexOutOfRange means an order update targeted a row index
	// outside the ledger's current bounds.
	ErrIndexOutOfRange = errors.New("order index out of range")
)

// CorruptError reports a backing file that exists but could not be
// parsed into the expected columns. Loading falls back to empty or
// default in-memory state for the run; the error is reported to the
// user, never fatal.
type CorruptError struct {
	Path string
	Err  error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("corrupt store file %s: %v", e.Path, e.Err)
}

func (e *CorruptError) Unwrap() error { return e.Err }
