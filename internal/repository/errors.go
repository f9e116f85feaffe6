package repository

import "fmt"

// PersistenceError describes a failed read or write of the backing
// flat-file store. It wraps the underlying I/O error and is propagated
// to the caller as a typed failure; the repositories never retry.
type PersistenceError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface.
func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying cause for errors.Is / errors.As.
func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// newPersistenceError wraps err with the failing operation and path.
func newPersistenceError(op, path string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Path: path, Err: err}
}
