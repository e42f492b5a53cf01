package query

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a lookup or a mutation matched no row.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when a statement violated a unique constraint.
	ErrDuplicate = errors.New("duplicate key")

	// ErrTransport matches every TransportError via errors.Is.
	ErrTransport = errors.New("database statement failed")

	// ErrNilDB is returned by New when no database handle is given.
	ErrNilDB = errors.New("database connection is nil")
)

// TransportError reports a failed statement. It names the executor operation
// only; the statement and its arguments are not part of the error.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, ErrTransport)
}

// Unwrap returns the driver error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrTransport) hold for every failed statement.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}
