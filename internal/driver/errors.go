package driver

import (
	"errors"
	"fmt"
)

// ErrUnavailable marks failures to establish or verify the store connection.
var ErrUnavailable = errors.New("graph store unavailable")

// QueryError wraps a store-side rejection of a query.
type QueryError struct {
	Query string
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query rejected by graph store: %v", e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}
