package store

import "fmt"

// DataError wraps any connection or query failure raised by the read
// operations. Callers are not expected to recover; they match it with
// errors.As to tell data-access failures apart from programming errors.
type DataError struct {
	Op  string // failing operation, e.g. "categories"
	Err error
}

// Error returns the formatted error message.
func (e *DataError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying driver error.
func (e *DataError) Unwrap() error {
	return e.Err
}

func dataErr(op string, err error) error {
	return &DataError{Op: op, Err: err}
}
