package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// PersistenceError is the unrecoverable failure of a storage call made by an action.
// Message is what the error boundary logs; Err keeps the driver error for errors.Is/As.
type PersistenceError struct {
	Op      string
	Message string
	Err     error
}

// NewPersistenceError wraps a storage failure for the given operation.
func NewPersistenceError(op, message string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Message: message, Err: err}
}

func (e *PersistenceError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// IsPersistence reports whether err carries a PersistenceError anywhere in its chain.
func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
