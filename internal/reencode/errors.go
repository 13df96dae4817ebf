package reencode

import (
	"errors"
	"fmt"
)

// SetupError marks conditions that abort the whole run before any file is
// touched: a bad directory, a missing or unparseable encoder, or an invalid
// requested version. Per-file conditions never use this type.
type SetupError struct {
	err error
}

// NewSetupError wraps err as fatal to the run.
func NewSetupError(err error) *SetupError {
	return &SetupError{err: err}
}

// Setupf formats a new SetupError.
func Setupf(format string, args ...any) *SetupError {
	return &SetupError{err: fmt.Errorf(format, args...)}
}

func (e *SetupError) Error() string {
	return e.err.Error()
}

func (e *SetupError) Unwrap() error {
	return e.err
}

// IsSetupError reports whether err aborts the run rather than one file.
func IsSetupError(err error) bool {
	var se *SetupError
	return errors.As(err, &se)
}
