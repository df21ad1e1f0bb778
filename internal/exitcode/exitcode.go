// Package exitcode defines the process exit codes used by hari.
package exitcode

import (
	"errors"
	"fmt"
)

const (
	Success      = 0
	GeneralError = 1
	UsageError   = 2
)

// Error is an error that carries an exit code.
type Error struct {
	Code    int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ExitCode extracts the exit code from err, looking through wrapped errors.
// Untyped errors map to GeneralError.
func ExitCode(err error) int {
	if err == nil {
		return Success
	}
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}
	return GeneralError
}

// General returns a general error (exit code 1).
func General(msg string, err error) *Error {
	return &Error{Code: GeneralError, Message: msg, Err: err}
}

// Usage returns a usage or validation error (exit code 2).
func Usage(msg string, err error) *Error {
	return &Error{Code: UsageError, Message: msg, Err: err}
}
