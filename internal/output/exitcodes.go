package output

import (
	"errors"
	"fmt"

	"github.com/raphi011/shakti/internal/cmd"
)

// Exit codes:
// 0 = Success
// 1 = Command not found, unknown subcommand, internal error
// n = exit status of a failed external process, propagated as is
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// ExitError is an error that carries an exit code for the CLI.
// An empty Message means the failure was already reported.
type ExitError struct {
	Code    int
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/errors.As support.
func (e *ExitError) Unwrap() error {
	return e.Cause
}

// NewExitError creates an error exiting with code and printing message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// Silent exits with code without printing anything further.
func Silent(code int) *ExitError {
	return &ExitError{Code: code}
}

// Propagate wraps the failure of an external command so that shakti
// exits with the same status. what names the step, as in
// "Error executing git diff: exit status 2".
func Propagate(err error, what string) error {
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	return &ExitError{
		Code:    cmd.ExitCode(err),
		Message: fmt.Sprintf("Error executing %s: %v", what, err),
		Cause:   err,
	}
}

// ExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil, ExitFailure for errors without a code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}
