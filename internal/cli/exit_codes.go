package cli

import "fmt"

// Exit codes for the practicegraph CLI. A failing validation exits non-zero
// so the surrounding build aborts instead of publishing invalid data.
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitValidationFailed indicates the document failed validation
	ExitValidationFailed = 1

	// ExitInvalidArguments indicates invalid arguments, an unreadable or
	// unparseable input file, or a broken configuration
	ExitInvalidArguments = 3
)

// exitError is a custom error type that carries an exit code.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

// NewExitError creates a new exit error with the given code.
func NewExitError(code int) error {
	return &exitError{code: code}
}

// ExitCode returns the exit code from an error.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if e, ok := err.(*exitError); ok {
		return e.code
	}
	return ExitValidationFailed
}
