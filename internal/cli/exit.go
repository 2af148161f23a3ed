package cli

import "fmt"

// Process exit codes.
const (
	ExitCodeOK    = 0
	ExitCodeError = 1
	// ExitCodeListFailed means the list request of a non-interactive run failed.
	// The static error was still printed in the requested output format.
	ExitCodeListFailed = 2
)

// ExitError carries a specific process exit code up to main.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d: %v", e.Code, e.Err)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}
