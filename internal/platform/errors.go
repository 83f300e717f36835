package platform

import "fmt"

// IOError represents a failure to acquire the report: the command could not
// be started, exited with an error, or the input file could not be read.
type IOError struct {
	// Source is the command line or file that failed
	Source string
	// Underlying error
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to read display state from %s: %v", e.Source, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ExecutionError represents a generated command that failed to apply.
type ExecutionError struct {
	// Command is the command line that failed
	Command string
	// ExitCode is the process exit code (-1 if it never ran)
	ExitCode int
	// Stderr is the process stderr output
	Stderr string
	// Underlying error
	Err error
}

func (e *ExecutionError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("command %q failed (exit code %d): %v", e.Command, e.ExitCode, e.Err)
	}
	return fmt.Sprintf("command %q failed (exit code %d): %v\nstderr: %s", e.Command, e.ExitCode, e.Err, e.Stderr)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}
