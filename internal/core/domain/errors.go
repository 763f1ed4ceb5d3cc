package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors represent pipeline outcomes.
// These are distinct from infrastructure errors.
var (
	// ErrRepositoryNotFound indicates the configured repository path does not exist.
	// It is fatal at startup.
	ErrRepositoryNotFound = errors.New("repository not found")

	// ErrDiffCommand indicates the diff command exited unsuccessfully.
	// The current trigger is skipped; watching continues.
	ErrDiffCommand = errors.New("diff command failed")

	// ErrNoChanges indicates the working tree matches HEAD.
	// This is a normal outcome, not a failure.
	ErrNoChanges = errors.New("no changes found")

	// ErrCompletion indicates the completion service failed or returned nothing usable.
	ErrCompletion = errors.New("completion service failed")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)

// DiffCommandError carries the error stream of a failed diff invocation.
type DiffCommandError struct {
	// Stderr is the captured standard error of the command.
	Stderr string

	// Err is the underlying process error (usually *exec.ExitError).
	Err error
}

func (e *DiffCommandError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", ErrDiffCommand, msg)
}

// Unwrap allows errors.Is to match both ErrDiffCommand and the process error.
func (e *DiffCommandError) Unwrap() []error {
	return []error{ErrDiffCommand, e.Err}
}
