// Package copycat defines the cross-cutting error taxonomy shared by every
// sync engine component. Components return plain errors for
// expected, per-entry conditions and reserve these wrapper types for the
// categories that change control flow (fatal vs. counted, warning vs.
// error, exit code selection).
package copycat

import (
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// ValidationError indicates a configuration or CLI argument problem
// detected before any work begins. It always maps to exit code 1.
type ValidationError struct {
	message string
}

// NewValidationError constructs a ValidationError.
func NewValidationError(format string, arguments ...any) *ValidationError {
	return &ValidationError{message: fmt.Sprintf(format, arguments...)}
}

func (e *ValidationError) Error() string { return e.message }

// EntryError indicates a per-entry I/O failure (permission denied, not
// found, too many open files). It is counted in SyncStats.Errors and never
// unwinds out of a worker unless --fail-fast is set.
type EntryError struct {
	Path string
	Err  error
}

// NewEntryError wraps err as an EntryError for the given relative path.
func NewEntryError(path string, err error) *EntryError {
	return &EntryError{Path: path, Err: err}
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("entry error at %q: %s", e.Path, e.Err.Error())
}

func (e *EntryError) Unwrap() error { return e.Err }

// FilesystemError indicates a fatal, non-entry-specific I/O condition (disk
// full, read-only filesystem). It triggers cancellation of the whole run.
type FilesystemError struct {
	Err error
}

// NewFilesystemError wraps err as a fatal FilesystemError.
func NewFilesystemError(err error) *FilesystemError {
	return &FilesystemError{Err: err}
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("filesystem error: %s", e.Err.Error())
}

func (e *FilesystemError) Unwrap() error { return e.Err }

// SymlinkError indicates a failure specific to symlink creation or
// resolution. Whether it is fatal or merely logged depends on
// SyncConfig.IgnoreSymlinkErrors at the call site.
type SymlinkError struct {
	Path string
	Err  error
}

// NewSymlinkError wraps err as a SymlinkError for the given relative path.
func NewSymlinkError(path string, err error) *SymlinkError {
	return &SymlinkError{Path: path, Err: err}
}

func (e *SymlinkError) Error() string {
	return fmt.Sprintf("symlink error at %q: %s", e.Path, e.Err.Error())
}

func (e *SymlinkError) Unwrap() error { return e.Err }

// StallError indicates that the progress tracker observed no completion
// callbacks for longer than the configured stall timeout. It always maps to
// exit code 3.
type StallError struct {
	message string
}

// NewStallError constructs a StallError.
func NewStallError(format string, arguments ...any) *StallError {
	return &StallError{message: fmt.Sprintf(format, arguments...)}
}

func (e *StallError) Error() string { return e.message }

// CancelledError indicates that the run was stopped by a cancel signal
// (SIGINT/SIGTERM) rather than by an error. It is not logged as an error.
type CancelledError struct {
	// Signal is "INT" or "TERM".
	Signal string
}

func (e *CancelledError) Error() string {
	return fmt.Sprintf("sync cancelled (SIG%s)", e.Signal)
}

// ExitCode returns the process exit code associated with this cancellation:
// 130 for SIGINT, 143 for SIGTERM.
func (e *CancelledError) ExitCode() int {
	if e.Signal == "TERM" {
		return 143
	}
	return 130
}

// InvariantViolation indicates an internal bug — a state the implementation
// believes is unreachable. It is always constructed with a stack trace
// (via github.com/pkg/errors) so that it can be logged with one at the call
// site, and always maps to exit code 70.
type InvariantViolation struct {
	err error
}

// NewInvariantViolation constructs an InvariantViolation, capturing a stack
// trace at the call site.
func NewInvariantViolation(format string, arguments ...any) *InvariantViolation {
	return &InvariantViolation{err: pkgerrors.Errorf(format, arguments...)}
}

func (e *InvariantViolation) Error() string { return e.err.Error() }

// StackTrace renders the captured stack trace, suitable for logging
// alongside Error().
func (e *InvariantViolation) StackTrace() string {
	return fmt.Sprintf("%+v", e.err)
}

// ErrorsEncountered is returned by the scheduler when --fail-fast is set
// and one or more non-fatal entry errors occurred, even though no single
// error was itself fatal.
type ErrorsEncountered struct {
	Count uint64
}

func (e *ErrorsEncountered) Error() string {
	return fmt.Sprintf("%d error(s) encountered", e.Count)
}
