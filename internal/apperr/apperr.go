// Package apperr defines the sentinel error categories used across
// secretsentry-cli.
//
// Error taxonomy
//
//	UserError    – caused by missing or invalid user input (wrong flag, bad
//	               value, …). The CLI prints only the message; usage help
//	               is NOT repeated. Exit code: 1.
//
//	ErrCancelled – the user deliberately aborted an interactive flow
//	               (validation prompt, finding picker, …).
//	               Exit code: 0 (not a failure).
//
//	ErrValidationAbort – the user reviewed findings and chose not to
//	               proceed (§4.6, ValidationDecision.Proceed == false).
//	               This is a deliberate decision, not a crash.
//	               Exit code: 1 (the push/commit is blocked).
//
//	ErrVcsUnavailable / ErrVcsNoUpstream / ErrVcsNotARepo – version-control
//	               conditions the orchestrator falls back from (§7); never
//	               fatal on their own.
//
//	ErrRegexInvalid – a catalog pattern failed to compile or errored at
//	               match time; the offending pattern is disabled for the
//	               run (§7), this is never returned from a scan.
//
//	ErrTemplateMissing – the optional report template file could not be
//	               read; the renderer falls back to its built-in template
//	               and never aborts (§4.7, §7).
//
// Everything else is a plain Go error (I/O, VCS process failures, …) and is
// propagated with fmt.Errorf("context: %w", err) wrapping.
package apperr

import (
	"errors"
	"fmt"
)

// ErrCancelled is returned when the user explicitly aborts an interactive
// operation. The CLI should exit 0 rather than 1 when it sees this error.
var ErrCancelled = errors.New("operation cancelled")

// ErrValidationAbort is returned when a ValidationDecision has Proceed ==
// false: the user reviewed the findings and declined to push/commit.
var ErrValidationAbort = errors.New("push aborted by validation decision")

// ErrFindingsPresent marks a scan that completed normally but found one
// or more potential secrets. The CLI already printed the findings (JSON
// to stdout, summary to stderr); this sentinel only carries the exit
// code (§6: exit 1 if findings or error) without cobra re-printing it.
var ErrFindingsPresent = errors.New("secrets detected")

// ErrVcsUnavailable means the version-control tool could not be invoked at
// all (not installed, not on PATH, …).
var ErrVcsUnavailable = errors.New("version control unavailable")

// ErrVcsNoUpstream means the current branch has no configured upstream;
// callers fall back to scanning all tracked files (§4.2).
var ErrVcsNoUpstream = errors.New("no upstream configured")

// ErrVcsNotARepo means the working directory is not inside a repository.
var ErrVcsNotARepo = errors.New("not a repository")

// ErrRegexInvalid marks a catalog pattern that failed to compile or
// errored during matching; the pattern is disabled for the run.
var ErrRegexInvalid = errors.New("invalid detection pattern")

// ErrTemplateMissing marks a missing or unreadable report template file;
// the renderer falls back to its built-in template.
var ErrTemplateMissing = errors.New("report template unavailable")

// UserError represents an error caused by invalid or missing user input.
// Cobra command handlers return this instead of a bare fmt.Errorf so that
// the root command can suppress repeated usage output and format the
// message in a user-friendly way.
type UserError struct {
	Message string
}

func (e *UserError) Error() string { return e.Message }

// User creates a UserError with the given message.
func User(msg string) error { return &UserError{Message: msg} }

// Userf creates a formatted UserError.
func Userf(format string, args ...any) error {
	return &UserError{Message: fmt.Sprintf(format, args...)}
}

// IsUser reports whether err is (or wraps) a *UserError.
func IsUser(err error) bool {
	var u *UserError
	return errors.As(err, &u)
}
