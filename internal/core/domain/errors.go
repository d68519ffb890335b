package domain

import "errors"

// Domain errors represent infrastructure or usage failures.
// Syntax problems in a snippet are never errors: they are reported
// through CheckResult.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an extension has no registered checker.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrToolUnavailable indicates an external compiler or parser could not be started.
	// Callers may fall back to another implementation.
	ErrToolUnavailable = errors.New("tool unavailable")

	// ErrToolTimeout indicates an external compiler did not answer in time.
	ErrToolTimeout = errors.New("tool timed out")

	// ErrInvalidSetting indicates a settings key or value is not recognised.
	ErrInvalidSetting = errors.New("invalid setting")
)
