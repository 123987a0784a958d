// Package errors provides coded domain errors shared by the command-line tools.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Entropy errors
	CodeEntropySourceUnavailable Code = "ENTROPY_SOURCE_UNAVAILABLE"

	// Invocation errors
	CodeUsage          Code = "USAGE"
	CodeOutputRequired Code = "OUTPUT_REQUIRED"
)

// ExitCode maps domain codes to process exit statuses.
func (c Code) ExitCode() int {
	switch c {
	// Misuse of the command line, matching the flag package convention.
	case CodeUsage:
		return 2

	default:
		return 1
	}
}
