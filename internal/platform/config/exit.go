package config

import (
	"fmt"
	"os"
)

// Exitf writes a formatted error message to stderr and exits with code 1.
// It provides a consistent fatal-exit pattern for CLI entry points.
func Exitf(format string, args ...any) {
	ExitCodef(1, format, args...)
}

// ExitCodef writes a formatted error message to stderr and exits with code.
// Non-positive codes are raised to 1 so a fatal path never reports success.
func ExitCodef(code int, format string, args ...any) {
	if code <= 0 {
		code = 1
	}
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(code)
}
