package errors

import "errors"

// ExitCode returns the process exit status for err, or 0 when err is nil.
// Errors outside the domain map to the CodeUnknown status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return GetCode(err).ExitCode()
}

// GetCode extracts the error code from any error.
// Returns CodeUnknown if the error is not a domain error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

// IsCode checks if the error has the specified code.
func IsCode(err error, code Code) bool {
	return GetCode(err) == code
}
