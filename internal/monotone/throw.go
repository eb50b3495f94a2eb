package monotone

import "github.com/pkg/errors"

// Threading errors up and down the sweep and the chain walk would add a ton of
// complexity to the code. Instead, we use panics, and the package boundary
// recovers to convert to an error.

type triangulateError struct {
	error
}

// Panic with an error that HandleTriangulatePanicRecover will turn back into
// a return value.
func fatalf(format string, args ...any) {
	panic(triangulateError{errors.Errorf(format, args...)})
}

// HandleTriangulatePanicRecover converts a value recovered from fatalf into
// an error. Any other panic is a real bug, and is raised again.
func HandleTriangulatePanicRecover(r any) error {
	if r != nil {
		if triangulateError, ok := r.(triangulateError); ok {
			return triangulateError.error
		}
		panic(r)
	}
	return nil
}
