package internal

import "github.com/pkg/errors"

// The core assumes a simple counterclockwise polygon and does not validate it.
// When that precondition is broken deep inside ear clipping or coloring, there
// is nothing sensible to return, so we panic with a TriangulateError and the
// public API recovers it into an error.

// Runtime errors also implement error, so the panic value gets its own type.
type TriangulateError struct {
	error
}

// Panic with a TriangulateError.
func fatalf(format string, args ...interface{}) {
	panic(TriangulateError{errors.Errorf(format, args...)})
}

func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if triangulateError, ok := r.(TriangulateError); ok {
			return triangulateError
		}
		panic(r)
	}
	return nil
}
