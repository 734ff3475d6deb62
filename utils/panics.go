package utils

import (
	"errors"
	"fmt"
)

// ErrPanic marks errors recovered from a panicking pipeline stage or update.
var ErrPanic = errors.New("recovered panic")

// RecoverWithError must be deferred directly. It turns a panic into an error
// wrapping ErrPanic and stores it in *err, keeping an error the panic value
// carries reachable through errors.Is.
func RecoverWithError(err *error) {
	rv := recover()
	if rv == nil {
		return
	}
	if cause, ok := rv.(error); ok {
		*err = fmt.Errorf("%w: %w", ErrPanic, cause)
		return
	}
	*err = fmt.Errorf("%w: %v", ErrPanic, rv)
}
