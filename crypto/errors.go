package crypto

import (
	"github.com/pkg/errors"
)

var (
	// ErrProviderUnavailable means a required primitive is missing from the
	// process. It points at a broken build or deployment, not at bad input.
	ErrProviderUnavailable = errors.New("crypto provider unavailable")

	// ErrInvalidInput means the arguments of a single call were rejected:
	// wrong key, IV or data length, a malformed key encoding or a malformed
	// signature structure.
	ErrInvalidInput = errors.New("invalid crypto input")
)

// Error is returned by every fallible operation in this package. Kind is one
// of ErrProviderUnavailable or ErrInvalidInput.
type Error struct {
	Op   string
	Kind error
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Op + ": " + e.Kind.Error()
	}
	return e.Op + ": " + e.Kind.Error() + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the kind of this error.
func (e *Error) Is(target error) bool { return target == e.Kind }

func invalidInput(op string, format string, args ...any) error {
	return &Error{Op: op, Kind: ErrInvalidInput, Err: errors.Errorf(format, args...)}
}

func wrapInvalid(op string, err error, msg string) error {
	return &Error{Op: op, Kind: ErrInvalidInput, Err: errors.Wrap(err, msg)}
}

func unavailable(op string, err error) error {
	return &Error{Op: op, Kind: ErrProviderUnavailable, Err: err}
}
