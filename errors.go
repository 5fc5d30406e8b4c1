package screenspace

import "errors"

var (
	// ErrInvalidArgument is returned when a required argument is missing or
	// outside its closed enumeration (an unknown event kind or modifier, or a
	// nil action on registration).
	ErrInvalidArgument = errors.New("screenspace: invalid argument")

	// ErrIllegalState is returned by every Handler operation except
	// IsDisposed once the handler has been disposed.
	ErrIllegalState = errors.New("screenspace: handler is disposed")
)
