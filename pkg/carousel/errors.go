package carousel

import "errors"

var (
	// ErrInvalidConfig is returned by New for unusable configurations.
	ErrInvalidConfig = errors.New("carousel: invalid configuration")

	// ErrClosed is returned by operations on a controller after Close.
	ErrClosed = errors.New("carousel: controller closed")

	// ErrUnknownAction is returned by Dispatch for unsupported actions.
	ErrUnknownAction = errors.New("carousel: unknown action")
)
