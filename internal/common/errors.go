package common

import "errors"

// Sentinel errors shared across layers. Match with errors.Is.
var (
	// ErrAuthRequired is returned when an operation that needs a stored
	// access or refresh token finds none. No network call is made.
	ErrAuthRequired = errors.New("authentication required")

	// ErrNoSession is returned by read accessors when no session has been
	// established yet.
	ErrNoSession = errors.New("no active session")
)
