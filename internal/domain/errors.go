package domain

import "errors"

// Error kinds returned by the reservation engine. Every failure wraps exactly
// one of these so callers can branch with errors.Is.
var (
	ErrInvalidArgument        = errors.New("invalid argument")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrNoAvailability         = errors.New("no availability")
	ErrNotFound               = errors.New("not found")
)
