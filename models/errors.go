package models

import "errors"

var (
	// ErrInvalidArgument indicates a caller-supplied value outside the
	// accepted domain, such as a round count below one or a door number
	// out of range.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidState indicates round state that violates the game's
	// invariants, such as an assignment without exactly one prize.
	ErrInvalidState = errors.New("invalid state")
)
