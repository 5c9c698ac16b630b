package booking

import "errors"

var (
	// ErrSessionNotFound is returned when a session id is unknown or expired
	ErrSessionNotFound = errors.New("booking: session not found")

	// ErrUnknownEvent is returned when an event type cannot be decoded
	ErrUnknownEvent = errors.New("booking: unknown event type")

	// ErrMissingSessionID is returned when a store operation has no id
	ErrMissingSessionID = errors.New("booking: session id is required")
)
