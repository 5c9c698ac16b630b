package notify

import "errors"

var (
	// ErrMissingRecipient is returned when an email has no To address
	ErrMissingRecipient = errors.New("notify: recipient is required")

	// ErrMissingSubject is returned when an email has no subject
	ErrMissingSubject = errors.New("notify: subject is required")
)
