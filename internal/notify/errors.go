package notify

import "errors"

var (
	// ErrUnknownNotification is returned by Cancel when no pending
	// registration matches the given id — typically because it already
	// fired or was cancelled before.
	ErrUnknownNotification = errors.New("unknown notification id")

	// ErrNonPositiveDelay is returned by Schedule when the requested delay
	// has already elapsed. The time-of-day validation belongs to the caller;
	// this is a last-line guard against registering a timer in the past.
	ErrNonPositiveDelay = errors.New("notification delay must be positive")
)
