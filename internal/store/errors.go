package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrReminderNotFound is returned by GetReminder when no record exists
	// for the holiday.
	ErrReminderNotFound = errors.New("reminder not found")
)
