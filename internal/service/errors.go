package service

import "errors"

var (
	// ErrPastTime is returned when the requested reminder instant has
	// already passed. User-correctable: pick a later time.
	ErrPastTime = errors.New("reminder time is in the past")

	// ErrInvalidHolidayDate is returned when a holiday identifier carries no
	// parseable ISO date.
	ErrInvalidHolidayDate = errors.New("holiday id has no parseable date")

	// ErrInvalidClockTime is returned for an hour/minute pair outside the
	// 24-hour clock.
	ErrInvalidClockTime = errors.New("invalid clock time")

	ErrHolidayNotFound = errors.New("holiday not found")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
