// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides outbound transport clients.
//
// [PlannerAPI] decouples the terminal client from the planner server's HTTP
// surface; [HolidayAPI] fetches holiday datasets from a Calendarific-style
// provider. Error values defined in errors.go are mapped from HTTP status
// codes by mapHTTPError so that callers can use [errors.Is] for
// transport-agnostic error handling.
package adapter

import (
	"context"

	"github.com/MKhiriev/holiday-planner/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter.go -package=mock

// PlannerAPI is the transport-agnostic view of the planner server used by
// the terminal client.
type PlannerAPI interface {
	// GetHolidays returns the upcoming holidays.
	GetHolidays(ctx context.Context) ([]models.Holiday, error)

	// GetNotes returns the saved notes of one holiday.
	GetNotes(ctx context.Context, holidayID string) (models.NoteSet, error)

	// SaveNotes replaces the notes of one holiday.
	SaveNotes(ctx context.Context, holidayID string, req models.SaveNotesRequest) error

	// GetReminder returns the active reminder of one holiday. Returns
	// [ErrNotFound] (wrapped) when the holiday has no reminder.
	GetReminder(ctx context.Context, holidayID string) (models.Reminder, error)

	// ScheduleReminder registers a reminder for one holiday. Returns
	// [ErrUnprocessable] (wrapped) when the requested time is in the past.
	ScheduleReminder(ctx context.Context, holidayID string, req models.ScheduleReminderRequest) (models.ScheduledReminder, error)

	// DeleteReminder removes the reminder of one holiday. Deleting an
	// absent reminder succeeds.
	DeleteReminder(ctx context.Context, holidayID string) error

	// GetPlanner returns the aggregated working set of reminders and notes.
	GetPlanner(ctx context.Context) (models.PlannerSnapshot, error)

	// GetVersion returns the server build information.
	GetVersion(ctx context.Context) (models.AppBuildInfo, error)
}

// HolidayAPI fetches a country's holiday dataset from an external provider.
type HolidayAPI interface {
	Fetch(ctx context.Context) ([]models.Holiday, error)
}
