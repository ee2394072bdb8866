package service

import (
	"context"
	"time"

	"github.com/MKhiriev/holiday-planner/models"
)

type NotesService interface {
	// GetNotes returns the saved notes for a holiday, empty when none exist.
	GetNotes(ctx context.Context, holidayID string) []string

	// SaveNotes replaces the holiday's note list. The holiday's name and
	// description are cached alongside for the planner listing.
	SaveNotes(ctx context.Context, holidayID string, items []string, name, description string) error
}

type ReminderService interface {
	// ScheduleReminder registers a local notification for the holiday,
	// replacing any previous registration. Returns ErrPastTime when the
	// requested instant has already passed.
	ScheduleReminder(ctx context.Context, req models.ScheduleReminderRequest) (models.ScheduledReminder, error)

	// GetReminder returns the active reminder record, or
	// store.ErrReminderNotFound when the holiday has none.
	GetReminder(ctx context.Context, holidayID string) (models.Reminder, error)

	// DeleteReminder cancels and removes the holiday's reminder. Deleting a
	// holiday without a reminder is a successful no-op.
	DeleteReminder(ctx context.Context, holidayID string) error
}

type PlannerService interface {
	// ListAll reconstructs the full working set of reminders and note sets
	// from storage.
	ListAll(ctx context.Context) (models.PlannerSnapshot, error)
}

type HolidayService interface {
	// List returns the whole holiday dataset sorted by date.
	List(ctx context.Context) ([]models.Holiday, error)

	// Upcoming returns holidays whose date is on or after now's day, sorted
	// by date.
	Upcoming(ctx context.Context, now time.Time) ([]models.Holiday, error)

	// Get returns one holiday by its identifier.
	Get(ctx context.Context, holidayID string) (models.Holiday, error)
}

type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// HolidaySource fetches a holiday dataset from an external provider. The
// holiday service falls back to its embedded dataset when no source is
// configured or the fetch fails.
type HolidaySource interface {
	Fetch(ctx context.Context) ([]models.Holiday, error)
}
