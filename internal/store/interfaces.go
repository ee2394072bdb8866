package store

import (
	"context"

	"github.com/MKhiriev/holiday-planner/models"
)

// NotesRepository persists the ordered note lists attached to holidays.
//
// There is deliberately no single-note delete primitive: removing one note is
// expressed as SaveNotes with a shorter list, so the repository only ever
// sees whole-array replacement.
type NotesRepository interface {
	// LoadNotes returns the saved notes for one holiday. It fails soft:
	// store errors and malformed payloads are logged and an empty list is
	// returned, never an error.
	LoadNotes(ctx context.Context, holidayID string) []string

	// SaveNotes replaces the note list and refreshes the cached display
	// metadata in one atomic batch write.
	SaveNotes(ctx context.Context, holidayID string, items []string, name, description string) error
}

// ReminderRepository persists the at-most-one reminder record per holiday.
// It owns only the storage half of the lifecycle; scheduling logic lives in
// the reminder service.
type ReminderRepository interface {
	// ActiveReminderID returns the persisted notification id for the
	// holiday, or "" when no reminder exists.
	ActiveReminderID(ctx context.Context, holidayID string) (string, error)

	// SaveReminder writes the full five-key record in one atomic batch.
	SaveReminder(ctx context.Context, reminder models.Reminder) error

	// GetReminder reconstructs the record, defaulting missing sidecars so a
	// partially written record never fails the read.
	GetReminder(ctx context.Context, holidayID string) (models.Reminder, error)

	// RemoveReminder deletes the full five-key record in one atomic batch.
	// Removing an absent record is a no-op.
	RemoveReminder(ctx context.Context, holidayID string) error
}
