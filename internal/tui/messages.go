package tui

import "github.com/MKhiriev/holiday-planner/models"

type holidaysLoadedMsg struct {
	holidays []models.Holiday
	err      error
}

// detailLoadedMsg carries everything the holiday detail screen shows.
// reminder is nil when the holiday has none.
type detailLoadedMsg struct {
	notes    models.NoteSet
	reminder *models.Reminder
	err      error
}

type notesSavedMsg struct {
	err error
}

type reminderScheduledMsg struct {
	scheduled models.ScheduledReminder
	err       error
}

type reminderDeletedMsg struct {
	err error
}

type plannerLoadedMsg struct {
	snapshot models.PlannerSnapshot
	err      error
}

type versionLoadedMsg struct {
	info models.AppBuildInfo
	err  error
}

type copiedMsg struct{}
