package models

import "time"

// Holiday is one calendar occasion from the holiday dataset. The dataset is
// read-only from the planner's point of view: notes and reminders reference
// holidays by ID but never mutate them.
type Holiday struct {
	// ID is the canonical holiday identifier: either a bare ISO date
	// ("2026-04-13") or a composite "<iso-date>|<slug>" form produced for
	// holidays that need a stable slug for routing.
	ID string `json:"id"`

	// Name is the human-readable holiday name (e.g. "Thingyan Festival").
	Name string `json:"name"`

	// Description is a short free-text blurb shown on detail views.
	Description string `json:"description"`

	// Date is the ISO date of the first day of the holiday.
	Date string `json:"date"`

	// Days is the length of the holiday span in days.
	Days int `json:"days"`

	// Recurring marks fixed-date holidays that repeat every year on the
	// same month and day (e.g. May Day). Movable feasts are not recurring.
	Recurring bool `json:"recurring"`
}

// StartsAt returns the first day of the holiday as a wall-clock midnight in
// loc. A zero time is returned when the date does not parse.
func (h Holiday) StartsAt(loc *time.Location) time.Time {
	t, err := time.ParseInLocation("2006-01-02", h.Date, loc)
	if err != nil {
		return time.Time{}
	}
	return t
}
