package models

// Reminder is the persisted record of one scheduled local notification tied
// to a holiday. At most one reminder exists per holiday at any time:
// re-scheduling replaces the previous registration instead of stacking a
// second one.
type Reminder struct {
	HolidayID string `json:"holidayId"`

	// NotificationID is the opaque identifier the notification scheduler
	// returned for the active registration. Empty means no active reminder.
	NotificationID string `json:"notificationId"`

	// Body is the notification message text.
	Body string `json:"body"`

	// ScheduledTime is the pre-formatted clock string shown in listings
	// (e.g. "09:00 AM"). Only the time of day is persisted; the date lives
	// in the holiday identifier.
	ScheduledTime string `json:"scheduledTime"`

	Name        string `json:"name"`
	Description string `json:"description"`
}

// ScheduleReminderRequest carries everything needed to register a reminder
// for one holiday.
type ScheduleReminderRequest struct {
	HolidayID   string `json:"holidayId"`
	Name        string `json:"name"`
	Body        string `json:"body"`
	Description string `json:"description"`

	// Hour and Minute select the local time of day on the holiday's date
	// at which the notification should fire.
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// ScheduledReminder is the result of a successful schedule call.
type ScheduledReminder struct {
	NotificationID string `json:"notificationId"`
	ScheduledTime  string `json:"scheduledTime"`
}
