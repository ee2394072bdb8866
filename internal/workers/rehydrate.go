// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/holiday-planner/internal/keys"
	"github.com/MKhiriev/holiday-planner/internal/logger"
	"github.com/MKhiriev/holiday-planner/internal/service"
	"github.com/MKhiriev/holiday-planner/models"
)

const (
	rehydrateDateLayout = "2006-01-02"
	rehydrateTimeLayout = "03:04 PM"
)

// RehydrateWorker re-registers every persisted reminder with the in-process
// scheduler once at startup. Scheduler registrations do not survive a process
// restart while the storage records do, so without this pass a restarted
// server would keep listing reminders that never fire.
//
// Reminders whose instant has already passed are skipped and left for the
// sweep worker to prune.
type RehydrateWorker struct {
	planner   service.PlannerService
	reminders service.ReminderService

	logger *logger.Logger
}

func NewRehydrateWorker(planner service.PlannerService, reminders service.ReminderService, logger *logger.Logger) *RehydrateWorker {
	return &RehydrateWorker{
		planner:   planner,
		reminders: reminders,
		logger:    logger,
	}
}

// Run performs one synchronous rehydration pass.
func (w *RehydrateWorker) Run() {
	ctx := context.Background()

	snapshot, err := w.planner.ListAll(ctx)
	if err != nil {
		w.logger.Error().Err(err).Msg("rehydrate: error listing planner records")
		return
	}

	restored := 0
	for _, item := range snapshot.Reminders {
		hour, minute, ok := parseClock(item.ScheduledTime)
		if !ok {
			w.logger.Warn().Str("holiday_id", item.HolidayID).Str("time", item.ScheduledTime).Msg("rehydrate: skipping unparseable clock string")
			continue
		}

		_, err := w.reminders.ScheduleReminder(ctx, scheduleRequest(item.HolidayID, item.Name, item.Body, item.Description, hour, minute))
		switch {
		case errors.Is(err, service.ErrPastTime):
			w.logger.Debug().Str("holiday_id", item.HolidayID).Msg("rehydrate: reminder already in the past")
		case err != nil:
			w.logger.Warn().Err(err).Str("holiday_id", item.HolidayID).Msg("rehydrate: error re-registering reminder")
		default:
			restored++
		}
	}

	w.logger.Info().Int("restored", restored).Int("total", len(snapshot.Reminders)).Msg("rehydrate: reminders re-registered")
}

// scheduleRequest rebuilds the registration payload of a persisted reminder.
func scheduleRequest(holidayID, name, body, description string, hour, minute int) models.ScheduleReminderRequest {
	return models.ScheduleReminderRequest{
		HolidayID:   holidayID,
		Name:        name,
		Body:        body,
		Description: description,
		Hour:        hour,
		Minute:      minute,
	}
}

// parseClock splits a persisted display clock string back into its hour and
// minute components.
func parseClock(clock string) (hour, minute int, ok bool) {
	t, err := time.Parse(rehydrateTimeLayout, clock)
	if err != nil {
		return 0, 0, false
	}
	return t.Hour(), t.Minute(), true
}

// reminderFiresAt reconstructs the absolute firing instant of a persisted
// reminder from its holiday identifier and clock string.
func reminderFiresAt(holidayID, clock string, loc *time.Location) (time.Time, bool) {
	day, err := time.ParseInLocation(rehydrateDateLayout, keys.DatePart(holidayID), loc)
	if err != nil {
		return time.Time{}, false
	}
	hour, minute, ok := parseClock(clock)
	if !ok {
		return time.Time{}, false
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, loc), true
}
