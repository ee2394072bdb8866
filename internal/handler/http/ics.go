// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/MKhiriev/holiday-planner/internal/keys"
	"github.com/MKhiriev/holiday-planner/internal/logger"
)

const (
	icsProductID  = "-//holiday-planner//EN"
	icsDateLayout = "2006-01-02"
	icsTimeLayout = "03:04 PM"
)

// exportCalendar renders every scheduled reminder as a VEVENT and serves the
// result as an iCalendar file. Reminders whose persisted date or clock string
// does not parse are skipped rather than failing the whole export.
func (h *Handler) exportCalendar(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	snapshot, err := h.services.PlannerService.ListAll(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.exportCalendar").Msg("error listing planner records")
		http.Error(w, "error listing planner records", statusFromError(err))
		return
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(icsProductID)

	now := time.Now()
	for _, item := range snapshot.Reminders {
		startsAt, ok := reminderInstant(item.HolidayID, item.ScheduledTime)
		if !ok {
			log.Warn().Str("holiday_id", item.HolidayID).Str("time", item.ScheduledTime).Msg("skipping reminder with unparseable schedule")
			continue
		}

		uid := item.NotificationID
		if uid == "" {
			uid = item.HolidayID
		}

		event := cal.AddEvent(uid + "@holiday-planner")
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetStartAt(startsAt)
		event.SetEndAt(startsAt.Add(time.Hour))
		event.SetSummary(item.Name)
		if item.Body != "" {
			event.SetDescription(item.Body)
		}
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="planner.ics"`)
	_, _ = w.Write([]byte(cal.Serialize()))
}

// reminderInstant reconstructs the wall-clock firing time from the holiday
// identifier's date part and the persisted display clock string.
func reminderInstant(holidayID, clock string) (time.Time, bool) {
	day, err := time.ParseInLocation(icsDateLayout, keys.DatePart(holidayID), time.Local)
	if err != nil {
		return time.Time{}, false
	}

	t, err := time.Parse(icsTimeLayout, clock)
	if err != nil {
		return time.Time{}, false
	}

	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, time.Local), true
}
