// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/holiday-planner/internal/config"
	"github.com/MKhiriev/holiday-planner/internal/logger"
	"github.com/MKhiriev/holiday-planner/internal/mock"
	"github.com/MKhiriev/holiday-planner/internal/service"
	"github.com/MKhiriev/holiday-planner/internal/store"
	"github.com/MKhiriev/holiday-planner/models"
)

type testServices struct {
	notes    *mock.MockNotesService
	reminder *mock.MockReminderService
	planner  *mock.MockPlannerService
	holidays *mock.MockHolidayService
	appInfo  *mock.MockAppInfoService
}

// newTestRouter собирает полный роутер поверх моков сервисного слоя
func newTestRouter(t *testing.T, cfg config.Server) (http.Handler, testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	svcs := testServices{
		notes:    mock.NewMockNotesService(ctrl),
		reminder: mock.NewMockReminderService(ctrl),
		planner:  mock.NewMockPlannerService(ctrl),
		holidays: mock.NewMockHolidayService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
	}

	h := NewHandler(&service.Services{
		NotesService:    svcs.notes,
		ReminderService: svcs.reminder,
		PlannerService:  svcs.planner,
		HolidayService:  svcs.holidays,
		AppInfoService:  svcs.appInfo,
	}, cfg, logger.Nop())

	return h.Init(), svcs
}

func doRequest(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// ── /api/version ────────────────────────────────────────────────────────────

func TestGetVersion(t *testing.T) {
	router, svcs := newTestRouter(t, config.Server{HTTPAddress: ":8080"})
	svcs.appInfo.EXPECT().GetBuildInfo(gomock.Any()).
		Return(models.AppBuildInfo{Version: "1.2.3", Commit: "abc1234"})

	rec := doRequest(t, router, http.MethodGet, "/api/version", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var info models.AppBuildInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "1.2.3", info.Version)
}

// ── /api/holidays ───────────────────────────────────────────────────────────

func TestListHolidays(t *testing.T) {
	router, svcs := newTestRouter(t, config.Server{HTTPAddress: ":8080"})
	svcs.holidays.EXPECT().Upcoming(gomock.Any(), gomock.Any()).
		Return([]models.Holiday{{ID: "2026-12-25|christmas-day", Name: "Christmas Day", Date: "2026-12-25", Days: 1}}, nil)

	rec := doRequest(t, router, http.MethodGet, "/api/holidays", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var holidays []models.Holiday
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &holidays))
	require.Len(t, holidays, 1)
	assert.Equal(t, "Christmas Day", holidays[0].Name)
}

func TestListHolidays_ServiceFailure(t *testing.T) {
	router, svcs := newTestRouter(t, config.Server{HTTPAddress: ":8080"})
	svcs.holidays.EXPECT().Upcoming(gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	rec := doRequest(t, router, http.MethodGet, "/api/holidays", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ── notes ───────────────────────────────────────────────────────────────────

func TestGetNotes(t *testing.T) {
	router, svcs := newTestRouter(t, config.Server{HTTPAddress: ":8080"})
	svcs.notes.EXPECT().GetNotes(gomock.Any(), "2026-04-13|thingyan").
		Return([]string{"book tickets"})

	// композитный идентификатор приходит с экранированной чертой
	rec := doRequest(t, router, http.MethodGet, "/api/holidays/2026-04-13%7Cthingyan/notes", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var notes models.NoteSet
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &notes))
	assert.Equal(t, "2026-04-13|thingyan", notes.HolidayID)
	assert.Equal(t, []string{"book tickets"}, notes.Items)
}

func TestSaveNotes(t *testing.T) {
	router, svcs := newTestRouter(t, config.Server{HTTPAddress: ":8080"})
	svcs.notes.EXPECT().
		SaveNotes(gomock.Any(), "2026-04-13|thingyan", []string{"book tickets"}, "Thingyan", "Water festival").
		Return(nil)

	rec := doRequest(t, router, http.MethodPut, "/api/holidays/2026-04-13%7Cthingyan/notes",
		`{"items":["book tickets"],"name":"Thingyan","description":"Water festival"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var notes models.NoteSet
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &notes))
	assert.Equal(t, "Thingyan", notes.Name)
}

func TestSaveNotes_InvalidJSON(t *testing.T) {
	router, _ := newTestRouter(t, config.Server{HTTPAddress: ":8080"})

	rec := doRequest(t, router, http.MethodPut, "/api/holidays/2026-04-13/notes", `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ── reminder ────────────────────────────────────────────────────────────────

func TestGetReminder(t *testing.T) {
	router, svcs := newTestRouter(t, config.Server{HTTPAddress: ":8080"})
	svcs.reminder.EXPECT().GetReminder(gomock.Any(), "2026-04-13|thingyan").
		Return(models.Reminder{HolidayID: "2026-04-13|thingyan", Body: "Pack!", ScheduledTime: "09:30 AM"}, nil)

	rec := doRequest(t, router, http.MethodGet, "/api/holidays/2026-04-13%7Cthingyan/reminder", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var reminder models.Reminder
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reminder))
	assert.Equal(t, "09:30 AM", reminder.ScheduledTime)
}

func TestGetReminder_NotFound(t *testing.T) {
	router, svcs := newTestRouter(t, config.Server{HTTPAddress: ":8080"})
	svcs.reminder.EXPECT().GetReminder(gomock.Any(), "2026-04-13|thingyan").
		Return(models.Reminder{}, store.ErrReminderNotFound)

	rec := doRequest(t, router, http.MethodGet, "/api/holidays/2026-04-13%7Cthingyan/reminder", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestScheduleReminder(t *testing.T) {
	router, svcs := newTestRouter(t, config.Server{HTTPAddress: ":8080"})
	svcs.reminder.EXPECT().
		ScheduleReminder(gomock.Any(), models.ScheduleReminderRequest{
			HolidayID: "2026-04-13|thingyan",
			Name:      "Thingyan",
			Body:      "Pack!",
			Hour:      9,
			Minute:    30,
		}).
		Return(models.ScheduledReminder{NotificationID: "notif-1", ScheduledTime: "09:30 AM"}, nil)

	rec := doRequest(t, router, http.MethodPost, "/api/holidays/2026-04-13%7Cthingyan/reminder",
		`{"holidayId":"something-else","name":"Thingyan","body":"Pack!","hour":9,"minute":30}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var scheduled models.ScheduledReminder
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &scheduled))
	assert.Equal(t, "notif-1", scheduled.NotificationID)
}

func TestScheduleReminder_PastTime(t *testing.T) {
	router, svcs := newTestRouter(t, config.Server{HTTPAddress: ":8080"})
	svcs.reminder.EXPECT().ScheduleReminder(gomock.Any(), gomock.Any()).
		Return(models.ScheduledReminder{}, service.ErrPastTime)

	rec := doRequest(t, router, http.MethodPost, "/api/holidays/2020-01-01/reminder", `{"hour":9,"minute":0}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestScheduleReminder_InvalidClockTime(t *testing.T) {
	router, svcs := newTestRouter(t, config.Server{HTTPAddress: ":8080"})
	svcs.reminder.EXPECT().ScheduleReminder(gomock.Any(), gomock.Any()).
		Return(models.ScheduledReminder{}, service.ErrInvalidClockTime)

	rec := doRequest(t, router, http.MethodPost, "/api/holidays/2026-04-13/reminder", `{"hour":24,"minute":0}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteReminder(t *testing.T) {
	router, svcs := newTestRouter(t, config.Server{HTTPAddress: ":8080"})
	svcs.reminder.EXPECT().DeleteReminder(gomock.Any(), "2026-04-13|thingyan").Return(nil)

	rec := doRequest(t, router, http.MethodDelete, "/api/holidays/2026-04-13%7Cthingyan/reminder", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

// ── planner ─────────────────────────────────────────────────────────────────

func TestGetPlanner(t *testing.T) {
	router, svcs := newTestRouter(t, config.Server{HTTPAddress: ":8080"})
	svcs.planner.EXPECT().ListAll(gomock.Any()).
		Return(models.PlannerSnapshot{
			Reminders: []models.ReminderItem{{Reminder: models.Reminder{HolidayID: "2026-04-13|thingyan"}}},
			Notes:     []models.NoteItem{{NoteSet: models.NoteSet{HolidayID: "2026-12-25|christmas-day", Items: []string{"buy gifts"}}}},
		}, nil)

	rec := doRequest(t, router, http.MethodGet, "/api/planner", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var snapshot models.PlannerSnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snapshot))
	assert.Len(t, snapshot.Reminders, 1)
	assert.Len(t, snapshot.Notes, 1)
}

// ── trace id ────────────────────────────────────────────────────────────────

func TestTraceID_GeneratedWhenAbsent(t *testing.T) {
	router, svcs := newTestRouter(t, config.Server{HTTPAddress: ":8080"})
	svcs.appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(models.AppBuildInfo{})

	rec := doRequest(t, router, http.MethodGet, "/api/version", "")

	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
}

func TestTraceID_EchoedWhenPresent(t *testing.T) {
	router, svcs := newTestRouter(t, config.Server{HTTPAddress: ":8080"})
	svcs.appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(models.AppBuildInfo{})

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set("X-Trace-ID", "trace-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-123", rec.Header().Get("X-Trace-ID"))
}
