// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/holiday-planner/internal/config"
	"github.com/MKhiriev/holiday-planner/internal/logger"
	"github.com/MKhiriev/holiday-planner/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAPI создаёт httpPlannerAPI, направленный на тестовый сервер
func newTestAPI(t *testing.T, serverURL string) PlannerAPI {
	t.Helper()
	adapterCfg := config.ClientAdapter{
		HTTPAddress:    serverURL,
		RequestTimeout: 5 * time.Second,
	}

	api, err := NewHTTPPlannerAPI(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return api
}

func TestNewHTTPPlannerAPI_InvalidAddress(t *testing.T) {
	_, err := NewHTTPPlannerAPI(config.ClientAdapter{HTTPAddress: ""}, logger.Nop())
	require.Error(t, err)

	_, err = NewHTTPPlannerAPI(config.ClientAdapter{HTTPAddress: "http://"}, logger.Nop())
	require.Error(t, err)
}

func TestNewHTTPPlannerAPI_SchemeDefaulted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]models.Holiday{})
	}))
	defer srv.Close()

	// адрес без схемы, как его задают флагом -adapter-address
	api := newTestAPI(t, srv.Listener.Addr().String())
	_, err := api.GetHolidays(context.Background())
	require.NoError(t, err)
}

// ── GetHolidays ─────────────────────────────────────────────────────────────

func TestGetHolidays_Success(t *testing.T) {
	want := []models.Holiday{
		{ID: "2026-04-13|thingyan-water-festival", Name: "Thingyan Water Festival", Date: "2026-04-13", Days: 4},
		{ID: "2026-12-25|christmas-day", Name: "Christmas Day", Date: "2026-12-25", Days: 1, Recurring: true},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/holidays", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL)
	got, err := api.GetHolidays(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetHolidays_InternalServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("internal server error"))
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL)
	_, err := api.GetHolidays(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
}

// ── Notes ───────────────────────────────────────────────────────────────────

func TestGetNotes_Success(t *testing.T) {
	want := models.NoteSet{
		HolidayID: "2026-04-13|thingyan",
		Items:     []string{"book tickets", "buy water guns"},
		Name:      "Thingyan",
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/holidays/2026-04-13|thingyan/notes", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL)
	got, err := api.GetNotes(context.Background(), "2026-04-13|thingyan")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSaveNotes_Success(t *testing.T) {
	var received models.SaveNotesRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/holidays/2026-04-13|thingyan/notes", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL)
	err := api.SaveNotes(context.Background(), "2026-04-13|thingyan", models.SaveNotesRequest{
		Items: []string{"book tickets"},
		Name:  "Thingyan",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"book tickets"}, received.Items)
	assert.Equal(t, "Thingyan", received.Name)
}

func TestSaveNotes_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("invalid holiday id"))
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL)
	err := api.SaveNotes(context.Background(), "???", models.SaveNotesRequest{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
}

// ── Reminder ────────────────────────────────────────────────────────────────

func TestGetReminder_Success(t *testing.T) {
	want := models.Reminder{
		HolidayID:      "2026-04-13|thingyan",
		NotificationID: "notif-1",
		Body:           "Pack for the festival",
		ScheduledTime:  "09:30 AM",
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/holidays/2026-04-13|thingyan/reminder", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL)
	got, err := api.GetReminder(context.Background(), "2026-04-13|thingyan")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetReminder_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("reminder not found"))
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL)
	_, err := api.GetReminder(context.Background(), "2026-04-13|thingyan")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestScheduleReminder_Success(t *testing.T) {
	var received models.ScheduleReminderRequest
	want := models.ScheduledReminder{NotificationID: "notif-7", ScheduledTime: "09:30 AM"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/holidays/2026-04-13|thingyan/reminder", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL)
	got, err := api.ScheduleReminder(context.Background(), "2026-04-13|thingyan", models.ScheduleReminderRequest{
		Name:   "Thingyan",
		Body:   "Pack for the festival",
		Hour:   9,
		Minute: 30,
	})

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 9, received.Hour)
	assert.Equal(t, 30, received.Minute)
}

func TestScheduleReminder_PastTime(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte("requested time is in the past"))
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL)
	_, err := api.ScheduleReminder(context.Background(), "2020-01-01|old", models.ScheduleReminderRequest{Hour: 9})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnprocessable)
}

func TestDeleteReminder_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/holidays/2026-04-13|thingyan/reminder", r.URL.Path)

		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL)
	err := api.DeleteReminder(context.Background(), "2026-04-13|thingyan")

	require.NoError(t, err)
}

// ── Planner ─────────────────────────────────────────────────────────────────

func TestGetPlanner_Success(t *testing.T) {
	want := models.PlannerSnapshot{
		Reminders: []models.ReminderItem{
			{Reminder: models.Reminder{HolidayID: "2026-04-13|thingyan", Body: "Pack!", ScheduledTime: "09:30 AM"}},
		},
		Notes: []models.NoteItem{
			{NoteSet: models.NoteSet{HolidayID: "2026-12-25|christmas-day", Items: []string{"buy gifts"}}},
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/planner", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL)
	got, err := api.GetPlanner(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Len(t, got.Items(), 2)
}

// ── Version ─────────────────────────────────────────────────────────────────

func TestGetVersion_Success(t *testing.T) {
	want := models.AppBuildInfo{Version: "1.2.3", Date: "2026-08-30", Commit: "abc1234"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL)
	got, err := api.GetVersion(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// ── Basic auth ──────────────────────────────────────────────────────────────

func TestBasicAuth_SentWhenConfigured(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "alice", user)
		assert.Equal(t, "s3cret", pass)

		_ = json.NewEncoder(w).Encode(models.AppBuildInfo{Version: "1.0.0"})
	}))
	defer srv.Close()

	adapterCfg := config.ClientAdapter{
		HTTPAddress:  srv.URL,
		AuthUser:     "alice",
		AuthPassword: "s3cret",
	}
	api, err := NewHTTPPlannerAPI(adapterCfg, logger.Nop())
	require.NoError(t, err)

	_, err = api.GetVersion(context.Background())
	require.NoError(t, err)
}

// ── mapHTTPError ────────────────────────────────────────────────────────────

func TestMapHTTPError_UnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL)
	_, err := api.GetVersion(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}
