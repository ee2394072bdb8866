package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/holiday-planner/internal/config"
	"github.com/MKhiriev/holiday-planner/internal/logger"
	"github.com/MKhiriev/holiday-planner/internal/utils"
	"github.com/MKhiriev/holiday-planner/models"
)

type httpPlannerAPI struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPPlannerAPI constructs an HTTP/REST implementation of [PlannerAPI].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPPlannerAPI(adapterCfg config.ClientAdapter, logger *logger.Logger) (PlannerAPI, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	if adapterCfg.AuthUser != "" {
		client.SetBasicAuth(adapterCfg.AuthUser, adapterCfg.AuthPassword)
	}

	return &httpPlannerAPI{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetHolidays implements [PlannerAPI]. It GETs /api/holidays and decodes the
// upcoming holiday list.
func (h *httpPlannerAPI) GetHolidays(ctx context.Context) ([]models.Holiday, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/holidays")
	if err != nil {
		return nil, fmt.Errorf("get holidays request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var holidays []models.Holiday
	if err = json.Unmarshal(resp.Body(), &holidays); err != nil {
		return nil, fmt.Errorf("decode holidays response: %w", err)
	}

	return holidays, nil
}

// GetNotes implements [PlannerAPI]. It GETs /api/holidays/{id}/notes.
func (h *httpPlannerAPI) GetNotes(ctx context.Context, holidayID string) (models.NoteSet, error) {
	var notes models.NoteSet

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", holidayID).
		SetResult(&notes).
		Get("/api/holidays/{id}/notes")
	if err != nil {
		return models.NoteSet{}, fmt.Errorf("get notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.NoteSet{}, err
	}

	return notes, nil
}

// SaveNotes implements [PlannerAPI]. It PUTs the replacement note list to
// PUT /api/holidays/{id}/notes.
func (h *httpPlannerAPI) SaveNotes(ctx context.Context, holidayID string, req models.SaveNotesRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", holidayID).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put("/api/holidays/{id}/notes")
	if err != nil {
		return fmt.Errorf("save notes request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetReminder implements [PlannerAPI]. It GETs /api/holidays/{id}/reminder.
// Returns [ErrNotFound] (wrapped) when no reminder exists.
func (h *httpPlannerAPI) GetReminder(ctx context.Context, holidayID string) (models.Reminder, error) {
	var reminder models.Reminder

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", holidayID).
		SetResult(&reminder).
		Get("/api/holidays/{id}/reminder")
	if err != nil {
		return models.Reminder{}, fmt.Errorf("get reminder request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Reminder{}, err
	}

	return reminder, nil
}

// ScheduleReminder implements [PlannerAPI]. It POSTs the schedule request to
// POST /api/holidays/{id}/reminder. Returns [ErrUnprocessable] (wrapped)
// when the server rejects a past instant.
func (h *httpPlannerAPI) ScheduleReminder(ctx context.Context, holidayID string, req models.ScheduleReminderRequest) (models.ScheduledReminder, error) {
	var scheduled models.ScheduledReminder

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", holidayID).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&scheduled).
		Post("/api/holidays/{id}/reminder")
	if err != nil {
		return models.ScheduledReminder{}, fmt.Errorf("schedule reminder request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ScheduledReminder{}, err
	}

	return scheduled, nil
}

// DeleteReminder implements [PlannerAPI]. It sends DELETE
// /api/holidays/{id}/reminder. The server treats a missing reminder as a
// successful no-op.
func (h *httpPlannerAPI) DeleteReminder(ctx context.Context, holidayID string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", holidayID).
		Delete("/api/holidays/{id}/reminder")
	if err != nil {
		return fmt.Errorf("delete reminder request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetPlanner implements [PlannerAPI]. It GETs /api/planner and decodes the
// aggregated snapshot.
func (h *httpPlannerAPI) GetPlanner(ctx context.Context) (models.PlannerSnapshot, error) {
	var snapshot models.PlannerSnapshot

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&snapshot).
		Get("/api/planner")
	if err != nil {
		return models.PlannerSnapshot{}, fmt.Errorf("get planner request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PlannerSnapshot{}, err
	}

	return snapshot, nil
}

// GetVersion implements [PlannerAPI]. It GETs /api/version.
func (h *httpPlannerAPI) GetVersion(ctx context.Context) (models.AppBuildInfo, error) {
	var info models.AppBuildInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&info).
		Get("/api/version")
	if err != nil {
		return models.AppBuildInfo{}, fmt.Errorf("get version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AppBuildInfo{}, err
	}

	return info, nil
}
