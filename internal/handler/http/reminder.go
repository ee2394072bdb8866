package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/holiday-planner/internal/logger"
	"github.com/MKhiriev/holiday-planner/internal/utils"
	"github.com/MKhiriev/holiday-planner/models"
)

func (h *Handler) getReminder(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	holidayID := holidayIDParam(r)
	if holidayID == "" {
		http.Error(w, "missing holiday id", http.StatusBadRequest)
		return
	}

	reminder, err := h.services.ReminderService.GetReminder(r.Context(), holidayID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getReminder").Msg("error getting reminder")
		http.Error(w, "error getting reminder", statusFromError(err))
		return
	}

	utils.WriteJSON(w, reminder, http.StatusOK)
}

func (h *Handler) scheduleReminder(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	holidayID := holidayIDParam(r)
	if holidayID == "" {
		http.Error(w, "missing holiday id", http.StatusBadRequest)
		return
	}

	var req models.ScheduleReminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.scheduleReminder").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	// идентификатор берём из URL, а не из тела
	req.HolidayID = holidayID

	scheduled, err := h.services.ReminderService.ScheduleReminder(r.Context(), req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.scheduleReminder").Msg("error scheduling reminder")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, scheduled, http.StatusCreated)
}

func (h *Handler) deleteReminder(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	holidayID := holidayIDParam(r)
	if holidayID == "" {
		http.Error(w, "missing holiday id", http.StatusBadRequest)
		return
	}

	if err := h.services.ReminderService.DeleteReminder(r.Context(), holidayID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteReminder").Msg("error deleting reminder")
		http.Error(w, "error deleting reminder", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
