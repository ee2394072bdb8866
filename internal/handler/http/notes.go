package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/holiday-planner/internal/logger"
	"github.com/MKhiriev/holiday-planner/internal/utils"
	"github.com/MKhiriev/holiday-planner/models"
)

func (h *Handler) getNotes(w http.ResponseWriter, r *http.Request) {
	holidayID := holidayIDParam(r)
	if holidayID == "" {
		http.Error(w, "missing holiday id", http.StatusBadRequest)
		return
	}

	items := h.services.NotesService.GetNotes(r.Context(), holidayID)

	utils.WriteJSON(w, models.NoteSet{
		HolidayID: holidayID,
		Items:     items,
	}, http.StatusOK)
}

func (h *Handler) saveNotes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	holidayID := holidayIDParam(r)
	if holidayID == "" {
		http.Error(w, "missing holiday id", http.StatusBadRequest)
		return
	}

	var req models.SaveNotesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.saveNotes").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.NotesService.SaveNotes(r.Context(), holidayID, req.Items, req.Name, req.Description); err != nil {
		log.Err(err).Str("func", "*Handler.saveNotes").Msg("error saving notes")
		http.Error(w, "error saving notes", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.NoteSet{
		HolidayID:   holidayID,
		Items:       req.Items,
		Name:        req.Name,
		Description: req.Description,
	}, http.StatusOK)
}
