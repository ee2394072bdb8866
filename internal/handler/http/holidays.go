package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/holiday-planner/internal/logger"
	"github.com/MKhiriev/holiday-planner/internal/utils"
)

func (h *Handler) listHolidays(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	holidays, err := h.services.HolidayService.Upcoming(r.Context(), time.Now())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listHolidays").Msg("error listing holidays")
		http.Error(w, "error listing holidays", statusFromError(err))
		return
	}

	utils.WriteJSON(w, holidays, http.StatusOK)
}
