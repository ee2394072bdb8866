package http

import (
	"net/http"

	"github.com/MKhiriev/holiday-planner/internal/logger"
	"github.com/MKhiriev/holiday-planner/internal/utils"
)

func (h *Handler) getPlanner(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	snapshot, err := h.services.PlannerService.ListAll(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.getPlanner").Msg("error listing planner records")
		http.Error(w, "error listing planner records", statusFromError(err))
		return
	}

	utils.WriteJSON(w, snapshot, http.StatusOK)
}
