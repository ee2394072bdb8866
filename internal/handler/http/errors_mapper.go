package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/holiday-planner/internal/kvstore"
	"github.com/MKhiriev/holiday-planner/internal/service"
	"github.com/MKhiriev/holiday-planner/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidHolidayDate: http.StatusBadRequest,
	service.ErrInvalidClockTime:   http.StatusBadRequest,
	service.ErrPastTime:           http.StatusUnprocessableEntity,
	service.ErrHolidayNotFound:    http.StatusNotFound,

	store.ErrReminderNotFound: http.StatusNotFound,
	kvstore.ErrKeyNotFound:    http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
