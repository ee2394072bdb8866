package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.basicAuth)

		r.Get("/api/holidays", h.listHolidays)
		r.Route("/api/holidays/{id}", func(r chi.Router) {
			r.Get("/notes", h.getNotes)
			r.Put("/notes", h.saveNotes)
			r.Get("/reminder", h.getReminder)
			r.Post("/reminder", h.scheduleReminder)
			r.Delete("/reminder", h.deleteReminder)
		})
		r.Get("/api/planner", h.getPlanner)
		r.Get("/api/planner/export.ics", h.exportCalendar)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
