package http

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/holiday-planner/internal/keys"
)

// holidayIDParam extracts and canonicalizes the {id} route parameter.
// Composite identifiers arrive percent-encoded ("2026-04-13%7Cthingyan"), so
// the raw parameter is unescaped before normalization. Returns an empty
// string when the parameter is missing or unusable.
func holidayIDParam(r *http.Request) string {
	raw := chi.URLParam(r, "id")
	if unescaped, err := url.PathUnescape(raw); err == nil {
		raw = unescaped
	}
	return keys.NormalizeID(raw)
}
