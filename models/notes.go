package models

// NoteSet is the ordered collection of free-text notes attached to one
// holiday, plus cached display metadata so listing screens can render it
// without re-resolving the holiday dataset.
//
// Items are replaced wholesale on every save: there is no append or
// single-item delete primitive. Insertion order is meaningful and duplicates
// are allowed. A NoteSet with no items is treated as logically deleted by
// the planner listing.
type NoteSet struct {
	HolidayID   string   `json:"holidayId"`
	Items       []string `json:"items"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
}

// SaveNotesRequest is the transport payload for replacing a holiday's notes.
// The holiday identifier travels in the URL, not the body.
type SaveNotesRequest struct {
	Items       []string `json:"items"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
}
