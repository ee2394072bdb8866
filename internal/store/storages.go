package store

import (
	"github.com/MKhiriev/holiday-planner/internal/kvstore"
	"github.com/MKhiriev/holiday-planner/internal/logger"
)

// Storages bundles every repository over one shared key-value store.
type Storages struct {
	Notes     NotesRepository
	Reminders ReminderRepository
}

// NewStorages wires the repositories to the given backend.
func NewStorages(kv kvstore.Store, log *logger.Logger) *Storages {
	return &Storages{
		Notes:     NewNotesRepository(kv, log),
		Reminders: NewReminderRepository(kv, log),
	}
}
