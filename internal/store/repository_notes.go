package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/holiday-planner/internal/keys"
	"github.com/MKhiriev/holiday-planner/internal/kvstore"
	"github.com/MKhiriev/holiday-planner/internal/logger"
)

// NotesStorage implements [NotesRepository] over a key-value backend.
//
// Each holiday's notes occupy three keys: the JSON item array under the base
// key plus name/description sidecars used by the planner listing. All three
// are written together so the listing never observes a half-written record.
type NotesStorage struct {
	kv     kvstore.Store
	logger *logger.Logger
}

// NewNotesRepository constructs a [NotesRepository] backed by kv.
func NewNotesRepository(kv kvstore.Store, log *logger.Logger) *NotesStorage {
	return &NotesStorage{kv: kv, logger: log}
}

// LoadNotes returns the saved note items for a holiday. A missing key, a
// storage failure or a malformed payload all yield an empty list: the editor
// opening on a fresh screen beats surfacing a storage error to the user.
func (s *NotesStorage) LoadNotes(ctx context.Context, holidayID string) []string {
	holidayID = keys.NormalizeID(holidayID)

	raw, err := s.kv.Get(ctx, keys.Encode(keys.KindNote, keys.FieldBase, holidayID))
	if err != nil {
		if !errors.Is(err, kvstore.ErrKeyNotFound) {
			s.logger.Error().Err(err).
				Str("holiday_id", holidayID).
				Msg("load notes: storage read failed, returning empty list")
		}
		return []string{}
	}

	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.logger.Error().Err(err).
			Str("holiday_id", holidayID).
			Msg("load notes: malformed payload, returning empty list")
		return []string{}
	}
	if items == nil {
		items = []string{}
	}

	return items
}

// SaveNotes replaces the holiday's note list and refreshes its cached display
// metadata in one batch write.
func (s *NotesStorage) SaveNotes(ctx context.Context, holidayID string, items []string, name, description string) error {
	holidayID = keys.NormalizeID(holidayID)
	if items == nil {
		items = []string{}
	}

	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("save notes: encode items: %w", err)
	}

	pairs := []kvstore.KeyValue{
		{Key: keys.Encode(keys.KindNote, keys.FieldBase, holidayID), Value: string(payload)},
		{Key: keys.Encode(keys.KindNote, keys.FieldName, holidayID), Value: name},
		{Key: keys.Encode(keys.KindNote, keys.FieldDesc, holidayID), Value: description},
	}

	if err := s.kv.MultiSet(ctx, pairs); err != nil {
		return fmt.Errorf("save notes: %w", err)
	}

	s.logger.Debug().
		Str("holiday_id", holidayID).
		Int("items", len(items)).
		Msg("notes saved")

	return nil
}
