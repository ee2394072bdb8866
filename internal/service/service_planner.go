package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/holiday-planner/internal/keys"
	"github.com/MKhiriev/holiday-planner/internal/kvstore"
	"github.com/MKhiriev/holiday-planner/internal/logger"
	"github.com/MKhiriev/holiday-planner/models"
)

// defaultListingBody is shown for a reminder whose body sidecar is missing.
const defaultListingBody = "Check your plans!"

// plannerService reconstructs the aggregated listing directly from the
// key-value store. It scans every key once, keeps only base keys of known
// kinds, then fetches each record's whole key family in a single batch.
type plannerService struct {
	kv kvstore.Store

	logger *logger.Logger
}

func NewPlannerService(kv kvstore.Store, logger *logger.Logger) PlannerService {
	return &plannerService{
		kv:     kv,
		logger: logger,
	}
}

// ListAll returns every reminder and every non-empty note set, in store
// enumeration order. Malformed records are skipped and logged, never fatal:
// one corrupt entry must not take the whole listing down.
func (p *plannerService) ListAll(ctx context.Context) (models.PlannerSnapshot, error) {
	allKeys, err := p.kv.GetAllKeys(ctx)
	if err != nil {
		return models.PlannerSnapshot{}, fmt.Errorf("planner listing: %w", err)
	}

	// базовые ключи в порядке перечисления, сайдкары отбрасываем
	var reminderIDs, noteIDs []string
	fetch := make([]string, 0, len(allKeys))
	for _, key := range allKeys {
		kind, field, holidayID, ok := keys.Decode(key)
		if !ok || field != keys.FieldBase {
			continue
		}
		switch kind {
		case keys.KindReminder:
			reminderIDs = append(reminderIDs, holidayID)
		case keys.KindNote:
			noteIDs = append(noteIDs, holidayID)
		}
		fetch = append(fetch, keys.All(kind, holidayID)...)
	}

	if len(fetch) == 0 {
		return models.PlannerSnapshot{}, nil
	}

	values, err := p.kv.MultiGet(ctx, fetch)
	if err != nil {
		return models.PlannerSnapshot{}, fmt.Errorf("planner listing: %w", err)
	}

	snapshot := models.PlannerSnapshot{}
	for _, holidayID := range reminderIDs {
		snapshot.Reminders = append(snapshot.Reminders, models.ReminderItem{Reminder: p.buildReminder(holidayID, values)})
	}
	for _, holidayID := range noteIDs {
		note, ok := p.buildNoteSet(holidayID, values)
		if !ok {
			continue
		}
		snapshot.Notes = append(snapshot.Notes, models.NoteItem{NoteSet: note})
	}

	return snapshot, nil
}

func (p *plannerService) buildReminder(holidayID string, values map[string]string) models.Reminder {
	reminder := models.Reminder{
		HolidayID:      holidayID,
		NotificationID: values[keys.Encode(keys.KindReminder, keys.FieldBase, holidayID)],
		Body:           values[keys.Encode(keys.KindReminder, keys.FieldBody, holidayID)],
		ScheduledTime:  values[keys.Encode(keys.KindReminder, keys.FieldTime, holidayID)],
		Name:           values[keys.Encode(keys.KindReminder, keys.FieldName, holidayID)],
		Description:    values[keys.Encode(keys.KindReminder, keys.FieldDesc, holidayID)],
	}
	if reminder.Body == "" {
		reminder.Body = defaultListingBody
	}
	if reminder.Name == "" {
		reminder.Name = keys.DisplayName(holidayID)
	}
	return reminder
}

// buildNoteSet returns ok=false for records the listing must skip: payload
// missing, unparseable or decoding to an empty list.
func (p *plannerService) buildNoteSet(holidayID string, values map[string]string) (models.NoteSet, bool) {
	raw, found := values[keys.Encode(keys.KindNote, keys.FieldBase, holidayID)]
	if !found {
		return models.NoteSet{}, false
	}

	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		p.logger.Warn().Err(err).
			Str("holiday_id", holidayID).
			Msg("planner listing: malformed note payload skipped")
		return models.NoteSet{}, false
	}
	if len(items) == 0 {
		return models.NoteSet{}, false
	}

	note := models.NoteSet{
		HolidayID:   holidayID,
		Items:       items,
		Name:        values[keys.Encode(keys.KindNote, keys.FieldName, holidayID)],
		Description: values[keys.Encode(keys.KindNote, keys.FieldDesc, holidayID)],
	}
	if note.Name == "" {
		note.Name = keys.DisplayName(holidayID)
	}
	return note, true
}
