package models

// PlannerItem is the tagged union over the two record kinds the planner
// listing can return. The two implementations are [ReminderItem] and
// [NoteItem]; consumers switch over the concrete type instead of branching
// on a string discriminator.
type PlannerItem interface {
	// HolidayKey returns the holiday identifier the item belongs to.
	HolidayKey() string

	plannerItem()
}

// ReminderItem wraps a Reminder for the aggregated planner listing.
type ReminderItem struct {
	Reminder
}

// NoteItem wraps a NoteSet for the aggregated planner listing.
type NoteItem struct {
	NoteSet
}

func (r ReminderItem) HolidayKey() string { return r.HolidayID }
func (n NoteItem) HolidayKey() string     { return n.HolidayID }

func (ReminderItem) plannerItem() {}
func (NoteItem) plannerItem()     {}

// PlannerSnapshot is the full persisted working set reconstructed from the
// key-value store: every reminder and every non-empty note set, in store
// enumeration order. Chronological ordering is the presentation layer's
// concern.
type PlannerSnapshot struct {
	Reminders []ReminderItem `json:"reminders"`
	Notes     []NoteItem     `json:"notes"`
}

// Items flattens the snapshot into one tagged-union sequence, reminders
// first, preserving the order within each kind.
func (s PlannerSnapshot) Items() []PlannerItem {
	items := make([]PlannerItem, 0, len(s.Reminders)+len(s.Notes))
	for _, r := range s.Reminders {
		items = append(items, r)
	}
	for _, n := range s.Notes {
		items = append(items, n)
	}
	return items
}
