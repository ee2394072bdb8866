package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/holiday-planner/internal/kvstore"
	"github.com/MKhiriev/holiday-planner/internal/logger"
	"github.com/MKhiriev/holiday-planner/models"
)

func testReminder() models.Reminder {
	return models.Reminder{
		HolidayID:      "2026-04-13|thingyan",
		NotificationID: "f8c9a2e1-notify",
		Body:           "Pack water balloons!",
		ScheduledTime:  "09:30 AM",
		Name:           "Thingyan",
		Description:    "Water festival",
	}
}

func TestReminderStorage_SaveAndGet(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	repo := NewReminderRepository(kv, logger.Nop())
	ctx := context.Background()

	require.NoError(t, repo.SaveReminder(ctx, testReminder()))

	got, err := repo.GetReminder(ctx, "2026-04-13|thingyan")
	require.NoError(t, err)
	assert.Equal(t, testReminder(), got)

	// все пять ключей записаны одним батчем
	allKeys, err := kv.GetAllKeys(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"reminder:2026-04-13|thingyan",
		"reminder:body:2026-04-13|thingyan",
		"reminder:time:2026-04-13|thingyan",
		"reminder:name:2026-04-13|thingyan",
		"reminder:desc:2026-04-13|thingyan",
	}, allKeys)
}

func TestReminderStorage_ActiveReminderID(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	repo := NewReminderRepository(kv, logger.Nop())
	ctx := context.Background()

	id, err := repo.ActiveReminderID(ctx, "2026-04-13|thingyan")
	require.NoError(t, err)
	assert.Empty(t, id)

	require.NoError(t, repo.SaveReminder(ctx, testReminder()))

	id, err = repo.ActiveReminderID(ctx, "2026-04-13|thingyan")
	require.NoError(t, err)
	assert.Equal(t, "f8c9a2e1-notify", id)
}

func TestReminderStorage_ActiveReminderIDStoreFailure(t *testing.T) {
	repo := NewReminderRepository(&brokenStore{}, logger.Nop())

	_, err := repo.ActiveReminderID(context.Background(), "2026-04-13|thingyan")
	assert.ErrorIs(t, err, errStoreBroken)
}

func TestReminderStorage_GetMissingReturnsNotFound(t *testing.T) {
	repo := NewReminderRepository(kvstore.NewMemoryStore(), logger.Nop())

	_, err := repo.GetReminder(context.Background(), "2026-12-25|christmas")
	assert.ErrorIs(t, err, ErrReminderNotFound)
}

func TestReminderStorage_GetDefaultsMissingSidecars(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	repo := NewReminderRepository(kv, logger.Nop())
	ctx := context.Background()

	// только базовый ключ, сайдкары потеряны
	require.NoError(t, kv.Set(ctx, "reminder:2026-04-13|thingyan", "orphan-notify-id"))

	got, err := repo.GetReminder(ctx, "2026-04-13|thingyan")
	require.NoError(t, err)
	assert.Equal(t, "orphan-notify-id", got.NotificationID)
	assert.Equal(t, "Check your plans!", got.Body)
	assert.Equal(t, "2026 04 13 thingyan", got.Name)
	assert.Empty(t, got.ScheduledTime)
	assert.Empty(t, got.Description)
}

func TestReminderStorage_RemoveDeletesWholeFamily(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	repo := NewReminderRepository(kv, logger.Nop())
	ctx := context.Background()

	require.NoError(t, repo.SaveReminder(ctx, testReminder()))
	require.NoError(t, repo.RemoveReminder(ctx, "2026-04-13|thingyan"))

	allKeys, err := kv.GetAllKeys(ctx)
	require.NoError(t, err)
	assert.Empty(t, allKeys)

	_, err = repo.GetReminder(ctx, "2026-04-13|thingyan")
	assert.ErrorIs(t, err, ErrReminderNotFound)
}

func TestReminderStorage_RemoveMissingIsNoop(t *testing.T) {
	repo := NewReminderRepository(kvstore.NewMemoryStore(), logger.Nop())

	assert.NoError(t, repo.RemoveReminder(context.Background(), "2026-12-25|christmas"))
}

func TestReminderStorage_SaveReplacesExisting(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	repo := NewReminderRepository(kv, logger.Nop())
	ctx := context.Background()

	require.NoError(t, repo.SaveReminder(ctx, testReminder()))

	updated := testReminder()
	updated.NotificationID = "second-notify"
	updated.ScheduledTime = "06:00 PM"
	require.NoError(t, repo.SaveReminder(ctx, updated))

	got, err := repo.GetReminder(ctx, "2026-04-13|thingyan")
	require.NoError(t, err)
	assert.Equal(t, "second-notify", got.NotificationID)
	assert.Equal(t, "06:00 PM", got.ScheduledTime)
}
