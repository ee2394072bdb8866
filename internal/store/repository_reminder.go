// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/holiday-planner/internal/keys"
	"github.com/MKhiriev/holiday-planner/internal/kvstore"
	"github.com/MKhiriev/holiday-planner/internal/logger"
	"github.com/MKhiriev/holiday-planner/models"
)

// Fallbacks applied when a reminder record is missing its sidecar values.
const (
	defaultReminderBody = "Check your plans!"
)

// ReminderStorage implements [ReminderRepository] over a key-value backend.
//
// A reminder occupies five keys: the notification id under the base key plus
// body/time/name/desc sidecars. Writes and removals always cover the full
// family in a single batch, so the record is either whole or absent.
type ReminderStorage struct {
	kv     kvstore.Store
	logger *logger.Logger
}

// NewReminderRepository constructs a [ReminderRepository] backed by kv.
func NewReminderRepository(kv kvstore.Store, log *logger.Logger) *ReminderStorage {
	return &ReminderStorage{kv: kv, logger: log}
}

// ActiveReminderID returns the notification id stored under the holiday's
// base key, or "" when no reminder exists. Unlike the notes path this does
// not fail soft: callers replace an existing reminder based on this answer,
// and a wrong "" on a flaky backend would leak a scheduled notification.
func (s *ReminderStorage) ActiveReminderID(ctx context.Context, holidayID string) (string, error) {
	holidayID = keys.NormalizeID(holidayID)

	id, err := s.kv.Get(ctx, keys.Encode(keys.KindReminder, keys.FieldBase, holidayID))
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("active reminder lookup: %w", err)
	}

	return id, nil
}

// SaveReminder persists the full five-key record in one batch.
func (s *ReminderStorage) SaveReminder(ctx context.Context, reminder models.Reminder) error {
	holidayID := keys.NormalizeID(reminder.HolidayID)

	pairs := []kvstore.KeyValue{
		{Key: keys.Encode(keys.KindReminder, keys.FieldBase, holidayID), Value: reminder.NotificationID},
		{Key: keys.Encode(keys.KindReminder, keys.FieldBody, holidayID), Value: reminder.Body},
		{Key: keys.Encode(keys.KindReminder, keys.FieldTime, holidayID), Value: reminder.ScheduledTime},
		{Key: keys.Encode(keys.KindReminder, keys.FieldName, holidayID), Value: reminder.Name},
		{Key: keys.Encode(keys.KindReminder, keys.FieldDesc, holidayID), Value: reminder.Description},
	}

	if err := s.kv.MultiSet(ctx, pairs); err != nil {
		return fmt.Errorf("save reminder: %w", err)
	}

	s.logger.Debug().
		Str("holiday_id", holidayID).
		Str("notification_id", reminder.NotificationID).
		Str("scheduled_time", reminder.ScheduledTime).
		Msg("reminder saved")

	return nil
}

// GetReminder reconstructs the holiday's reminder record. Missing sidecars
// are defaulted rather than treated as corruption: the body falls back to a
// generic message and the name is derived from the identifier.
// Returns [ErrReminderNotFound] when the base key is absent.
func (s *ReminderStorage) GetReminder(ctx context.Context, holidayID string) (models.Reminder, error) {
	holidayID = keys.NormalizeID(holidayID)

	fetched, err := s.kv.MultiGet(ctx, keys.All(keys.KindReminder, holidayID))
	if err != nil {
		return models.Reminder{}, fmt.Errorf("get reminder: %w", err)
	}

	notificationID, ok := fetched[keys.Encode(keys.KindReminder, keys.FieldBase, holidayID)]
	if !ok || notificationID == "" {
		return models.Reminder{}, ErrReminderNotFound
	}

	reminder := models.Reminder{
		HolidayID:      holidayID,
		NotificationID: notificationID,
		Body:           fetched[keys.Encode(keys.KindReminder, keys.FieldBody, holidayID)],
		ScheduledTime:  fetched[keys.Encode(keys.KindReminder, keys.FieldTime, holidayID)],
		Name:           fetched[keys.Encode(keys.KindReminder, keys.FieldName, holidayID)],
		Description:    fetched[keys.Encode(keys.KindReminder, keys.FieldDesc, holidayID)],
	}
	if reminder.Body == "" {
		reminder.Body = defaultReminderBody
	}
	if reminder.Name == "" {
		reminder.Name = keys.DisplayName(holidayID)
	}

	return reminder, nil
}

// RemoveReminder deletes the full five-key record in one batch. Removing an
// absent record succeeds.
func (s *ReminderStorage) RemoveReminder(ctx context.Context, holidayID string) error {
	holidayID = keys.NormalizeID(holidayID)

	if err := s.kv.MultiRemove(ctx, keys.All(keys.KindReminder, holidayID)); err != nil {
		return fmt.Errorf("remove reminder: %w", err)
	}

	s.logger.Debug().
		Str("holiday_id", holidayID).
		Msg("reminder removed")

	return nil
}
