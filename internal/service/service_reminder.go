// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/holiday-planner/internal/keys"
	"github.com/MKhiriev/holiday-planner/internal/logger"
	"github.com/MKhiriev/holiday-planner/internal/notify"
	"github.com/MKhiriev/holiday-planner/internal/store"
	"github.com/MKhiriev/holiday-planner/models"
)

const (
	// defaultNotificationBody is used in the delivered notification when the
	// caller supplied no message.
	defaultNotificationBody = "Check your plans for today!"

	// displayTimeLayout is the 12-hour clock string persisted for listings.
	displayTimeLayout = "03:04 PM"

	holidayDateLayout = "2006-01-02"
)

type reminderService struct {
	reminderRepository store.ReminderRepository
	scheduler          notify.Scheduler

	// loc and now are injectable for tests; production uses the process
	// local zone and wall clock.
	loc *time.Location
	now func() time.Time

	logger *logger.Logger
}

func NewReminderService(reminderRepository store.ReminderRepository, scheduler notify.Scheduler, logger *logger.Logger) ReminderService {
	return &reminderService{
		reminderRepository: reminderRepository,
		scheduler:          scheduler,
		loc:                time.Local,
		now:                time.Now,
		logger:             logger,
	}
}

// ScheduleReminder replaces the holiday's reminder registration.
//
// The previous registration, if any, is cancelled first on a best-effort
// basis: a failed cancel is logged and scheduling proceeds. When the
// requested instant turns out to be in the past, the old registration stays
// cancelled but its stored record is kept untouched.
func (s *reminderService) ScheduleReminder(ctx context.Context, req models.ScheduleReminderRequest) (models.ScheduledReminder, error) {
	holidayID := keys.NormalizeID(req.HolidayID)

	existingID, err := s.reminderRepository.ActiveReminderID(ctx, holidayID)
	if err != nil {
		return models.ScheduledReminder{}, fmt.Errorf("schedule reminder: %w", err)
	}
	if existingID != "" {
		if cancelErr := s.scheduler.Cancel(ctx, existingID); cancelErr != nil {
			s.logger.Warn().Err(cancelErr).
				Str("holiday_id", holidayID).
				Str("notification_id", existingID).
				Msg("cancel of previous reminder failed, continuing")
		}
	}

	target, err := s.reminderInstant(holidayID, req.Hour, req.Minute)
	if err != nil {
		return models.ScheduledReminder{}, err
	}

	delay := target.Sub(s.now())
	if delay <= 0 {
		return models.ScheduledReminder{}, ErrPastTime
	}

	name := req.Name
	if name == "" {
		name = keys.DisplayName(holidayID)
	}
	body := req.Body
	if body == "" {
		body = defaultNotificationBody
	}

	notificationID, err := s.scheduler.Schedule(ctx, notify.Content{
		Title: fmt.Sprintf("📅 %s Reminder", name),
		Body:  body,
	}, delay)
	if err != nil {
		return models.ScheduledReminder{}, fmt.Errorf("schedule reminder: %w", err)
	}

	displayTime := target.Format(displayTimeLayout)

	err = s.reminderRepository.SaveReminder(ctx, models.Reminder{
		HolidayID:      holidayID,
		NotificationID: notificationID,
		Body:           req.Body,
		ScheduledTime:  displayTime,
		Name:           req.Name,
		Description:    req.Description,
	})
	if err != nil {
		return models.ScheduledReminder{}, fmt.Errorf("schedule reminder: %w", err)
	}

	s.logger.Info().
		Str("holiday_id", holidayID).
		Str("notification_id", notificationID).
		Str("scheduled_time", displayTime).
		Msg("reminder scheduled")

	return models.ScheduledReminder{
		NotificationID: notificationID,
		ScheduledTime:  displayTime,
	}, nil
}

func (s *reminderService) GetReminder(ctx context.Context, holidayID string) (models.Reminder, error) {
	return s.reminderRepository.GetReminder(ctx, holidayID)
}

// DeleteReminder cancels and removes the holiday's reminder. Storage is
// authoritative: a failed scheduler cancel is logged, the record is removed
// regardless.
func (s *reminderService) DeleteReminder(ctx context.Context, holidayID string) error {
	holidayID = keys.NormalizeID(holidayID)

	existingID, err := s.reminderRepository.ActiveReminderID(ctx, holidayID)
	if err != nil {
		return fmt.Errorf("delete reminder: %w", err)
	}
	if existingID == "" {
		return nil
	}

	if cancelErr := s.scheduler.Cancel(ctx, existingID); cancelErr != nil {
		s.logger.Warn().Err(cancelErr).
			Str("holiday_id", holidayID).
			Str("notification_id", existingID).
			Msg("cancel of reminder failed, removing record anyway")
	}

	if err := s.reminderRepository.RemoveReminder(ctx, holidayID); err != nil {
		return fmt.Errorf("delete reminder: %w", err)
	}

	s.logger.Info().
		Str("holiday_id", holidayID).
		Msg("reminder deleted")

	return nil
}

// reminderInstant combines the date part of the holiday identifier with the
// requested local time of day.
func (s *reminderService) reminderInstant(holidayID string, hour, minute int) (time.Time, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return time.Time{}, fmt.Errorf("%w: %02d:%02d", ErrInvalidClockTime, hour, minute)
	}

	day, err := time.ParseInLocation(holidayDateLayout, keys.DatePart(holidayID), s.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidHolidayDate, holidayID)
	}

	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, s.loc), nil
}
