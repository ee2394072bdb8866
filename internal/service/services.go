package service

import (
	"github.com/MKhiriev/holiday-planner/internal/config"
	"github.com/MKhiriev/holiday-planner/internal/kvstore"
	"github.com/MKhiriev/holiday-planner/internal/logger"
	"github.com/MKhiriev/holiday-planner/internal/notify"
	"github.com/MKhiriev/holiday-planner/internal/store"
)

type Services struct {
	NotesService    NotesService
	ReminderService ReminderService
	PlannerService  PlannerService
	HolidayService  HolidayService
	AppInfoService  AppInfoService
}

func NewServices(kv kvstore.Store, storages *store.Storages, scheduler notify.Scheduler, holidaySource HolidaySource, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		NotesService:    NewNotesService(storages.Notes, logger),
		ReminderService: NewReminderService(storages.Reminders, scheduler, logger),
		PlannerService:  NewPlannerService(kv, logger),
		HolidayService:  NewHolidayService(holidaySource, logger),
		AppInfoService:  appInfoService,
	}, nil
}
