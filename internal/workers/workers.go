package workers

import (
	"github.com/MKhiriev/holiday-planner/internal/config"
	"github.com/MKhiriev/holiday-planner/internal/logger"
	"github.com/MKhiriev/holiday-planner/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the background workers of the server process: one
// startup rehydration pass and the periodic stale-reminder sweep.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewRehydrateWorker(services.PlannerService, services.ReminderService, logger),
			NewSweepWorker(services.PlannerService, services.ReminderService, cfg.SweepSchedule, logger),
		},
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
