package workers

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/MKhiriev/holiday-planner/internal/logger"
	"github.com/MKhiriev/holiday-planner/internal/service"
)

// SweepWorker periodically prunes reminders whose firing instant has passed,
// so the planner listing does not accumulate stale records. The schedule is a
// cron expression from the workers configuration.
type SweepWorker struct {
	planner   service.PlannerService
	reminders service.ReminderService
	schedule  string
	loc       *time.Location

	cron *cron.Cron

	logger *logger.Logger
}

func NewSweepWorker(planner service.PlannerService, reminders service.ReminderService, schedule string, logger *logger.Logger) *SweepWorker {
	return &SweepWorker{
		planner:   planner,
		reminders: reminders,
		schedule:  schedule,
		loc:       time.Local,
		cron:      cron.New(),
		logger:    logger,
	}
}

// Run performs one immediate sweep and then starts the cron schedule. The
// cron runner works in its own goroutine; Run itself does not block.
func (w *SweepWorker) Run() {
	w.Sweep()

	if _, err := w.cron.AddFunc(w.schedule, w.Sweep); err != nil {
		w.logger.Error().Err(err).Str("schedule", w.schedule).Msg("sweep: invalid cron expression, periodic sweep disabled")
		return
	}

	w.cron.Start()
	w.logger.Info().Str("schedule", w.schedule).Msg("sweep: worker started")
}

// Stop halts the cron runner. Already-running sweeps finish on their own.
func (w *SweepWorker) Stop() {
	w.cron.Stop()
}

// Sweep removes every reminder whose firing instant lies in the past.
func (w *SweepWorker) Sweep() {
	ctx := context.Background()

	snapshot, err := w.planner.ListAll(ctx)
	if err != nil {
		w.logger.Error().Err(err).Msg("sweep: error listing planner records")
		return
	}

	now := time.Now().In(w.loc)
	pruned := 0
	for _, item := range snapshot.Reminders {
		firesAt, ok := reminderFiresAt(item.HolidayID, item.ScheduledTime, w.loc)
		if !ok {
			w.logger.Warn().Str("holiday_id", item.HolidayID).Str("time", item.ScheduledTime).Msg("sweep: skipping unparseable reminder")
			continue
		}
		if !firesAt.Before(now) {
			continue
		}

		if err := w.reminders.DeleteReminder(ctx, item.HolidayID); err != nil {
			w.logger.Warn().Err(err).Str("holiday_id", item.HolidayID).Msg("sweep: error removing stale reminder")
			continue
		}
		pruned++
	}

	if pruned > 0 {
		w.logger.Info().Int("pruned", pruned).Msg("sweep: stale reminders removed")
	}
}
