package notify

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/holiday-planner/internal/logger"
	"github.com/MKhiriev/holiday-planner/internal/utils"
)

// LocalScheduler is an in-process [Scheduler] built on time.AfterFunc. Each
// registration gets a uuid and a timer; when the timer fires, the payload is
// handed to the configured [Notifier] and the registration is discarded.
//
// Timers do not survive a process restart — the rehydrate worker re-registers
// persisted reminders at startup.
type LocalScheduler struct {
	notifier Notifier
	ids      *utils.UUIDGenerator
	logger   *logger.Logger

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// NewLocalScheduler constructs a scheduler delivering through notifier.
func NewLocalScheduler(notifier Notifier, log *logger.Logger) *LocalScheduler {
	return &LocalScheduler{
		notifier: notifier,
		ids:      utils.NewUUIDGenerator(),
		logger:   log,
		timers:   make(map[string]*time.Timer),
	}
}

func (s *LocalScheduler) Schedule(_ context.Context, content Content, delay time.Duration) (string, error) {
	if delay <= 0 {
		return "", ErrNonPositiveDelay
	}

	id := s.ids.Generate()

	s.mu.Lock()
	s.timers[id] = time.AfterFunc(delay, func() { s.fire(id, content) })
	s.mu.Unlock()

	s.logger.Debug().
		Str("func", "LocalScheduler.Schedule").
		Str("notification_id", id).
		Dur("delay", delay).
		Msg("notification registered")

	return id, nil
}

func (s *LocalScheduler) Cancel(_ context.Context, id string) error {
	s.mu.Lock()
	timer, ok := s.timers[id]
	if ok {
		delete(s.timers, id)
	}
	s.mu.Unlock()

	if !ok {
		return ErrUnknownNotification
	}

	timer.Stop()
	s.logger.Debug().
		Str("func", "LocalScheduler.Cancel").
		Str("notification_id", id).
		Msg("notification cancelled")
	return nil
}

// Pending reports the number of registrations that have not fired yet.
func (s *LocalScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Shutdown stops every pending timer without delivering anything.
func (s *LocalScheduler) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
}

func (s *LocalScheduler) fire(id string, content Content) {
	s.mu.Lock()
	delete(s.timers, id)
	s.mu.Unlock()

	ctx := s.logger.WithContext(context.Background())
	if err := s.notifier.Notify(ctx, content); err != nil {
		s.logger.Err(err).
			Str("func", "LocalScheduler.fire").
			Str("notification_id", id).
			Str("title", content.Title).
			Msg("failed to deliver notification")
		return
	}

	s.logger.Info().
		Str("func", "LocalScheduler.fire").
		Str("notification_id", id).
		Str("title", content.Title).
		Msg("notification delivered")
}
