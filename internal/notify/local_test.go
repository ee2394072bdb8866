package notify

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/holiday-planner/internal/logger"
)

// captureNotifier records every delivered payload and signals on a channel.
type captureNotifier struct {
	mu        sync.Mutex
	delivered []Content
	fired     chan struct{}
}

func newCaptureNotifier() *captureNotifier {
	return &captureNotifier{fired: make(chan struct{}, 8)}
}

func (c *captureNotifier) Notify(_ context.Context, content Content) error {
	c.mu.Lock()
	c.delivered = append(c.delivered, content)
	c.mu.Unlock()
	c.fired <- struct{}{}
	return nil
}

func (c *captureNotifier) all() []Content {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Content(nil), c.delivered...)
}

func TestLocalScheduler_ScheduleAndFire(t *testing.T) {
	notifier := newCaptureNotifier()
	scheduler := NewLocalScheduler(notifier, logger.Nop())
	t.Cleanup(scheduler.Shutdown)

	id, err := scheduler.Schedule(context.Background(), Content{Title: "📅 Thingyan Reminder", Body: "Book leave!"}, 10*time.Millisecond)
	require.NoError(t, err)
	require.NotEmpty(t, id)
	assert.Equal(t, 1, scheduler.Pending())

	select {
	case <-notifier.fired:
	case <-time.After(2 * time.Second):
		t.Fatal("notification did not fire in time")
	}

	delivered := notifier.all()
	require.Len(t, delivered, 1)
	assert.Equal(t, "📅 Thingyan Reminder", delivered[0].Title)
	assert.Equal(t, "Book leave!", delivered[0].Body)
	assert.Equal(t, 0, scheduler.Pending())
}

func TestLocalScheduler_UniqueIDs(t *testing.T) {
	scheduler := NewLocalScheduler(newCaptureNotifier(), logger.Nop())
	t.Cleanup(scheduler.Shutdown)

	first, err := scheduler.Schedule(context.Background(), Content{Title: "a"}, time.Hour)
	require.NoError(t, err)
	second, err := scheduler.Schedule(context.Background(), Content{Title: "b"}, time.Hour)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Equal(t, 2, scheduler.Pending())
}

func TestLocalScheduler_CancelPreventsDelivery(t *testing.T) {
	notifier := newCaptureNotifier()
	scheduler := NewLocalScheduler(notifier, logger.Nop())
	t.Cleanup(scheduler.Shutdown)

	id, err := scheduler.Schedule(context.Background(), Content{Title: "soon"}, 30*time.Millisecond)
	require.NoError(t, err)

	require.NoError(t, scheduler.Cancel(context.Background(), id))
	assert.Equal(t, 0, scheduler.Pending())

	select {
	case <-notifier.fired:
		t.Fatal("cancelled notification must not fire")
	case <-time.After(150 * time.Millisecond):
	}
}

func TestLocalScheduler_CancelUnknownID(t *testing.T) {
	scheduler := NewLocalScheduler(newCaptureNotifier(), logger.Nop())

	err := scheduler.Cancel(context.Background(), "never-issued")
	assert.ErrorIs(t, err, ErrUnknownNotification)
}

func TestLocalScheduler_RejectsNonPositiveDelay(t *testing.T) {
	scheduler := NewLocalScheduler(newCaptureNotifier(), logger.Nop())

	_, err := scheduler.Schedule(context.Background(), Content{Title: "late"}, 0)
	assert.ErrorIs(t, err, ErrNonPositiveDelay)

	_, err = scheduler.Schedule(context.Background(), Content{Title: "later"}, -time.Minute)
	assert.ErrorIs(t, err, ErrNonPositiveDelay)
}

func TestLocalScheduler_ShutdownStopsEverything(t *testing.T) {
	notifier := newCaptureNotifier()
	scheduler := NewLocalScheduler(notifier, logger.Nop())

	for range 3 {
		_, err := scheduler.Schedule(context.Background(), Content{Title: "pending"}, 50*time.Millisecond)
		require.NoError(t, err)
	}

	scheduler.Shutdown()
	assert.Equal(t, 0, scheduler.Pending())

	select {
	case <-notifier.fired:
		t.Fatal("no notification may fire after shutdown")
	case <-time.After(150 * time.Millisecond):
	}
}
