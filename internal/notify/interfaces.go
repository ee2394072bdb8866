package notify

import (
	"context"
	"time"
)

// Content is the user-visible payload of one notification.
type Content struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Scheduler registers notifications to fire after a relative delay and
// cancels them by the opaque id it handed out. Cancellation of an already
// fired or unknown id returns [ErrUnknownNotification]; callers that treat
// cancellation as best-effort cleanup should log and continue.
type Scheduler interface {
	Schedule(ctx context.Context, content Content, delay time.Duration) (string, error)
	Cancel(ctx context.Context, id string) error
}

// Notifier delivers a fired notification to the user. Implementations decide
// the channel (webhook push, log output, etc.).
type Notifier interface {
	Notify(ctx context.Context, content Content) error
}
