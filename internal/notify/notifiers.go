package notify

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/holiday-planner/internal/logger"
)

// WebhookConfig configures push delivery to an ntfy-compatible endpoint.
type WebhookConfig struct {
	// URL is the full topic URL (e.g. "https://ntfy.sh/my-holidays").
	URL string

	// Token is an optional bearer token for protected topics.
	Token string

	Timeout time.Duration
}

// webhookNotifier publishes fired notifications to an ntfy-compatible topic:
// the body is the message text, the title travels in the Title header.
type webhookNotifier struct {
	client *resty.Client
	url    string
}

// NewWebhookNotifier constructs a push [Notifier] for the given topic URL.
func NewWebhookNotifier(cfg WebhookConfig) Notifier {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	cli := resty.New().SetTimeout(cfg.Timeout)
	if cfg.Token != "" {
		cli.SetAuthToken(cfg.Token)
	}

	return &webhookNotifier{client: cli, url: strings.TrimRight(cfg.URL, "/")}
}

func (w *webhookNotifier) Notify(ctx context.Context, content Content) error {
	resp, err := w.client.R().
		SetContext(ctx).
		SetHeader("Title", content.Title).
		SetBody(content.Body).
		Post(w.url)
	if err != nil {
		return fmt.Errorf("push notification request: %w", err)
	}
	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return fmt.Errorf("push notification: http %d: %s", resp.StatusCode(), strings.TrimSpace(string(resp.Body())))
	}
	return nil
}

// logNotifier writes fired notifications to the application log. Used in
// headless runs and as the default when no webhook is configured.
type logNotifier struct {
	logger *logger.Logger
}

// NewLogNotifier constructs a [Notifier] that only logs.
func NewLogNotifier(log *logger.Logger) Notifier {
	return &logNotifier{logger: log}
}

func (l *logNotifier) Notify(_ context.Context, content Content) error {
	l.logger.Info().
		Str("title", content.Title).
		Str("body", content.Body).
		Msg("notification fired")
	return nil
}
