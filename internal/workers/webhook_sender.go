package workers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"traffix/internal/domain"
	"traffix/pkg/e"
	"traffix/pkg/retry"
)

type NotificationSource interface {
	BRPop(ctx context.Context, timeout time.Duration) (domain.ReportNotification, error)
}

type WebhookConfig struct {
	URL         string
	Workers     int
	PollTimeout time.Duration
	Retry       retry.Policy
}

// WebhookSender drains the notification queue and POSTs each report to
// the configured webhook.
type WebhookSender struct {
	logger *slog.Logger
	cfg    WebhookConfig
	queue  NotificationSource
	http   *http.Client
}

func NewWebhookSender(logger *slog.Logger, cfg WebhookConfig, q NotificationSource) *WebhookSender {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.PollTimeout <= 0 {
		cfg.PollTimeout = 5 * time.Second
	}
	if cfg.Retry.MaxAttempts <= 0 {
		cfg.Retry = retry.Policy{MaxAttempts: 3, BaseDelay: time.Second, Multiplier: 2}
	}
	return &WebhookSender{
		logger: logger,
		cfg:    cfg,
		queue:  q,
		http:   &http.Client{Timeout: 5 * time.Second},
	}
}

// Run blocks until ctx is canceled.
func (s *WebhookSender) Run(ctx context.Context) {
	s.logger.Info("webhookSender STARTED", slog.String("url", s.cfg.URL), slog.Int("workers", s.cfg.Workers))

	var wg sync.WaitGroup
	for i := 0; i < s.cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.worker(ctx)
		}()
	}
	wg.Wait()

	s.logger.Info("webhookSender STOPPED", slog.String("reason", ctx.Err().Error()))
}

func (s *WebhookSender) worker(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}

		n, err := s.queue.BRPop(ctx, s.cfg.PollTimeout)
		if err != nil {
			if errors.Is(err, e.ErrQueueEmpty) || ctx.Err() != nil {
				continue
			}
			s.logger.Error("BRPop failed", slog.Any("error", err))
			select {
			case <-ctx.Done():
			case <-time.After(500 * time.Millisecond):
			}
			continue
		}

		if err := s.Send(ctx, n); err != nil {
			s.logger.Error("webhook dropped",
				slog.String("report_id", n.ReportID.String()),
				slog.Any("error", err),
			)
		}
	}
}

// Send delivers one notification, retrying network errors and 5xx/429 responses.
func (s *WebhookSender) Send(ctx context.Context, n domain.ReportNotification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	attempt := 0
	return s.cfg.Retry.Do(ctx, func(ctx context.Context) error {
		attempt++
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URL, bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.http.Do(req)
		if err != nil {
			s.logger.Warn("webhook failed", slog.Int("attempt", attempt), slog.String("reason", err.Error()))
			return retry.Retryable(err)
		}
		_ = resp.Body.Close()

		switch {
		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			s.logger.Info("webhook delivered", slog.String("report_id", n.ReportID.String()))
			return nil
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			s.logger.Warn("webhook failed", slog.Int("attempt", attempt), slog.String("reason", resp.Status))
			return retry.Retryable(fmt.Errorf("webhook: %s", resp.Status))
		default:
			return fmt.Errorf("webhook: %s", resp.Status)
		}
	})
}
