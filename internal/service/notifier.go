package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/internal/config"
	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/internal/domain"
	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/internal/storage/redis"
	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/pkg/e"
)

// Notifier drains the Redis outbox and delivers each message to its
// external collaborator: emergency contacts or the audit ledger.
// Delivery is best-effort with bounded retries; failures are logged
// and the message dropped, never bounced back to the request that
// produced it.
type Notifier struct {
	logger *slog.Logger
	cfg    config.NotifyConfig
	queue  *redis.Outbox
	http   *http.Client
}

func NewNotifier(logger *slog.Logger, cfg config.NotifyConfig, queue *redis.Outbox) *Notifier {
	return &Notifier{
		logger: logger,
		cfg:    cfg,
		queue:  queue,
		http:   &http.Client{Timeout: 5 * time.Second},
	}
}

func (n *Notifier) Run(ctx context.Context) {
	if n.cfg.Disabled {
		n.logger.Info("notifier disabled")
		return
	}
	n.logger.Info("notifier started")

	for {
		select {
		case <-ctx.Done():
			n.logger.Info("notifier stopped", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		msg, err := n.queue.BRPop(ctx, 5*time.Second)
		if err != nil {
			if errors.Is(err, e.ErrQueueEmpty) {
				continue
			}
			if ctx.Err() != nil {
				return
			}
			n.logger.Error("outbox pop failed", slog.Any("error", err))
			time.Sleep(500 * time.Millisecond)
			continue
		}

		url := n.targetURL(msg.Kind)
		if url == "" {
			n.logger.Warn("no endpoint for notification kind", slog.String("kind", string(msg.Kind)))
			continue
		}
		n.sendWithRetry(ctx, url, msg)
	}
}

func (n *Notifier) targetURL(kind domain.NotificationKind) string {
	switch kind {
	case domain.NotifyEmergencyContact:
		return n.cfg.EmergencyURL
	case domain.NotifyLedgerNotarization:
		return n.cfg.LedgerURL
	default:
		return ""
	}
}

func (n *Notifier) sendWithRetry(ctx context.Context, url string, msg domain.OutboundNotification) {
	const maxRetries = 3

	body, err := json.Marshal(msg)
	if err != nil {
		n.logger.Error("marshal notification failed", slog.Any("error", err))
		return
	}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if ctx.Err() != nil {
			return
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			n.logger.Error("build notification request failed", slog.Any("error", err))
			return
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := n.http.Do(req)
		if err == nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
			_ = resp.Body.Close()
			return
		}
		if resp != nil {
			_ = resp.Body.Close()
		}

		reason := "unknown"
		if err != nil {
			reason = err.Error()
		} else if resp != nil {
			reason = resp.Status
		}
		n.logger.Warn("notification delivery failed",
			slog.Int("attempt", attempt),
			slog.String("kind", string(msg.Kind)),
			slog.String("reason", reason))

		time.Sleep(time.Duration(attempt) * time.Second)
	}
}
