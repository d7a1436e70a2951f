package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/internal/domain"
	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/pkg/e"
)

// Outbox is the Redis-list queue carrying emergency-contact and
// ledger-notarization messages to the notifier worker. Enqueue happens
// after the triggering write committed; a failed delivery never rolls
// anything back.
type Outbox struct {
	client *redis.Client
	key    string
}

func NewOutbox(client *redis.Client, key string) *Outbox {
	return &Outbox{client: client, key: key}
}

func (q *Outbox) Enqueue(ctx context.Context, n domain.OutboundNotification) error {
	b, err := json.Marshal(n)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

func (q *Outbox) BRPop(ctx context.Context, timeout time.Duration) (domain.OutboundNotification, error) {
	var n domain.OutboundNotification

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return n, e.ErrQueueEmpty
		}
		return n, err
	}
	if len(res) < 2 {
		return n, e.ErrQueueEmpty
	}
	if err := json.Unmarshal([]byte(res[1]), &n); err != nil {
		return n, err
	}
	return n, nil
}
