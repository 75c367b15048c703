package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"traffix/internal/domain"
	"traffix/pkg/e"

	"github.com/redis/go-redis/v9"
)

type NotificationQueue struct {
	client *redis.Client
	key    string
}

func NewNotificationQueue(client *redis.Client, key string) *NotificationQueue {
	if key == "" {
		key = "hazards:notifications"
	}
	return &NotificationQueue{client: client, key: key}
}

func (q *NotificationQueue) Enqueue(ctx context.Context, n domain.ReportNotification) error {
	b, err := json.Marshal(n)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

// BRPop waits up to timeout for the oldest notification and returns
// e.ErrQueueEmpty when none arrives.
func (q *NotificationQueue) BRPop(ctx context.Context, timeout time.Duration) (domain.ReportNotification, error) {
	var n domain.ReportNotification

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
