package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"traffix/internal/domain"
)

type ReportStore interface {
	Create(ctx context.Context, report *domain.HazardReport) error
	ListLive(ctx context.Context, cityID int, now time.Time) ([]*domain.HazardReport, error)
}

// LiveReportCache keeps short-lived snapshots of each city's live reports
// in front of a ReportStore. Callers must still filter by expiry.
//
// Snapshots are keyed by a per-city version that Create bumps after the
// store commits. A reader that queried the store before the bump writes
// under the old version, which no later reader asks for.
type LiveReportCache struct {
	client *goredis.Client
	next   ReportStore
	ttl    time.Duration
	logger *slog.Logger
}

func NewLiveReportCache(client *goredis.Client, next ReportStore, ttl time.Duration, logger *slog.Logger) *LiveReportCache {
	return &LiveReportCache{client: client, next: next, ttl: ttl, logger: logger}
}

func versionKey(cityID int) string {
	return fmt.Sprintf("hazards:live:%d:v", cityID)
}

func snapshotKey(cityID int, version int64) string {
	return fmt.Sprintf("hazards:live:%d:%d", cityID, version)
}

func (c *LiveReportCache) Create(ctx context.Context, report *domain.HazardReport) error {
	if err := c.next.Create(ctx, report); err != nil {
		return err
	}
	if err := c.client.Incr(ctx, versionKey(report.CityID)).Err(); err != nil {
		c.logger.Warn("live cache invalidation failed", slog.Int("city_id", report.CityID), slog.Any("error", err))
	}
	return nil
}

func (c *LiveReportCache) ListLive(ctx context.Context, cityID int, now time.Time) ([]*domain.HazardReport, error) {
	if c.ttl <= 0 {
		return c.next.ListLive(ctx, cityID, now)
	}

	version, err := c.version(ctx, cityID)
	if err != nil {
		c.logger.Warn("live cache version read failed", slog.Int("city_id", cityID), slog.Any("error", err))
		return c.next.ListLive(ctx, cityID, now)
	}

	reports, err := c.get(ctx, cityID, version)
	switch {
	case err == nil:
		return reports, nil
	case !errors.Is(err, goredis.Nil):
		c.logger.Warn("live cache read failed", slog.Int("city_id", cityID), slog.Any("error", err))
	}

	reports, err = c.next.ListLive(ctx, cityID, now)
	if err != nil {
		return nil, err
	}
	if err := c.set(ctx, cityID, version, reports); err != nil {
		c.logger.Warn("live cache write failed", slog.Int("city_id", cityID), slog.Any("error", err))
	}
	return reports, nil
}

func (c *LiveReportCache) version(ctx context.Context, cityID int) (int64, error) {
	v, err := c.client.Get(ctx, versionKey(cityID)).Int64()
	if errors.Is(err, goredis.Nil) {
		return 0, nil
	}
	return v, err
}

func (c *LiveReportCache) get(ctx context.Context, cityID int, version int64) ([]*domain.HazardReport, error) {
	data, err := c.client.Get(ctx, snapshotKey(cityID, version)).Bytes()
	if err != nil {
		return nil, err
	}

	var reports []*domain.HazardReport
	if err := json.Unmarshal(data, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

func (c *LiveReportCache) set(ctx context.Context, cityID int, version int64, reports []*domain.HazardReport) error {
	b, err := json.Marshal(reports)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, snapshotKey(cityID, version), b, c.ttl).Err()
}
