//go:build integration

package redis

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"traffix/internal/domain"
	"traffix/pkg/e"
)

var testClient *goredis.Client

func TestMain(m *testing.M) {
	ctx := context.Background()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		fmt.Println("cannot start container:", err)
		os.Exit(1)
	}

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "6379/tcp")
	testClient = goredis.NewClient(&goredis.Options{Addr: fmt.Sprintf("%s:%s", host, port.Port())})

	code := m.Run()

	_ = testClient.Close()
	_ = c.Terminate(ctx)
	os.Exit(code)
}

type countingStore struct {
	created []*domain.HazardReport
	reports []*domain.HazardReport
	lists   int
}

func (s *countingStore) Create(_ context.Context, r *domain.HazardReport) error {
	s.created = append(s.created, r)
	s.reports = append(s.reports, r)
	return nil
}

func (s *countingStore) ListLive(_ context.Context, _ int, _ time.Time) ([]*domain.HazardReport, error) {
	s.lists++
	return s.reports, nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestLiveReportCache_CachesAndInvalidates(t *testing.T) {
	ctx := context.Background()
	_ = testClient.Del(ctx, versionKey(7)).Err()

	store := &countingStore{}
	cache := NewLiveReportCache(testClient, store, time.Minute, quietLogger())
	now := time.Now().UTC()

	if _, err := cache.ListLive(ctx, 7, now); err != nil {
		t.Fatalf("ListLive: %v", err)
	}
	if _, err := cache.ListLive(ctx, 7, now); err != nil {
		t.Fatalf("ListLive: %v", err)
	}
	if store.lists != 1 {
		t.Fatalf("expected one store read, got %d", store.lists)
	}

	r := domain.NewHazardReport(uuid.New(), 7, domain.Coordinate{Lat: 28.6, Lon: 77.2}, domain.HazardTraffic, now)
	if err := cache.Create(ctx, r); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := cache.ListLive(ctx, 7, now)
	if err != nil {
		t.Fatalf("ListLive: %v", err)
	}
	if store.lists != 2 || len(got) != 1 || got[0].ID != r.ID {
		t.Fatalf("cache not invalidated: lists=%d got=%+v", store.lists, got)
	}
}

// pausingStore holds the first ListLive after it has read its rows until
// release is closed.
type pausingStore struct {
	mu      sync.Mutex
	reports []*domain.HazardReport
	paused  bool
	entered chan struct{}
	release chan struct{}
}

func (s *pausingStore) Create(_ context.Context, r *domain.HazardReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports = append(s.reports, r)
	return nil
}

func (s *pausingStore) ListLive(_ context.Context, _ int, _ time.Time) ([]*domain.HazardReport, error) {
	s.mu.Lock()
	rows := append([]*domain.HazardReport(nil), s.reports...)
	pause := !s.paused
	s.paused = true
	s.mu.Unlock()

	if pause {
		close(s.entered)
		<-s.release
	}
	return rows, nil
}

func TestLiveReportCache_SlowReaderDoesNotHideNewReport(t *testing.T) {
	ctx := context.Background()
	const city = 8
	_ = testClient.Del(ctx, versionKey(city)).Err()

	store := &pausingStore{entered: make(chan struct{}), release: make(chan struct{})}
	cache := NewLiveReportCache(testClient, store, time.Minute, quietLogger())
	now := time.Now().UTC()

	done := make(chan error, 1)
	go func() {
		_, err := cache.ListLive(ctx, city, now)
		done <- err
	}()
	<-store.entered

	r := domain.NewHazardReport(uuid.New(), city, domain.Coordinate{Lat: 28.6, Lon: 77.2}, domain.HazardAccident, now)
	if err := cache.Create(ctx, r); err != nil {
		t.Fatalf("Create: %v", err)
	}

	close(store.release)
	if err := <-done; err != nil {
		t.Fatalf("slow ListLive: %v", err)
	}

	got, err := cache.ListLive(ctx, city, now)
	if err != nil {
		t.Fatalf("ListLive: %v", err)
	}
	if len(got) != 1 || got[0].ID != r.ID {
		t.Fatalf("new report hidden by stale snapshot: got %d reports", len(got))
	}
}

func TestNotificationQueue_FIFO(t *testing.T) {
	ctx := context.Background()
	key := "test:notifications:" + uuid.NewString()
	q := NewNotificationQueue(testClient, key)

	first := domain.ReportNotification{ReportID: uuid.New(), CityID: 1, Type: domain.HazardAccident}
	second := domain.ReportNotification{ReportID: uuid.New(), CityID: 1, Type: domain.HazardPothole}
	for _, n := range []domain.ReportNotification{first, second} {
		if err := q.Enqueue(ctx, n); err != nil {
			t.Fatalf("Enqueue: %v", err)
		}
	}

	got, err := q.BRPop(ctx, time.Second)
	if err != nil || got.ReportID != first.ReportID {
		t.Fatalf("expected first notification, got %+v, %v", got, err)
	}
	got, err = q.BRPop(ctx, time.Second)
	if err != nil || got.ReportID != second.ReportID {
		t.Fatalf("expected second notification, got %+v, %v", got, err)
	}

	if _, err := q.BRPop(ctx, time.Second); !errors.Is(err, e.ErrQueueEmpty) {
		t.Fatalf("expected ErrQueueEmpty, got %v", err)
	}
}
