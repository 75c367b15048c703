package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"traffix/internal/api"
	"traffix/internal/api/handlers/http/system"
	"traffix/internal/config"
	"traffix/internal/infrastructure/mlclient"
	"traffix/internal/infrastructure/nominatim"
	"traffix/internal/infrastructure/openweather"
	"traffix/internal/infrastructure/osrm"
	"traffix/internal/mq"
	"traffix/internal/redis"
	"traffix/internal/service"
	"traffix/internal/storage/postgres"
	"traffix/internal/workers"
	"traffix/pkg/logger"
	"traffix/pkg/retry"
)

type trainingSink interface {
	service.TrainingRecorder
	Close() error
}

type Components struct {
	logger        *slog.Logger
	HttpServer    *api.Server
	Postgres      *postgres.Postgres
	Redis         *redis.Redis
	WebhookSender *workers.WebhookSender
	training      trainingSink
	workers       sync.WaitGroup
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")

	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres",
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		storage.Close()
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	clock := clockwork.NewRealClock()

	notifications := redis.NewNotificationQueue(redisClient.Client, cfg.Webhook.QueueKey)
	liveReports := redis.NewLiveReportCache(redisClient.Client, storage.Reports, cfg.LiveCacheTTL, logger)
	reports := service.NewReportManager(liveReports, notifications, clock, cfg.Region.CityID, logger)

	geocoder := service.NewGeocoder(
		nominatim.New(cfg.Providers.NominatimURL, cfg.Providers.NominatimUserAgent),
		service.NewGeocodeCache(),
		service.GeocoderConfig{Region: cfg.Region.Name, AttemptTimeout: cfg.Timeouts.Geocode, Retry: retry.Default},
		logger,
	)
	weather := service.NewWeatherService(
		openweather.New(cfg.Providers.OpenWeatherURL, cfg.Providers.OpenWeatherAPIKey),
		service.WeatherConfig{AttemptTimeout: cfg.Timeouts.Weather},
		logger,
	)
	proximity := service.NewProximityScorer(reports, logger)

	var classifier service.Classifier = service.NewRuleClassifier()
	if cfg.Providers.MLServiceURL != "" {
		classifier = mlclient.NewHTTPClassifier(cfg.Providers.MLServiceURL, cfg.Timeouts.Classifier)
		logger.Info("Using remote classifier", slog.String("url", cfg.Providers.MLServiceURL))
	}

	var training trainingSink = mq.NoopRecorder{}
	if cfg.Kafka.Enabled() {
		training = mq.NewTrainingRecorder(mq.NewWriter(cfg.Kafka.Brokers, cfg.Kafka.TrainingTopic), logger)
		logger.Info("Publishing training samples", slog.String("topic", cfg.Kafka.TrainingTopic))
	}

	routeRisk := service.NewRouteRiskService(
		geocoder,
		osrm.New(cfg.Providers.OSRMURL),
		proximity,
		weather,
		storage.Static,
		service.NewRiskEngine(classifier, logger),
		training,
		clock,
		service.RouteRiskConfig{
			CityID:       cfg.Region.CityID,
			Location:     cfg.Region.Location(),
			RouteTimeout: cfg.Timeouts.Routing,
		},
		logger,
	)

	srv := service.NewService(
		routeRisk,
		reports,
		proximity,
		weather,
		service.NewStaticHazards(storage.Static, cfg.Region.CityID),
	)

	checks := map[string]system.Check{
		"postgres": storage.Pool.Ping,
		"redis":    redisClient.Ping,
	}
	httpServer := api.NewServer(ctx, cfg, logger, srv, checks)
	logger.Info("Initialized server")

	var sender *workers.WebhookSender
	if !cfg.Webhook.Disabled {
		sender = workers.NewWebhookSender(logger, workers.WebhookConfig{URL: cfg.Webhook.URL, Workers: 2}, notifications)
	}

	return &Components{
		logger:        logger,
		HttpServer:    httpServer,
		Postgres:      storage,
		Redis:         redisClient,
		WebhookSender: sender,
		training:      training,
	}, nil
}

// StartWorkers launches background consumers. They stop when ctx is canceled.
func (c *Components) StartWorkers(ctx context.Context) {
	if c.WebhookSender == nil {
		c.logger.Info("Webhook delivery disabled")
		return
	}
	c.workers.Add(1)
	go func() {
		defer c.workers.Done()
		c.WebhookSender.Run(ctx)
	}()
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

// ShutdownAll waits for workers, then releases clients.
func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Component shutdown started")

	c.workers.Wait()

	if err := c.training.Close(); err != nil {
		c.logger.Error("Training recorder close failed", slog.String("err", err.Error()))
	}
	c.Postgres.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
