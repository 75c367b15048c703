package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env          string          `json:"env"`
	Http         HttpConfig      `json:"http"`
	Postgres     PostgresConfig  `json:"postgres"`
	Redis        RedisConfig     `json:"redis"`
	Webhook      WebhookConfig   `json:"webhook"`
	Kafka        KafkaConfig     `json:"kafka"`
	Providers    ProvidersConfig `json:"providers"`
	Region       RegionConfig    `json:"region"`
	Timeouts     TimeoutsConfig  `json:"timeouts"`
	RateLimit    RateLimitConfig `json:"rate_limit"`
	LiveCacheTTL time.Duration   `json:"live_cache_ttl"`
}

type HttpConfig struct {
	Port            string        `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

type PostgresConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database"`
	User     string `json:"user"`
	Password string `json:"password,omitempty"`
	SSLMode  string `json:"ssl_mode"`

	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MigrateOnStart  bool
}

type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password,omitempty"`
	DB       int    `json:"db"`
}

type WebhookConfig struct {
	URL      string `json:"url"`
	Disabled bool   `json:"disabled"`
	QueueKey string `json:"queue_key"`
}

type KafkaConfig struct {
	Brokers       []string `json:"brokers"`
	TrainingTopic string   `json:"training_topic"`
}

func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

type ProvidersConfig struct {
	NominatimURL       string `json:"nominatim_url"`
	NominatimUserAgent string `json:"nominatim_user_agent"`
	OSRMURL            string `json:"osrm_url"`
	OpenWeatherURL     string `json:"openweather_url"`
	OpenWeatherAPIKey  string `json:"-"`
	MLServiceURL       string `json:"ml_service_url"`
}

type RegionConfig struct {
	Name     string `json:"name"`
	CityID   int    `json:"city_id"`
	TimeZone string `json:"time_zone"`
}

// Location falls back to UTC when the zone database lacks TimeZone.
func (r RegionConfig) Location() *time.Location {
	loc, err := time.LoadLocation(r.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

type TimeoutsConfig struct {
	Geocode    time.Duration `json:"geocode"`
	Routing    time.Duration `json:"routing"`
	Weather    time.Duration `json:"weather"`
	Classifier time.Duration `json:"classifier"`
}

type RateLimitConfig struct {
	RPS   float64 `json:"rps"`
	Burst int     `json:"burst"`
}

func Load(ctx context.Context) (*Config, error) {

	stdLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLogger.Warn(".env load warning", slog.Any("error", err))
	}

	cfg := &Config{
		Env: getEnv("ENV", "local"),
		Http: HttpConfig{
			Port:            getEnv("HTTP_PORT", ":8080"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "pg-local"),
			Port:            getEnvInt("POSTGRES_PORT", 5432),
			Database:        getEnv("POSTGRES_DB", "traffix"),
			User:            getEnv("POSTGRES_USER", "postgres"),
			Password:        getEnv("POSTGRES_PASSWORD", "postgres"),
			SSLMode:         getEnv("POSTGRES_SSL_MODE", "disable"),
			MaxConns:        int32(getEnvInt("POSTGRES_MAX_CONNS", 20)),
			MinConns:        1,
			MaxConnLifetime: 1 * time.Hour,
			MigrateOnStart:  getEnvBool("POSTGRES_MIGRATE", true),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "redis-local:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Webhook: WebhookConfig{
			URL:      getEnv("WEBHOOK_URL", ""),
			Disabled: getEnvBool("WEBHOOK_DISABLED", false),
			QueueKey: getEnv("WEBHOOK_QUEUE_KEY", "hazards:notifications"),
		},
		Kafka: KafkaConfig{
			Brokers:       getEnvList("KAFKA_BROKERS"),
			TrainingTopic: getEnv("KAFKA_TOPIC_TRAINING", "traffix.training-samples"),
		},
		Providers: ProvidersConfig{
			NominatimURL:       getEnv("NOMINATIM_URL", "https://nominatim.openstreetmap.org"),
			NominatimUserAgent: getEnv("NOMINATIM_USER_AGENT", "traffix/1.0"),
			OSRMURL:            getEnv("OSRM_URL", "http://router.project-osrm.org"),
			OpenWeatherURL:     getEnv("OPENWEATHER_URL", "http://api.openweathermap.org"),
			OpenWeatherAPIKey:  getEnv("OPENWEATHER_API_KEY", ""),
			MLServiceURL:       getEnv("ML_SERVICE_URL", ""),
		},
		Region: RegionConfig{
			Name:     getEnv("REGION_NAME", "Delhi, India"),
			CityID:   getEnvInt("REGION_CITY_ID", 1),
			TimeZone: getEnv("REGION_TIME_ZONE", "Asia/Kolkata"),
		},
		Timeouts: TimeoutsConfig{
			Geocode:    getEnvDuration("GEOCODE_TIMEOUT", 8*time.Second),
			Routing:    getEnvDuration("ROUTING_TIMEOUT", 8*time.Second),
			Weather:    getEnvDuration("WEATHER_TIMEOUT", 5*time.Second),
			Classifier: getEnvDuration("CLASSIFIER_TIMEOUT", 5*time.Second),
		},
		RateLimit: RateLimitConfig{
			RPS:   getEnvFloat("RATE_LIMIT_RPS", 5),
			Burst: getEnvInt("RATE_LIMIT_BURST", 10),
		},
		LiveCacheTTL: getEnvDuration("LIVE_CACHE_TTL", 10*time.Second),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdLogger.Info("Config loaded successfully",
		slog.String("env", cfg.Env),
		slog.String("http_port", cfg.Http.Port),
		slog.String("postgres_db", cfg.Postgres.Database),
		slog.String("redis_addr", cfg.Redis.Addr),
		slog.String("region", cfg.Region.Name),
		slog.Bool("kafka_enabled", cfg.Kafka.Enabled()),
		slog.Bool("weather_key_set", cfg.Providers.OpenWeatherAPIKey != ""))

	return cfg, nil
}

func (c *Config) Validate() error {

	if c.Http.Port == "" || (len(c.Http.Port) > 0 && c.Http.Port[0] != ':') {
		return errors.New("HTTP_PORT must start with ':' like ':8080'")
	}

	if c.Postgres.Host == "" {
		return errors.New("POSTGRES_HOST required")
	}

	if c.Region.CityID < 1 {
		return errors.New("REGION_CITY_ID must be positive")
	}

	for name, d := range map[string]time.Duration{
		"GEOCODE_TIMEOUT":    c.Timeouts.Geocode,
		"ROUTING_TIMEOUT":    c.Timeouts.Routing,
		"WEATHER_TIMEOUT":    c.Timeouts.Weather,
		"CLASSIFIER_TIMEOUT": c.Timeouts.Classifier,
	} {
		if d <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
	}

	if !c.Webhook.Disabled && c.Webhook.URL == "" {
		return errors.New("WEBHOOK_URL required unless WEBHOOK_DISABLED=true")
	}

	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getEnvList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
