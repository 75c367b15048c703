package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"traffix/internal/domain"
	"traffix/pkg/e"
	"traffix/pkg/retry"
)

type WeatherConfig struct {
	AttemptTimeout time.Duration
	Retry          retry.Policy
}

// WeatherService turns provider failures into the fallback signal.
type WeatherService struct {
	provider WeatherProvider
	cfg      WeatherConfig
	logger   *slog.Logger
}

func NewWeatherService(provider WeatherProvider, cfg WeatherConfig, logger *slog.Logger) *WeatherService {
	if cfg.AttemptTimeout <= 0 {
		cfg.AttemptTimeout = 5 * time.Second
	}
	if cfg.Retry.MaxAttempts <= 0 {
		cfg.Retry = retry.Policy{MaxAttempts: 2, Multiplier: 1}
	}
	return &WeatherService{provider: provider, cfg: cfg, logger: logger}
}

func (s *WeatherService) Current(ctx context.Context, coord domain.Coordinate) domain.WeatherSignal {
	var signal domain.WeatherSignal
	err := s.cfg.Retry.Do(ctx, func(ctx context.Context) error {
		attemptCtx, cancel := context.WithTimeout(ctx, s.cfg.AttemptTimeout)
		defer cancel()

		w, err := s.provider.Current(attemptCtx, coord)
		if err != nil {
			if errors.Is(err, e.ErrNotConfigured) {
				return err
			}
			s.logger.Debug("weather attempt failed", slog.Any("error", err))
			return retry.Retryable(err)
		}
		signal = w
		return nil
	})
	if err != nil {
		s.logger.Warn("weather unavailable, using fallback",
			slog.Float64("lat", coord.Lat),
			slog.Float64("lon", coord.Lon),
			slog.Any("error", err),
		)
		return domain.FallbackWeather()
	}
	return signal
}
