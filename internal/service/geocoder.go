package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"traffix/internal/domain"
	"traffix/pkg/e"
	"traffix/pkg/retry"
)

// GeocodeCache holds resolved addresses for the life of the process.
// Keys are normalized; entries are never evicted.
type GeocodeCache struct {
	mu      sync.RWMutex
	entries map[string]domain.Coordinate
}

func NewGeocodeCache() *GeocodeCache {
	return &GeocodeCache{entries: make(map[string]domain.Coordinate)}
}

func normalizeAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

func (c *GeocodeCache) Get(address string) (domain.Coordinate, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	coord, ok := c.entries[normalizeAddress(address)]
	return coord, ok
}

// Put stores coord unless the address is already cached and returns the
// value that ends up in the cache.
func (c *GeocodeCache) Put(address string, coord domain.Coordinate) domain.Coordinate {
	key := normalizeAddress(address)
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.entries[key]; ok {
		return existing
	}
	c.entries[key] = coord
	return coord
}

func (c *GeocodeCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

type GeocoderConfig struct {
	Region         string
	AttemptTimeout time.Duration
	Retry          retry.Policy
}

// Geocoder resolves addresses through the provider. Concurrent cold
// lookups of one normalized address share a single upstream call.
type Geocoder struct {
	provider GeocodeProvider
	cache    *GeocodeCache
	flight   singleflight.Group
	cfg      GeocoderConfig
	logger   *slog.Logger
}

func NewGeocoder(provider GeocodeProvider, cache *GeocodeCache, cfg GeocoderConfig, logger *slog.Logger) *Geocoder {
	if cache == nil {
		cache = NewGeocodeCache()
	}
	if cfg.AttemptTimeout <= 0 {
		cfg.AttemptTimeout = 8 * time.Second
	}
	if cfg.Retry.MaxAttempts <= 0 {
		cfg.Retry = retry.Default
	}
	return &Geocoder{
		provider: provider,
		cache:    cache,
		cfg:      cfg,
		logger:   logger,
	}
}

func (g *Geocoder) query(address string) string {
	address = strings.TrimSpace(address)
	if g.cfg.Region == "" {
		return address
	}
	return address + ", " + g.cfg.Region
}

// Resolve returns the coordinate of address within the configured region.
// Every failure is reported as e.LocationNotFound(address).
func (g *Geocoder) Resolve(ctx context.Context, address string) (domain.Coordinate, error) {
	if strings.TrimSpace(address) == "" {
		return domain.Coordinate{}, e.LocationNotFound(address)
	}
	if coord, ok := g.cache.Get(address); ok {
		g.logger.Debug("geocode cache hit", slog.String("address", address))
		return coord, nil
	}

	// The shared lookup outlives any single caller; each caller still
	// stops waiting when its own ctx is done.
	ch := g.flight.DoChan(normalizeAddress(address), func() (any, error) {
		return g.lookup(context.WithoutCancel(ctx), address)
	})
	select {
	case <-ctx.Done():
		return domain.Coordinate{}, e.LocationNotFound(address)
	case res := <-ch:
		if res.Err != nil {
			return domain.Coordinate{}, e.LocationNotFound(address)
		}
		return res.Val.(domain.Coordinate), nil
	}
}

func (g *Geocoder) lookup(ctx context.Context, address string) (domain.Coordinate, error) {
	q := g.query(address)
	var coord domain.Coordinate
	attempt := 0
	err := g.cfg.Retry.Do(ctx, func(ctx context.Context) error {
		attempt++
		attemptCtx, cancel := context.WithTimeout(ctx, g.cfg.AttemptTimeout)
		defer cancel()

		c, err := g.provider.Geocode(attemptCtx, q)
		if err == nil {
			coord = c
			return nil
		}
		if errors.Is(err, e.ErrTransient) || (errors.Is(attemptCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil) {
			g.logger.Warn("geocode attempt failed",
				slog.String("address", address),
				slog.Int("attempt", attempt),
				slog.Any("error", err),
			)
			return retry.Retryable(err)
		}
		return err
	})
	if err != nil {
		g.logger.Info("geocode failed",
			slog.String("address", address),
			slog.Int("attempts", attempt),
			slog.Any("backoff", g.cfg.Retry.Delays()),
			slog.Any("error", err),
		)
		return domain.Coordinate{}, err
	}
	if !coord.Valid() {
		g.logger.Warn("geocoder returned invalid coordinate", slog.String("address", address))
		return domain.Coordinate{}, e.ErrInvalidCoordinates
	}

	coord = g.cache.Put(address, coord)
	g.logger.Debug("geocode cached", slog.String("address", address), slog.Int("cache_size", g.cache.Len()))
	return coord, nil
}
