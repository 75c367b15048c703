package postgres

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"traffix/internal/domain"
	"traffix/pkg/e"
)

type StaticHazardRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewStaticHazardRepo(pool *pgxpool.Pool, logger *slog.Logger) *StaticHazardRepo {
	return &StaticHazardRepo{pool: pool, logger: logger}
}

// StaticScore reads the city's reference road segment. A city without
// scored segments gets domain.DefaultStaticScore.
func (p *StaticHazardRepo) StaticScore(ctx context.Context, cityID int) (int, error) {
	const op = "postgres.StaticHazard.StaticScore"

	const query = `
		SELECT static_hazard_score
		FROM road_segments
		WHERE city_id = $1
		ORDER BY id
		LIMIT 1
	`

	var score int
	err := p.pool.QueryRow(ctx, query, cityID).Scan(&score)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.DefaultStaticScore, nil
	}
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}
	return domain.ClampStaticScore(score), nil
}

func (p *StaticHazardRepo) ListFloodHotspots(ctx context.Context, cityID int) ([]*domain.FloodHotspot, error) {
	const op = "postgres.StaticHazard.ListFloodHotspots"

	const query = `
		SELECT id, city_id, description,
		       ST_Y(location::geometry), ST_X(location::geometry)
		FROM flood_hotspots
		WHERE city_id = $1
		ORDER BY id
	`

	rows, err := p.pool.Query(ctx, query, cityID)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	out := make([]*domain.FloodHotspot, 0, 8)
	for rows.Next() {
		var (
			h        domain.FloodHotspot
			lat, lon *float64
		)
		if err := rows.Scan(&h.ID, &h.CityID, &h.Description, &lat, &lon); err != nil {
			p.logger.Error("db scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		if lat == nil || lon == nil {
			p.logger.Warn("skipping hotspot without coordinates", slog.Int64("id", h.ID))
			continue
		}
		h.Location = domain.Coordinate{Lat: *lat, Lon: *lon}
		out = append(out, &h)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return out, nil
}
