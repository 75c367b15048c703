package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"traffix/internal/domain"
	"traffix/pkg/e"
)

type ReportRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewReportRepo(pool *pgxpool.Pool, logger *slog.Logger) *ReportRepo {
	return &ReportRepo{pool: pool, logger: logger}
}

func (p *ReportRepo) Create(ctx context.Context, r *domain.HazardReport) error {
	const op = "postgres.HazardReport.Create"

	if r == nil || !r.Location.Valid() || !r.Type.Valid() {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
		INSERT INTO hazard_reports (id, reporter_id, city_id, report_type, location, created_at, expires_at)
		VALUES ($1, $2, $3, $4, ST_SetSRID(ST_MakePoint($5, $6), 4326)::geography, $7, $8)
	`

	_, err := p.pool.Exec(ctx, query,
		r.ID,
		r.ReporterID,
		r.CityID,
		string(r.Type),
		r.Location.Lon,
		r.Location.Lat,
		r.CreatedAt,
		r.ExpiresAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

// ListLive returns reports of the city with expires_at > now, newest first.
// Rows whose point cannot be read are skipped.
func (p *ReportRepo) ListLive(ctx context.Context, cityID int, now time.Time) ([]*domain.HazardReport, error) {
	const op = "postgres.HazardReport.ListLive"

	const query = `
		SELECT id, reporter_id, city_id, report_type,
		       ST_Y(location::geometry), ST_X(location::geometry),
		       created_at, expires_at
		FROM hazard_reports
		WHERE city_id = $1
		  AND expires_at > $2
		ORDER BY created_at DESC
	`

	rows, err := p.pool.Query(ctx, query, cityID, now)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	out := make([]*domain.HazardReport, 0, 16)
	for rows.Next() {
		var (
			r        domain.HazardReport
			typ      string
			lat, lon *float64
		)
		if err := rows.Scan(&r.ID, &r.ReporterID, &r.CityID, &typ, &lat, &lon, &r.CreatedAt, &r.ExpiresAt); err != nil {
			p.logger.Error("db scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		if lat == nil || lon == nil {
			p.logger.Warn("skipping report without coordinates", slog.String("report_id", r.ID.String()))
			continue
		}
		r.Type = domain.HazardType(typ)
		r.Location = domain.Coordinate{Lat: *lat, Lon: *lon}
		out = append(out, &r)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("db rows error", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return out, nil
}
