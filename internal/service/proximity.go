package service

import (
	"context"
	"log/slog"

	"traffix/internal/domain"
	"traffix/pkg/geo"
)

// HazardRadiusMeters is the distance from a route within which a live
// report counts against it.
const HazardRadiusMeters = 300.0

type ProximityScorer struct {
	reports ReportService
	radius  float64
	logger  *slog.Logger
}

func NewProximityScorer(reports ReportService, logger *slog.Logger) *ProximityScorer {
	return &ProximityScorer{reports: reports, radius: HazardRadiusMeters, logger: logger}
}

// CountNearRoute counts live reports of the city within the radius of geometry.
func (p *ProximityScorer) CountNearRoute(ctx context.Context, geometry []domain.Coordinate, cityID int) (int, error) {
	if len(geometry) == 0 {
		return 0, nil
	}

	reports, err := p.reports.ListLive(ctx, cityID)
	if err != nil {
		return 0, err
	}

	line := domain.LineString(geometry)
	count := 0
	for _, r := range reports {
		if !r.Location.Valid() {
			p.logger.Warn("skipping report with invalid location", slog.String("report_id", r.ID.String()))
			continue
		}
		if geo.WithinDistance(r.Location.Point(), line, p.radius) {
			count++
		}
	}

	p.logger.Debug("proximity scored",
		slog.Int("city_id", cityID),
		slog.Int("live", len(reports)),
		slog.Int("near", count),
	)
	return count, nil
}
