package service

import (
	"context"

	"traffix/internal/domain"
)

func (s *Service) AssessRoute(ctx context.Context, req domain.RouteRiskRequest) (domain.RiskResponse, error) {
	return s.RouteRisk.AssessRoute(ctx, req)
}

func (s *Service) SubmitReport(ctx context.Context, req domain.SubmitReportRequest) (*domain.HazardReport, error) {
	return s.Reports.Submit(ctx, req)
}

func (s *Service) ListLiveHazards(ctx context.Context, cityID int) ([]*domain.HazardReport, error) {
	return s.Reports.ListLive(ctx, cityID)
}

func (s *Service) CountLiveHazardsNear(ctx context.Context, geometry []domain.Coordinate, cityID int) (int, error) {
	return s.Hazards.CountNearRoute(ctx, geometry, cityID)
}

func (s *Service) CurrentWeather(ctx context.Context, coord domain.Coordinate) domain.WeatherSignal {
	return s.Weather.Current(ctx, coord)
}

func (s *Service) ListFloodHotspots(ctx context.Context, cityID int) ([]*domain.FloodHotspot, error) {
	return s.StaticHazard.ListFloodHotspots(ctx, cityID)
}
