package service

import (
	"context"
	"time"

	"traffix/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// Upstream providers.

type GeocodeProvider interface {
	// Geocode returns e.ErrNotFound when nothing matches and an
	// e.ErrTransient-wrapped error when the call may succeed on retry.
	Geocode(ctx context.Context, query string) (domain.Coordinate, error)
}

type RouteProvider interface {
	Routes(ctx context.Context, origin, destination domain.Coordinate) ([]domain.RouteCandidate, error)
}

type WeatherProvider interface {
	Current(ctx context.Context, coord domain.Coordinate) (domain.WeatherSignal, error)
}

// Classifier is the opaque risk model: 1 means high risk.
type Classifier interface {
	Predict(ctx context.Context, features domain.RiskFeatureVector) (int, error)
}

// Storage and messaging.

type ReportRepository interface {
	Create(ctx context.Context, report *domain.HazardReport) error
	ListLive(ctx context.Context, cityID int, now time.Time) ([]*domain.HazardReport, error)
}

type StaticHazardRepository interface {
	StaticScore(ctx context.Context, cityID int) (int, error)
	ListFloodHotspots(ctx context.Context, cityID int) ([]*domain.FloodHotspot, error)
}

type NotificationQueue interface {
	Enqueue(ctx context.Context, n domain.ReportNotification) error
}

type TrainingRecorder interface {
	Record(ctx context.Context, sample domain.TrainingSample) error
}

// Use cases.

type LocationResolver interface {
	Resolve(ctx context.Context, address string) (domain.Coordinate, error)
}

type WeatherSignalService interface {
	Current(ctx context.Context, coord domain.Coordinate) domain.WeatherSignal
}

type HazardCounter interface {
	CountNearRoute(ctx context.Context, geometry []domain.Coordinate, cityID int) (int, error)
}

type ReportService interface {
	Submit(ctx context.Context, req domain.SubmitReportRequest) (*domain.HazardReport, error)
	ListLive(ctx context.Context, cityID int) ([]*domain.HazardReport, error)
}

type StaticHazardService interface {
	ListFloodHotspots(ctx context.Context, cityID int) ([]*domain.FloodHotspot, error)
}

type RouteRiskAssessor interface {
	AssessRoute(ctx context.Context, req domain.RouteRiskRequest) (domain.RiskResponse, error)
}

type Service struct {
	RouteRisk    RouteRiskAssessor
	Reports      ReportService
	Hazards      HazardCounter
	Weather      WeatherSignalService
	StaticHazard StaticHazardService
}

func NewService(
	routeRisk RouteRiskAssessor,
	reports ReportService,
	hazards HazardCounter,
	weather WeatherSignalService,
	staticHazard StaticHazardService,
) *Service {
	return &Service{
		RouteRisk:    routeRisk,
		Reports:      reports,
		Hazards:      hazards,
		Weather:      weather,
		StaticHazard: staticHazard,
	}
}
