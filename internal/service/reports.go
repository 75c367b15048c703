package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"traffix/internal/domain"
	"traffix/pkg/e"
	"traffix/pkg/validator"
)

// ReportManager creates hazard reports and answers which ones are live.
type ReportManager struct {
	repo          ReportRepository
	notifications NotificationQueue
	clock         clockwork.Clock
	defaultCityID int
	logger        *slog.Logger
}

func NewReportManager(
	repo ReportRepository,
	notifications NotificationQueue,
	clock clockwork.Clock,
	defaultCityID int,
	logger *slog.Logger,
) *ReportManager {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if defaultCityID <= 0 {
		defaultCityID = 1
	}
	return &ReportManager{
		repo:          repo,
		notifications: notifications,
		clock:         clock,
		defaultCityID: defaultCityID,
		logger:        logger,
	}
}

func (m *ReportManager) Submit(ctx context.Context, req domain.SubmitReportRequest) (*domain.HazardReport, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", e.ErrInvalidInput, err)
	}
	reporterID, err := uuid.Parse(req.ReporterID)
	if err != nil {
		return nil, fmt.Errorf("%w: reporter_id: %v", e.ErrInvalidInput, err)
	}
	cityID := req.CityID
	if cityID == 0 {
		cityID = m.defaultCityID
	}

	report := domain.NewHazardReport(
		reporterID,
		cityID,
		domain.Coordinate{Lat: req.Lat, Lon: req.Lon},
		req.Type,
		m.clock.Now().UTC(),
	)
	if err := m.repo.Create(ctx, report); err != nil {
		m.logger.Error("create report failed", slog.Any("error", err))
		return nil, err
	}
	m.logger.Info("hazard report created",
		slog.String("report_id", report.ID.String()),
		slog.Int("city_id", report.CityID),
		slog.String("type", string(report.Type)),
	)

	if m.notifications != nil {
		if err := m.notifications.Enqueue(ctx, domain.NewReportNotification(report)); err != nil {
			m.logger.Error("enqueue report notification failed", slog.Any("error", err))
		}
	}
	return report, nil
}

// ListLive returns the city's reports with now < ExpiresAt. The repository
// result is filtered again because it may come from a cached snapshot.
func (m *ReportManager) ListLive(ctx context.Context, cityID int) ([]*domain.HazardReport, error) {
	if cityID <= 0 {
		cityID = m.defaultCityID
	}
	now := m.clock.Now().UTC()
	reports, err := m.repo.ListLive(ctx, cityID, now)
	if err != nil {
		return nil, err
	}
	return domain.FilterLive(reports, now), nil
}
