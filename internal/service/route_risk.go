package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"traffix/internal/domain"
	"traffix/pkg/e"
	"traffix/pkg/validator"
)

type RouteRiskConfig struct {
	CityID       int
	Location     *time.Location
	RouteTimeout time.Duration
}

// RouteRiskService runs the whole assessment: geocode, route, gather
// signals, classify and order the routes.
type RouteRiskService struct {
	resolver LocationResolver
	routes   RouteProvider
	hazards  HazardCounter
	weather  WeatherSignalService
	static   StaticHazardRepository
	engine   *RiskEngine
	training TrainingRecorder
	clock    clockwork.Clock
	cfg      RouteRiskConfig
	logger   *slog.Logger
}

func NewRouteRiskService(
	resolver LocationResolver,
	routes RouteProvider,
	hazards HazardCounter,
	weather WeatherSignalService,
	static StaticHazardRepository,
	engine *RiskEngine,
	training TrainingRecorder,
	clock clockwork.Clock,
	cfg RouteRiskConfig,
	logger *slog.Logger,
) *RouteRiskService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if cfg.CityID <= 0 {
		cfg.CityID = 1
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.RouteTimeout <= 0 {
		cfg.RouteTimeout = 8 * time.Second
	}
	return &RouteRiskService{
		resolver: resolver,
		routes:   routes,
		hazards:  hazards,
		weather:  weather,
		static:   static,
		engine:   engine,
		training: training,
		clock:    clock,
		cfg:      cfg,
		logger:   logger,
	}
}

func (s *RouteRiskService) AssessRoute(ctx context.Context, req domain.RouteRiskRequest) (domain.RiskResponse, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return domain.RiskResponse{}, fmt.Errorf("%w: %v", e.ErrInvalidInput, err)
	}
	cityID := req.CityID
	if cityID == 0 {
		cityID = s.cfg.CityID
	}

	log := s.logger.With(
		slog.String("start", req.StartAddress),
		slog.String("end", req.EndAddress),
		slog.Int("city_id", cityID),
	)
	log.Info("route risk START")

	start, err := s.resolver.Resolve(ctx, req.StartAddress)
	if err != nil {
		return domain.RiskResponse{}, err
	}
	end, err := s.resolver.Resolve(ctx, req.EndAddress)
	if err != nil {
		return domain.RiskResponse{}, err
	}

	candidates, err := s.fetchRoutes(ctx, start, end)
	if err != nil {
		log.Warn("routing failed", slog.Any("error", err))
		return domain.RiskResponse{}, e.ErrNoRouteFound
	}
	if len(candidates) == 0 {
		return domain.RiskResponse{}, e.ErrNoRouteFound
	}

	var (
		wg          sync.WaitGroup
		liveHazards int
		weather     domain.WeatherSignal
		staticScore int
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		n, err := s.hazards.CountNearRoute(ctx, candidates[0].Geometry, cityID)
		if err != nil {
			log.Error("proximity scoring failed, assuming no hazards", slog.Any("error", err))
			n = 0
		}
		liveHazards = n
	}()
	go func() {
		defer wg.Done()
		weather = s.weather.Current(ctx, start)
	}()
	go func() {
		defer wg.Done()
		score, err := s.static.StaticScore(ctx, cityID)
		if err != nil {
			log.Error("static score unavailable, using default", slog.Any("error", err))
			score = domain.DefaultStaticScore
		}
		staticScore = score
	}()
	wg.Wait()

	hour := s.clock.Now().In(s.cfg.Location).Hour()
	pair, err := s.engine.Assess(ctx, candidates, liveHazards, weather, staticScore, hour)
	if err != nil {
		return domain.RiskResponse{}, err
	}

	s.record(ctx, log, pair, cityID)

	log.Info("route risk END",
		slog.Int("routes", len(candidates)),
		slog.Int("live_hazards", liveHazards),
		slog.Bool("high_risk", pair.HighRisk()),
		slog.Bool("swapped", pair.Swapped),
	)
	return domain.NewRiskResponse(pair), nil
}

func (s *RouteRiskService) fetchRoutes(ctx context.Context, start, end domain.Coordinate) ([]domain.RouteCandidate, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.RouteTimeout)
	defer cancel()
	return s.routes.Routes(ctx, start, end)
}

func (s *RouteRiskService) record(ctx context.Context, log *slog.Logger, pair domain.RiskAssessmentPair, cityID int) {
	if s.training == nil {
		return
	}
	sample := domain.TrainingSample{
		Features:       pair.Features,
		PredictedLabel: pair.PredictedLabel,
		HighRisk:       pair.HighRisk(),
		CityID:         cityID,
		RecordedAt:     s.clock.Now().UTC(),
	}
	if err := s.training.Record(ctx, sample); err != nil {
		log.Warn("training sample not recorded", slog.Any("error", err))
	}
}
