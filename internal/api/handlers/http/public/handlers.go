package public

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/paulmach/orb"

	"traffix/internal/domain"
	"traffix/pkg/e"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type PublicHandler interface {
	AssessRoute(ctx context.Context, req domain.RouteRiskRequest) (domain.RiskResponse, error)
	SubmitReport(ctx context.Context, req domain.SubmitReportRequest) (*domain.HazardReport, error)
	ListLiveHazards(ctx context.Context, cityID int) ([]*domain.HazardReport, error)
	CountLiveHazardsNear(ctx context.Context, geometry []domain.Coordinate, cityID int) (int, error)
	CurrentWeather(ctx context.Context, coord domain.Coordinate) domain.WeatherSignal
	ListFloodHotspots(ctx context.Context, cityID int) ([]*domain.FloodHotspot, error)
}

type Handler struct {
	logger        *slog.Logger
	PublicHandler PublicHandler
}

func NewHandler(logger *slog.Logger, publicHandler PublicHandler) *Handler {
	return &Handler{
		logger:        logger,
		PublicHandler: publicHandler,
	}
}

// RouteRisk handles POST /route/risk.
func (h *Handler) RouteRisk(w http.ResponseWriter, r *http.Request) {
	var req domain.RouteRiskRequest
	if err := decodeStrict(r, &req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	resp, err := h.PublicHandler.AssessRoute(r.Context(), req)
	if err != nil {
		h.log(r).Info("route risk failed", slog.Any("error", err))
		h.handleError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// SubmitReport handles POST /reports.
func (h *Handler) SubmitReport(w http.ResponseWriter, r *http.Request) {
	var req domain.SubmitReportRequest
	if err := decodeStrict(r, &req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	report, err := h.PublicHandler.SubmitReport(r.Context(), req)
	if err != nil {
		h.log(r).Warn("submit report failed", slog.Any("error", err))
		h.handleError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, report)
}

// LiveHazards handles GET /hazards/live.
func (h *Handler) LiveHazards(w http.ResponseWriter, r *http.Request) {
	cityID, ok := h.cityID(w, r)
	if !ok {
		return
	}

	reports, err := h.PublicHandler.ListLiveHazards(r.Context(), cityID)
	if err != nil {
		h.log(r).Error("list live hazards failed", slog.Any("error", err))
		h.handleError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, reports)
}

// NearRouteHazards handles POST /hazards/near-route.
func (h *Handler) NearRouteHazards(w http.ResponseWriter, r *http.Request) {
	var req domain.NearRouteRequest
	if err := decodeStrict(r, &req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if req.Geometry == nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "geometry required"})
		return
	}
	ls, ok := req.Geometry.Coordinates.(orb.LineString)
	if !ok {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "geometry must be a LineString"})
		return
	}
	if req.CityID < 0 {
		h.handleError(w, e.ErrInvalidInput)
		return
	}

	n, err := h.PublicHandler.CountLiveHazardsNear(r.Context(), domain.CoordinatesFromLineString(ls), req.CityID)
	if err != nil {
		h.log(r).Error("count hazards near route failed", slog.Any("error", err))
		h.handleError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, domain.NearRouteResponse{Count: n})
}

// StaticHazards handles GET /hazards/static.
func (h *Handler) StaticHazards(w http.ResponseWriter, r *http.Request) {
	cityID, ok := h.cityID(w, r)
	if !ok {
		return
	}

	spots, err := h.PublicHandler.ListFloodHotspots(r.Context(), cityID)
	if err != nil {
		h.log(r).Error("list flood hotspots failed", slog.Any("error", err))
		h.handleError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, spots)
}

// Weather handles GET /weather?lat=&lon=.
func (h *Handler) Weather(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lat, errLat := strconv.ParseFloat(q.Get("lat"), 64)
	lon, errLon := strconv.ParseFloat(q.Get("lon"), 64)
	coord := domain.Coordinate{Lat: lat, Lon: lon}
	if errLat != nil || errLon != nil || !coord.Valid() {
		h.handleError(w, e.ErrInvalidCoordinates)
		return
	}

	h.writeJSON(w, http.StatusOK, h.PublicHandler.CurrentWeather(r.Context(), coord))
}

func (h *Handler) cityID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("city_id")
	if raw == "" {
		return 0, true
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid city_id"})
		return 0, false
	}
	return id, true
}
