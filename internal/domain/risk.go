package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb/geojson"
)

const (
	MinStaticScore     = 0
	MaxStaticScore     = 10
	DefaultStaticScore = 5
)

const (
	LowRiskReason          = "Low risk: route looks clear."
	AlternativeRouteReason = "Alternative route"
)

// RiskFeatureVector is the classifier input. Field order is fixed.
type RiskFeatureVector struct {
	StaticHazardScore int `json:"static_hazard_score" validate:"min=0,max=10"`
	ActiveReportCount int `json:"active_reports" validate:"min=0"`
	IsRaining         int `json:"is_raining" validate:"oneof=0 1"`
	HourOfDay         int `json:"hour_of_day" validate:"hour"`
}

func NewRiskFeatureVector(staticScore, activeReports int, weather WeatherSignal, hour int) RiskFeatureVector {
	raining := 0
	if weather.IsRaining {
		raining = 1
	}
	return RiskFeatureVector{
		StaticHazardScore: ClampStaticScore(staticScore),
		ActiveReportCount: activeReports,
		IsRaining:         raining,
		HourOfDay:         hour,
	}
}

// Values returns the features as [static, active, raining, hour].
func (v RiskFeatureVector) Values() []float64 {
	return []float64{
		float64(v.StaticHazardScore),
		float64(v.ActiveReportCount),
		float64(v.IsRaining),
		float64(v.HourOfDay),
	}
}

func ClampStaticScore(s int) int {
	if s < MinStaticScore {
		return MinStaticScore
	}
	if s > MaxStaticScore {
		return MaxStaticScore
	}
	return s
}

// HighRiskReason prints temp as reported; whole values keep one decimal.
func HighRiskReason(reports int, temp float64) string {
	return fmt.Sprintf("High risk: %d report(s), weather temperature %s°C", reports, formatTemperature(temp))
}

func formatTemperature(temp float64) string {
	s := strconv.FormatFloat(temp, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

type RiskAssessment struct {
	IsHighRisk bool
	Reason     string
	Route      RouteCandidate
}

// RiskAssessmentPair holds the route presented first and, optionally, the other one.
type RiskAssessmentPair struct {
	Primary     RiskAssessment
	Alternative *RiskAssessment
	// Swapped is set when the original route was demoted to Alternative.
	Swapped        bool
	Features       RiskFeatureVector
	PredictedLabel int
}

// HighRisk reports the verdict for the originally requested route.
func (p RiskAssessmentPair) HighRisk() bool {
	if p.Swapped {
		return p.Alternative.IsHighRisk
	}
	return p.Primary.IsHighRisk
}

type RouteData struct {
	RiskScore   int               `json:"risk_score"`
	Reason      string            `json:"reason"`
	DistanceKm  float64           `json:"distance_km"`
	DurationMin int               `json:"duration_min"`
	Geometry    *geojson.Geometry `json:"geometry"`
}

type RiskResponse struct {
	OriginalRoute    RouteData  `json:"original_route"`
	AlternativeRoute *RouteData `json:"alternative_route"`
}

func NewRouteData(a RiskAssessment) RouteData {
	score := 0
	if a.IsHighRisk {
		score = 1
	}
	return RouteData{
		RiskScore:   score,
		Reason:      a.Reason,
		DistanceKm:  math.Round(a.Route.DistanceMeters/100) / 10,
		DurationMin: int(math.Round(a.Route.DurationSeconds / 60)),
		Geometry:    geojson.NewGeometry(LineString(a.Route.Geometry)),
	}
}

func NewRiskResponse(p RiskAssessmentPair) RiskResponse {
	resp := RiskResponse{OriginalRoute: NewRouteData(p.Primary)}
	if p.Alternative != nil {
		alt := NewRouteData(*p.Alternative)
		resp.AlternativeRoute = &alt
	}
	return resp
}
