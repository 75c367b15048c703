package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"

	"traffix/internal/domain"
	"traffix/internal/service"
	mock_service "traffix/internal/service/mocks"
	"traffix/pkg/e"
)

var (
	primaryRoute = domain.RouteCandidate{DistanceMeters: 1000, DurationSeconds: 120, Geometry: routeGeometry}
	altRoute     = domain.RouteCandidate{DistanceMeters: 2500, DurationSeconds: 420, Geometry: routeGeometry[1:]}
	dryWeather   = domain.FallbackWeather()
)

func TestRiskEngine_Assess_OverrideLaw(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	classifier := mock_service.NewMockClassifier(ctrl)
	classifier.EXPECT().
		Predict(gomock.Any(), domain.RiskFeatureVector{StaticHazardScore: 5, ActiveReportCount: 3, IsRaining: 0, HourOfDay: 9}).
		Return(0, nil)

	pair, err := service.NewRiskEngine(classifier, newTestLogger()).
		Assess(context.Background(), []domain.RouteCandidate{primaryRoute}, 3, dryWeather, 5, 9)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !pair.Primary.IsHighRisk {
		t.Fatal("live hazards must force high risk")
	}
	if !strings.Contains(pair.Primary.Reason, "3 report(s)") {
		t.Fatalf("reason = %q", pair.Primary.Reason)
	}
	if pair.Alternative != nil || pair.Swapped {
		t.Fatal("no alternative means no swap")
	}
}

func TestRiskEngine_Assess_LowRisk(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	classifier := mock_service.NewMockClassifier(ctrl)
	classifier.EXPECT().Predict(gomock.Any(), gomock.Any()).Return(0, nil)

	pair, err := service.NewRiskEngine(classifier, newTestLogger()).
		Assess(context.Background(), []domain.RouteCandidate{primaryRoute, altRoute}, 0, dryWeather, 5, 14)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if pair.Primary.IsHighRisk || pair.Primary.Reason != domain.LowRiskReason {
		t.Fatalf("unexpected primary %+v", pair.Primary)
	}
	if pair.Primary.Route.DistanceMeters != primaryRoute.DistanceMeters {
		t.Fatal("low risk must not swap")
	}
	if pair.Alternative == nil || pair.Alternative.Reason != domain.AlternativeRouteReason || pair.Alternative.IsHighRisk {
		t.Fatalf("unexpected alternative %+v", pair.Alternative)
	}
}

func TestRiskEngine_Assess_SwapsWhenPrimaryIsHighRisk(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	classifier := mock_service.NewMockClassifier(ctrl)
	classifier.EXPECT().Predict(gomock.Any(), gomock.Any()).Return(1, nil)

	pair, err := service.NewRiskEngine(classifier, newTestLogger()).
		Assess(context.Background(), []domain.RouteCandidate{primaryRoute, altRoute}, 0, domain.WeatherSignal{IsRaining: true, TemperatureCelsius: 27}, 5, 18)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !pair.Swapped || !pair.HighRisk() {
		t.Fatalf("expected swap of high-risk primary, got %+v", pair)
	}
	if pair.Primary.Route.DistanceMeters != altRoute.DistanceMeters || pair.Primary.IsHighRisk {
		t.Fatalf("presented route should be the alternative: %+v", pair.Primary)
	}
	if pair.Alternative.Route.DistanceMeters != primaryRoute.DistanceMeters || !pair.Alternative.IsHighRisk {
		t.Fatalf("demoted route should be the original: %+v", pair.Alternative)
	}
	if pair.Alternative.Reason != "High risk: 0 report(s), weather temperature 27.0°C" {
		t.Fatalf("reason = %q", pair.Alternative.Reason)
	}
}

func TestRiskEngine_Assess_ClassifierErrorCountsAsLowLabel(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	classifier := mock_service.NewMockClassifier(ctrl)
	classifier.EXPECT().Predict(gomock.Any(), gomock.Any()).Return(0, errors.New("model offline")).Times(2)

	engine := service.NewRiskEngine(classifier, newTestLogger())

	pair, err := engine.Assess(context.Background(), []domain.RouteCandidate{primaryRoute}, 0, dryWeather, 5, 9)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if pair.Primary.IsHighRisk {
		t.Fatal("classifier error without hazards should be low risk")
	}

	pair, err = engine.Assess(context.Background(), []domain.RouteCandidate{primaryRoute}, 1, dryWeather, 5, 9)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !pair.Primary.IsHighRisk {
		t.Fatal("override must still apply when the classifier fails")
	}
}

func TestRiskEngine_Assess_NoCandidates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	classifier := mock_service.NewMockClassifier(ctrl)

	_, err := service.NewRiskEngine(classifier, newTestLogger()).Assess(context.Background(), nil, 0, dryWeather, 5, 9)
	if !errors.Is(err, e.ErrNoRouteFound) {
		t.Fatalf("expected ErrNoRouteFound, got %v", err)
	}
}

func TestRuleClassifier_Predict(t *testing.T) {
	t.Parallel()

	c := service.NewRuleClassifier()
	cases := []struct {
		f    domain.RiskFeatureVector
		want int
	}{
		{domain.RiskFeatureVector{StaticHazardScore: 2, IsRaining: 1, HourOfDay: 3}, 1},
		{domain.RiskFeatureVector{StaticHazardScore: 9, HourOfDay: 9}, 1},
		{domain.RiskFeatureVector{StaticHazardScore: 9, HourOfDay: 18}, 1},
		{domain.RiskFeatureVector{StaticHazardScore: 9, HourOfDay: 13}, 0},
		{domain.RiskFeatureVector{StaticHazardScore: 5, HourOfDay: 9}, 0},
	}
	for _, tc := range cases {
		got, err := c.Predict(context.Background(), tc.f)
		if err != nil || got != tc.want {
			t.Errorf("Predict(%+v) = %d, %v; want %d", tc.f, got, err, tc.want)
		}
	}
}
