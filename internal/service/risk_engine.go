package service

import (
	"context"
	"log/slog"

	"traffix/internal/domain"
	"traffix/pkg/e"
)

// RiskEngine fuses signals into a risk label and orders the candidate routes.
type RiskEngine struct {
	classifier Classifier
	logger     *slog.Logger
}

func NewRiskEngine(classifier Classifier, logger *slog.Logger) *RiskEngine {
	return &RiskEngine{classifier: classifier, logger: logger}
}

// Assess classifies candidates[0]. Any live hazard near the route forces
// high risk regardless of the classifier. When the primary is high risk
// and an alternative exists the two are swapped.
func (r *RiskEngine) Assess(
	ctx context.Context,
	candidates []domain.RouteCandidate,
	liveHazards int,
	weather domain.WeatherSignal,
	staticScore int,
	hour int,
) (domain.RiskAssessmentPair, error) {
	features := domain.NewRiskFeatureVector(staticScore, liveHazards, weather, hour)
	if len(candidates) == 0 {
		return domain.RiskAssessmentPair{Features: features}, e.ErrNoRouteFound
	}

	label, err := r.classifier.Predict(ctx, features)
	if err != nil {
		r.logger.Error("classifier failed, assuming label 0", slog.Any("error", err))
		label = 0
	}

	highRisk := label == 1 || liveHazards > 0
	reason := domain.LowRiskReason
	if highRisk {
		reason = domain.HighRiskReason(liveHazards, weather.TemperatureCelsius)
	}

	pair := domain.RiskAssessmentPair{Features: features, PredictedLabel: label}
	primary := domain.RiskAssessment{IsHighRisk: highRisk, Reason: reason, Route: candidates[0]}
	if len(candidates) < 2 {
		pair.Primary = primary
		return pair, nil
	}

	alt := domain.RiskAssessment{IsHighRisk: false, Reason: domain.AlternativeRouteReason, Route: candidates[1]}
	if highRisk {
		pair.Primary, pair.Alternative = alt, &primary
		pair.Swapped = true
		return pair, nil
	}
	pair.Primary, pair.Alternative = primary, &alt
	return pair, nil
}
