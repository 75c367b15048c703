package service

import (
	"context"

	"traffix/internal/domain"
)

// RuleClassifier is a deterministic stand-in for the learned model.
// It flags rain, and a poor static score during rush hours.
type RuleClassifier struct {
	HighStaticScore int
}

func NewRuleClassifier() *RuleClassifier {
	return &RuleClassifier{HighStaticScore: 8}
}

func (c *RuleClassifier) Predict(_ context.Context, f domain.RiskFeatureVector) (int, error) {
	if f.IsRaining == 1 {
		return 1, nil
	}
	if f.StaticHazardScore >= c.HighStaticScore && isRushHour(f.HourOfDay) {
		return 1, nil
	}
	return 0, nil
}

func isRushHour(h int) bool {
	return (h >= 8 && h <= 10) || (h >= 17 && h <= 20)
}
