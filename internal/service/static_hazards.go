package service

import (
	"context"

	"traffix/internal/domain"
)

type StaticHazards struct {
	repo          StaticHazardRepository
	defaultCityID int
}

func NewStaticHazards(repo StaticHazardRepository, defaultCityID int) *StaticHazards {
	if defaultCityID <= 0 {
		defaultCityID = 1
	}
	return &StaticHazards{repo: repo, defaultCityID: defaultCityID}
}

func (s *StaticHazards) ListFloodHotspots(ctx context.Context, cityID int) ([]*domain.FloodHotspot, error) {
	if cityID <= 0 {
		cityID = s.defaultCityID
	}
	return s.repo.ListFloodHotspots(ctx, cityID)
}
