package domain

import (
	"time"

	"github.com/google/uuid"
)

type HazardType string

const (
	HazardConstruction HazardType = "construction"
	HazardAccident     HazardType = "accident"
	HazardPothole      HazardType = "pothole"
	HazardWaterlogging HazardType = "waterlogging"
	HazardTraffic      HazardType = "traffic"
)

func (t HazardType) Valid() bool {
	switch t {
	case HazardConstruction, HazardAccident, HazardPothole, HazardWaterlogging, HazardTraffic:
		return true
	}
	return false
}

// ReportTTL is how long a hazard report stays live after submission.
const ReportTTL = 15 * time.Minute

type HazardReport struct {
	ID         uuid.UUID  `json:"id"`
	ReporterID uuid.UUID  `json:"reporter_id"`
	CityID     int        `json:"city_id"`
	Location   Coordinate `json:"location"`
	Type       HazardType `json:"type"`
	CreatedAt  time.Time  `json:"created_at"`
	ExpiresAt  time.Time  `json:"expires_at"`
}

func NewHazardReport(reporterID uuid.UUID, cityID int, loc Coordinate, typ HazardType, now time.Time) *HazardReport {
	return &HazardReport{
		ID:         uuid.New(),
		ReporterID: reporterID,
		CityID:     cityID,
		Location:   loc,
		Type:       typ,
		CreatedAt:  now,
		ExpiresAt:  now.Add(ReportTTL),
	}
}

// IsLive reports whether now falls strictly before ExpiresAt.
func (r *HazardReport) IsLive(now time.Time) bool {
	return now.Before(r.ExpiresAt)
}

// FilterLive returns the reports still live at now, preserving order.
func FilterLive(reports []*HazardReport, now time.Time) []*HazardReport {
	live := make([]*HazardReport, 0, len(reports))
	for _, r := range reports {
		if r != nil && r.IsLive(now) {
			live = append(live, r)
		}
	}
	return live
}

// FloodHotspot is static reference data about recurring waterlogging spots.
type FloodHotspot struct {
	ID          int64      `json:"id"`
	CityID      int        `json:"city_id"`
	Description string     `json:"description"`
	Location    Coordinate `json:"location"`
}
