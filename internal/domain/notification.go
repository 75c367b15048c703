package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReportNotification is delivered to the configured webhook for each new report.
type ReportNotification struct {
	ReportID  uuid.UUID  `json:"report_id"`
	CityID    int        `json:"city_id"`
	Type      HazardType `json:"type"`
	Lat       float64    `json:"lat"`
	Lon       float64    `json:"lon"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt time.Time  `json:"expires_at"`
}

func NewReportNotification(r *HazardReport) ReportNotification {
	return ReportNotification{
		ReportID:  r.ID,
		CityID:    r.CityID,
		Type:      r.Type,
		Lat:       r.Location.Lat,
		Lon:       r.Location.Lon,
		CreatedAt: r.CreatedAt,
		ExpiresAt: r.ExpiresAt,
	}
}

// TrainingSample is a classified feature vector kept for offline model training.
type TrainingSample struct {
	Features       RiskFeatureVector `json:"features"`
	PredictedLabel int               `json:"predicted_label"`
	HighRisk       bool              `json:"high_risk"`
	CityID         int               `json:"city_id"`
	RecordedAt     time.Time         `json:"recorded_at"`
}
