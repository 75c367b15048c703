package domain

import "github.com/paulmach/orb/geojson"

type RouteRiskRequest struct {
	StartAddress string `json:"start_address" validate:"required"`
	EndAddress   string `json:"end_address" validate:"required"`
	CityID       int    `json:"city_id" validate:"omitempty,min=1"`
}

type SubmitReportRequest struct {
	ReporterID string     `json:"reporter_id" validate:"required,uuid"`
	CityID     int        `json:"city_id" validate:"omitempty,min=1"`
	Type       HazardType `json:"type" validate:"required,oneof=construction accident pothole waterlogging traffic"`
	Lat        float64    `json:"lat" validate:"lat"`
	Lon        float64    `json:"lon" validate:"lng"`
}

type NearRouteRequest struct {
	Geometry *geojson.Geometry `json:"geometry" validate:"required"`
	CityID   int               `json:"city_id" validate:"omitempty,min=1"`
}

type NearRouteResponse struct {
	Count int `json:"count"`
}
