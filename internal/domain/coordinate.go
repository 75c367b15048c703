package domain

import "github.com/paulmach/orb"

// Coordinate is a WGS84 position in degrees.
type Coordinate struct {
	Lat float64 `json:"lat" validate:"lat"`
	Lon float64 `json:"lon" validate:"lng"`
}

func (c Coordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// Point returns c in orb's lon/lat order.
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Lon, c.Lat}
}

func CoordinateFromPoint(p orb.Point) Coordinate {
	return Coordinate{Lat: p.Lat(), Lon: p.Lon()}
}

// LineString converts a route geometry into an orb polyline.
func LineString(geometry []Coordinate) orb.LineString {
	ls := make(orb.LineString, 0, len(geometry))
	for _, c := range geometry {
		ls = append(ls, c.Point())
	}
	return ls
}

func CoordinatesFromLineString(ls orb.LineString) []Coordinate {
	out := make([]Coordinate, 0, len(ls))
	for _, p := range ls {
		out = append(out, CoordinateFromPoint(p))
	}
	return out
}
