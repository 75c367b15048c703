// Package geo holds great-circle helpers used for hazard proximity checks.
package geo

import (
	"math"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// Distance returns the great-circle distance in meters between two
// points given as orb.Point{lon, lat}.
func Distance(a, b orb.Point) float64 {
	return orbgeo.DistanceHaversine(a, b)
}

// DistanceToSegment returns the shortest great-circle distance in meters
// from p to the arc a-b, using cross-track and along-track distances.
func DistanceToSegment(p, a, b orb.Point) float64 {
	if a == b {
		return Distance(p, a)
	}

	d13 := Distance(a, p) / orb.EarthRadius
	if d13 == 0 {
		return 0
	}
	theta13 := deg2rad(orbgeo.Bearing(a, p))
	theta12 := deg2rad(orbgeo.Bearing(a, b))
	dTheta := theta13 - theta12

	// p lies "behind" a relative to the direction of travel
	if math.Cos(dTheta) < 0 {
		return d13 * orb.EarthRadius
	}

	dxt := math.Asin(clamp(math.Sin(d13) * math.Sin(dTheta)))
	dat := math.Acos(clamp(math.Cos(d13) / math.Cos(dxt)))
	if dat*orb.EarthRadius > Distance(a, b) {
		return Distance(p, b)
	}
	return math.Abs(dxt) * orb.EarthRadius
}

// DistanceToPolyline returns the shortest distance in meters from p to
// any segment of line. An empty line yields +Inf.
func DistanceToPolyline(p orb.Point, line orb.LineString) float64 {
	switch len(line) {
	case 0:
		return math.Inf(1)
	case 1:
		return Distance(p, line[0])
	}

	best := math.Inf(1)
	for i := 1; i < len(line); i++ {
		d := DistanceToSegment(p, line[i-1], line[i])
		if d < best {
			best = d
		}
	}
	return best
}

// WithinDistance reports whether p lies within meters of line.
func WithinDistance(p orb.Point, line orb.LineString, meters float64) bool {
	return DistanceToPolyline(p, line) <= meters
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

func clamp(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
