package domain

// RouteCandidate is one route returned by the routing provider.
// Geometry is passed through as received, in travel order.
type RouteCandidate struct {
	DistanceMeters  float64      `json:"distance_meters"`
	DurationSeconds float64      `json:"duration_seconds"`
	Geometry        []Coordinate `json:"geometry"`
}
