// Package osrm fetches driving routes from an OSRM server.
package osrm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"traffix/internal/domain"
)

const DefaultBaseURL = "http://router.project-osrm.org"

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type routeResponse struct {
	Code    string  `json:"code"`
	Message string  `json:"message"`
	Routes  []route `json:"routes"`
}

type route struct {
	Distance float64           `json:"distance"`
	Duration float64           `json:"duration"`
	Geometry *geojson.Geometry `json:"geometry"`
}

// Routes returns the primary route followed by any alternatives, in the
// order the server ranked them.
func (c *Client) Routes(ctx context.Context, origin, destination domain.Coordinate) ([]domain.RouteCandidate, error) {
	u := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?alternatives=true&steps=false&overview=full&geometries=geojson",
		c.baseURL, origin.Lon, origin.Lat, destination.Lon, destination.Lat)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("osrm request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("osrm: status %d", resp.StatusCode)
	}

	var body routeResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 8<<20)).Decode(&body); err != nil {
		return nil, fmt.Errorf("osrm decode: %w", err)
	}
	if body.Code != "Ok" {
		return nil, fmt.Errorf("osrm: code %q: %s", body.Code, body.Message)
	}

	out := make([]domain.RouteCandidate, 0, len(body.Routes))
	for i, r := range body.Routes {
		if r.Geometry == nil {
			return nil, fmt.Errorf("osrm: route %d has no geometry", i)
		}
		ls, ok := r.Geometry.Coordinates.(orb.LineString)
		if !ok {
			return nil, fmt.Errorf("osrm: route %d geometry is %s", i, r.Geometry.Type)
		}
		out = append(out, domain.RouteCandidate{
			DistanceMeters:  r.Distance,
			DurationSeconds: r.Duration,
			Geometry:        domain.CoordinatesFromLineString(ls),
		})
	}
	return out, nil
}
