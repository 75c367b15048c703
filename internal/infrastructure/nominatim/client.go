// Package nominatim resolves free-text addresses with an OSM Nominatim server.
package nominatim

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"traffix/internal/domain"
	"traffix/pkg/e"
)

const DefaultBaseURL = "https://nominatim.openstreetmap.org"

type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
}

func New(baseURL, userAgent string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if userAgent == "" {
		userAgent = "traffix/1.0"
	}
	return &Client{
		baseURL:   baseURL,
		userAgent: userAgent,
		http:      &http.Client{Timeout: 10 * time.Second},
	}
}

type place struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode returns the best match for query. No match is e.ErrNotFound.
// Transport failures, 429 and any 5xx are wrapped with e.ErrTransient unless
// the caller canceled ctx.
func (c *Client) Geocode(ctx context.Context, query string) (domain.Coordinate, error) {
	u := fmt.Sprintf("%s/search?q=%s&format=jsonv2&limit=1", c.baseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return domain.Coordinate{}, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return domain.Coordinate{}, fmt.Errorf("nominatim request: %w", err)
		}
		// refused, reset, dropped and DNS failures are all worth another attempt
		return domain.Coordinate{}, e.Transient(fmt.Errorf("nominatim request: %w", err))
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusTooManyRequests,
		resp.StatusCode >= http.StatusInternalServerError:
		return domain.Coordinate{}, e.Transient(fmt.Errorf("nominatim: status %d", resp.StatusCode))
	default:
		return domain.Coordinate{}, fmt.Errorf("nominatim: status %d", resp.StatusCode)
	}

	var places []place
	if err := json.NewDecoder(io.LimitReader(resp.Body, 2<<20)).Decode(&places); err != nil {
		return domain.Coordinate{}, fmt.Errorf("nominatim decode: %w", err)
	}
	if len(places) == 0 {
		return domain.Coordinate{}, fmt.Errorf("nominatim %q: %w", query, e.ErrNotFound)
	}

	lat, err := strconv.ParseFloat(places[0].Lat, 64)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("nominatim lat: %w", err)
	}
	lon, err := strconv.ParseFloat(places[0].Lon, 64)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("nominatim lon: %w", err)
	}
	return domain.Coordinate{Lat: lat, Lon: lon}, nil
}
