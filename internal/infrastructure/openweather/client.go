// Package openweather reads current conditions from the OpenWeatherMap API.
package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"traffix/internal/domain"
	"traffix/pkg/e"
)

const DefaultBaseURL = "http://api.openweathermap.org"

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func New(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type currentResponse struct {
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp *float64 `json:"temp"`
	} `json:"main"`
}

// Current returns e.ErrNotConfigured without a request when no API key is set.
func (c *Client) Current(ctx context.Context, coord domain.Coordinate) (domain.WeatherSignal, error) {
	if c.apiKey == "" {
		return domain.WeatherSignal{}, e.ErrNotConfigured
	}

	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(coord.Lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(coord.Lon, 'f', -1, 64))
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/data/2.5/weather?"+q.Encode(), nil)
	if err != nil {
		return domain.WeatherSignal{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.WeatherSignal{}, fmt.Errorf("openweather request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.WeatherSignal{}, fmt.Errorf("openweather: status %d", resp.StatusCode)
	}

	var body currentResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&body); err != nil {
		return domain.WeatherSignal{}, fmt.Errorf("openweather decode: %w", err)
	}
	if len(body.Weather) == 0 {
		return domain.WeatherSignal{}, errors.New("openweather: empty weather list")
	}
	if body.Main.Temp == nil {
		return domain.WeatherSignal{}, errors.New("openweather: missing temperature")
	}

	return domain.WeatherSignal{
		IsRaining:          IsRainCondition(body.Weather[0].Main),
		TemperatureCelsius: *body.Main.Temp,
	}, nil
}

// IsRainCondition reports whether an OpenWeatherMap "main" condition means wet roads.
func IsRainCondition(main string) bool {
	m := strings.ToLower(main)
	return strings.Contains(m, "rain") || strings.Contains(m, "drizzle") || strings.Contains(m, "thunder")
}
