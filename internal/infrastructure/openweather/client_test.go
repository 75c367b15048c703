package openweather_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"traffix/internal/domain"
	"traffix/internal/infrastructure/openweather"
	"traffix/pkg/e"
)

var connaughtPlace = domain.Coordinate{Lat: 28.6315, Lon: 77.2167}

func TestClient_Current(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if r.URL.Path != "/data/2.5/weather" || q.Get("appid") != "secret" || q.Get("units") != "metric" {
			t.Errorf("unexpected request %s", r.URL.String())
		}
		if q.Get("lat") != "28.6315" || q.Get("lon") != "77.2167" {
			t.Errorf("unexpected coordinates %s", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`{"weather":[{"main":"Thunderstorm","description":"heavy"}],"main":{"temp":31.4}}`))
	}))
	defer srv.Close()

	got, err := openweather.New(srv.URL, "secret").Current(context.Background(), connaughtPlace)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !got.IsRaining || got.TemperatureCelsius != 31.4 {
		t.Fatalf("got %+v", got)
	}
}

func TestClient_Current_NoKeySkipsRequest(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	_, err := openweather.New(srv.URL, "").Current(context.Background(), connaughtPlace)
	if !errors.Is(err, e.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	if calls.Load() != 0 {
		t.Fatal("request sent without api key")
	}
}

func TestClient_Current_Malformed(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		status int
		body   string
	}{
		"unauthorized":  {http.StatusUnauthorized, `{"cod":401}`},
		"empty weather": {http.StatusOK, `{"weather":[],"main":{"temp":20}}`},
		"no temp":       {http.StatusOK, `{"weather":[{"main":"Clear"}],"main":{}}`},
		"broken json":   {http.StatusOK, `{"weather":`},
	}
	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			if _, err := openweather.New(srv.URL, "k").Current(context.Background(), connaughtPlace); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestIsRainCondition(t *testing.T) {
	t.Parallel()

	for cond, want := range map[string]bool{
		"Rain": true, "Drizzle": true, "Thunderstorm": true,
		"Clear": false, "Clouds": false, "Haze": false, "Mist": false,
	} {
		if got := openweather.IsRainCondition(cond); got != want {
			t.Errorf("IsRainCondition(%q) = %v", cond, got)
		}
	}
}
