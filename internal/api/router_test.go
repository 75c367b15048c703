package api_test

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"log/slog"

	"github.com/golang/mock/gomock"

	"traffix/internal/api"
	mock_public "traffix/internal/api/handlers/http/public/mocks"
	"traffix/internal/api/handlers/http/system"
	"traffix/internal/config"
	"traffix/internal/domain"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestServer(t *testing.T, svc *mock_public.MockPublicHandler, burst int) http.Handler {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	cfg := &config.Config{RateLimit: config.RateLimitConfig{RPS: 0.001, Burst: burst}}
	return api.NewServer(ctx, cfg, newTestLogger(), svc, map[string]system.Check{}).Handler()
}

func TestRouter_Routes(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_public.NewMockPublicHandler(ctrl)
	h := newTestServer(t, svc, 10)

	svc.EXPECT().ListLiveHazards(gomock.Any(), 0).Return([]*domain.HazardReport{}, nil).Times(1)
	svc.EXPECT().ListFloodHotspots(gomock.Any(), 0).Return([]*domain.FloodHotspot{}, nil).Times(1)
	svc.EXPECT().CurrentWeather(gomock.Any(), gomock.Any()).Return(domain.FallbackWeather()).Times(1)

	cases := []struct {
		method, path string
		want         int
	}{
		{http.MethodGet, "/api/v1/health", http.StatusOK},
		{http.MethodGet, "/api/v1/ready", http.StatusOK},
		{http.MethodGet, "/api/v1/hazards/live", http.StatusOK},
		{http.MethodGet, "/api/v1/hazards/static", http.StatusOK},
		{http.MethodGet, "/api/v1/weather?lat=28.6&lon=77.2", http.StatusOK},
		{http.MethodGet, "/api/v1/nope", http.StatusNotFound},
		{http.MethodGet, "/api/v1/route/risk", http.StatusMethodNotAllowed},
	}

	for _, tc := range cases {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(tc.method, tc.path, nil))
		if rr.Code != tc.want {
			t.Fatalf("%s %s: expected %d got %d body=%s", tc.method, tc.path, tc.want, rr.Code, rr.Body.String())
		}
	}
}

func TestRouter_RateLimitsWrites(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_public.NewMockPublicHandler(ctrl)
	h := newTestServer(t, svc, 1)

	svc.EXPECT().AssessRoute(gomock.Any(), gomock.Any()).Return(domain.RiskResponse{}, nil).Times(1)

	body := `{"start_address":"a","end_address":"b"}`
	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/route/risk", bytes.NewBufferString(body))
		req.RemoteAddr = "192.0.2.7:4000"
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests {
		t.Fatalf("unexpected codes %v", codes)
	}
}

func TestServer_ServeUntilCanceled(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := &config.Config{
		Http:      config.HttpConfig{ShutdownTimeout: 2 * time.Second},
		RateLimit: config.RateLimitConfig{RPS: 5, Burst: 10},
	}
	srv := api.NewServer(ctx, cfg, newTestLogger(), mock_public.NewMockPublicHandler(ctrl), nil)

	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/api/v1/health")
	if err != nil {
		t.Fatalf("health request: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK || string(body) != "ok" {
		t.Fatalf("unexpected health response: %d %q", resp.StatusCode, body)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Serve returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}
