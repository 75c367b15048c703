package service_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"traffix/internal/domain"
	"traffix/internal/infrastructure/nominatim"
	"traffix/internal/service"
	mock_service "traffix/internal/service/mocks"
	"traffix/pkg/e"
)

var shahdara = domain.Coordinate{Lat: 28.6731, Lon: 77.2894}

func newGeocoder(p service.GeocodeProvider) *service.Geocoder {
	return service.NewGeocoder(p, service.NewGeocodeCache(), service.GeocoderConfig{
		Region: "Delhi, India",
		Retry:  fastRetry,
	}, newTestLogger())
}

func TestGeocoder_Resolve_CachesNormalizedAddress(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	provider := mock_service.NewMockGeocodeProvider(ctrl)
	provider.EXPECT().
		Geocode(gomock.Any(), "Shahdara, Delhi, India").
		Return(shahdara, nil).
		Times(1)

	g := newGeocoder(provider)

	first, err := g.Resolve(context.Background(), "Shahdara")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	second, err := g.Resolve(context.Background(), "  SHAHDARA ")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if first != second || first != shahdara {
		t.Fatalf("got %+v and %+v, want %+v", first, second, shahdara)
	}
}

func TestGeocoder_Resolve_RetriesTransientFailures(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	provider := mock_service.NewMockGeocodeProvider(ctrl)

	transient := e.Transient(errors.New("503 service unavailable"))
	gomock.InOrder(
		provider.EXPECT().Geocode(gomock.Any(), gomock.Any()).Return(domain.Coordinate{}, transient).Times(3),
		provider.EXPECT().Geocode(gomock.Any(), gomock.Any()).Return(shahdara, nil).Times(1),
	)

	got, err := newGeocoder(provider).Resolve(context.Background(), "Shahdara")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != shahdara {
		t.Fatalf("got %+v", got)
	}
}

func TestGeocoder_Resolve_GivesUpAfterFourAttempts(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	provider := mock_service.NewMockGeocodeProvider(ctrl)
	provider.EXPECT().
		Geocode(gomock.Any(), gomock.Any()).
		Return(domain.Coordinate{}, e.Transient(errors.New("timeout"))).
		Times(4)

	_, err := newGeocoder(provider).Resolve(context.Background(), "Shahdara")
	if !errors.Is(err, e.ErrLocationNotFound) {
		t.Fatalf("expected ErrLocationNotFound, got %v", err)
	}
	if err.Error() != "location not found: Shahdara" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestGeocoder_Resolve_NoMatchIsNotRetried(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	provider := mock_service.NewMockGeocodeProvider(ctrl)
	provider.EXPECT().
		Geocode(gomock.Any(), "Atlantis, Delhi, India").
		Return(domain.Coordinate{}, fmt.Errorf("nominatim: %w", e.ErrNotFound)).
		Times(1)

	g := newGeocoder(provider)
	_, err := g.Resolve(context.Background(), "Atlantis")
	if !errors.Is(err, e.ErrLocationNotFound) {
		t.Fatalf("expected ErrLocationNotFound, got %v", err)
	}
}

func TestGeocoder_Resolve_FailuresAreNotCached(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	provider := mock_service.NewMockGeocodeProvider(ctrl)
	gomock.InOrder(
		provider.EXPECT().Geocode(gomock.Any(), gomock.Any()).Return(domain.Coordinate{}, e.ErrNotFound),
		provider.EXPECT().Geocode(gomock.Any(), gomock.Any()).Return(shahdara, nil),
	)

	cache := service.NewGeocodeCache()
	g := service.NewGeocoder(provider, cache, service.GeocoderConfig{Region: "Delhi, India", Retry: fastRetry}, newTestLogger())

	if _, err := g.Resolve(context.Background(), "Shahdara"); err == nil {
		t.Fatal("expected error on first call")
	}
	if cache.Len() != 0 {
		t.Fatalf("failure was cached")
	}
	if _, err := g.Resolve(context.Background(), "Shahdara"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cache.Len() != 1 {
		t.Fatalf("success was not cached")
	}
}

func TestGeocoder_Resolve_EmptyAddress(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	provider := mock_service.NewMockGeocodeProvider(ctrl)

	_, err := newGeocoder(provider).Resolve(context.Background(), "   ")
	if !errors.Is(err, e.ErrLocationNotFound) {
		t.Fatalf("expected ErrLocationNotFound, got %v", err)
	}
}

func TestGeocoder_Resolve_RejectsInvalidCoordinate(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	provider := mock_service.NewMockGeocodeProvider(ctrl)
	provider.EXPECT().Geocode(gomock.Any(), gomock.Any()).Return(domain.Coordinate{Lat: 123, Lon: 77}, nil)

	_, err := newGeocoder(provider).Resolve(context.Background(), "Shahdara")
	if !errors.Is(err, e.ErrLocationNotFound) {
		t.Fatalf("expected ErrLocationNotFound, got %v", err)
	}
}

func TestGeocodeCache_PutKeepsFirstValue(t *testing.T) {
	t.Parallel()

	c := service.NewGeocodeCache()
	first := c.Put("Qutub Minar", domain.Coordinate{Lat: 28.5245, Lon: 77.1855})
	second := c.Put(" qutub minar", domain.Coordinate{Lat: 1, Lon: 1})
	if first != second {
		t.Fatalf("insert-if-absent violated: %+v vs %+v", first, second)
	}
	got, ok := c.Get("QUTUB MINAR")
	if !ok || got != first {
		t.Fatalf("lookup failed: %+v %v", got, ok)
	}
}

func TestGeocoder_Resolve_ConcurrentCallersShareLookups(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	provider := mock_service.NewMockGeocodeProvider(ctrl)

	rohini := domain.Coordinate{Lat: 28.7495, Lon: 77.0565}
	dwarka := domain.Coordinate{Lat: 28.5921, Lon: 77.046}
	upstream := map[string]domain.Coordinate{
		"Shahdara, Delhi, India": shahdara,
		"Rohini, Delhi, India":   rohini,
		"Dwarka, Delhi, India":   dwarka,
	}
	for q, c := range upstream {
		provider.EXPECT().
			Geocode(gomock.Any(), q).
			DoAndReturn(func(context.Context, string) (domain.Coordinate, error) {
				time.Sleep(5 * time.Millisecond)
				return c, nil
			}).
			Times(1)
	}

	want := map[string]domain.Coordinate{"shahdara": shahdara, "rohini": rohini, "dwarka": dwarka}
	inputs := []string{"Shahdara", " shahdara", "SHAHDARA ", "Rohini", "rohini", "Dwarka", " DWARKA"}

	g := newGeocoder(provider)

	const rounds = 20
	var wg sync.WaitGroup
	errs := make(chan error, rounds*len(inputs))
	for i := 0; i < rounds; i++ {
		for _, in := range inputs {
			wg.Add(1)
			go func(addr string) {
				defer wg.Done()
				got, err := g.Resolve(context.Background(), addr)
				if err != nil {
					errs <- fmt.Errorf("%q: %w", addr, err)
					return
				}
				if w := want[strings.ToLower(strings.TrimSpace(addr))]; got != w {
					errs <- fmt.Errorf("%q: got %+v want %+v", addr, got, w)
				}
			}(in)
		}
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

func TestGeocodeCache_ConcurrentPutKeepsFirstValue(t *testing.T) {
	t.Parallel()

	c := service.NewGeocodeCache()

	const writers = 32
	start := make(chan struct{})
	results := make([]domain.Coordinate, writers)

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			results[i] = c.Put(" Chandni Chowk", domain.Coordinate{Lat: 28.65 + float64(i)/1000, Lon: 77.23})
			_, _ = c.Get("CHANDNI CHOWK")
		}(i)
	}
	close(start)
	wg.Wait()

	stored, ok := c.Get("chandni chowk")
	if !ok {
		t.Fatal("entry missing after concurrent puts")
	}
	for i, got := range results {
		if got != stored {
			t.Fatalf("writer %d got %+v, cache holds %+v", i, got, stored)
		}
	}
	if c.Len() != 1 {
		t.Fatalf("expected a single entry, got %d", c.Len())
	}
}

func TestGeocoder_Resolve_RetriesDroppedConnection(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if hits.Add(1) == 1 {
			conn, _, err := w.(http.Hijacker).Hijack()
			if err == nil {
				_ = conn.Close()
			}
			return
		}
		_, _ = w.Write([]byte(`[{"lat":"28.6731","lon":"77.2894"}]`))
	}))
	defer srv.Close()

	g := newGeocoder(nominatim.New(srv.URL, "traffix-test"))
	got, err := g.Resolve(context.Background(), "Shahdara")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != shahdara {
		t.Fatalf("got %+v", got)
	}
	if n := hits.Load(); n != 2 {
		t.Fatalf("expected 2 upstream hits, got %d", n)
	}
}

func TestGeocoder_Resolve_RetriesServerError(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`[{"lat":"28.6731","lon":"77.2894"}]`))
	}))
	defer srv.Close()

	g := newGeocoder(nominatim.New(srv.URL, "traffix-test"))
	if _, err := g.Resolve(context.Background(), "Shahdara"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if n := hits.Load(); n != 2 {
		t.Fatalf("expected 2 upstream hits, got %d", n)
	}
}
