package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"traffix/internal/api/handlers/http/public"
	"traffix/internal/api/handlers/http/system"
	"traffix/internal/config"
	"traffix/internal/middleware"
)

const maxBodyBytes = 1 << 20

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

// NewServer wires the HTTP surface. ctx bounds the rate limiter's background sweep.
func NewServer(ctx context.Context, cfg *config.Config, logger *slog.Logger, svc public.PublicHandler, checks map[string]system.Check) *Server {
	publicHandler := public.NewHandler(logger, svc)
	systemHandler := system.NewHandler(logger, checks)

	r := InitRouter(ctx, cfg, publicHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(ctx context.Context, cfg *config.Config, publicHandler *public.Handler, systemHandler *system.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)
	r.Use(chimw.RequestSize(maxBodyBytes))

	limit := middleware.Limit(ctx, cfg.RateLimit.RPS, cfg.RateLimit.Burst, 10*time.Minute, logger)

	r.Route("/api/v1", func(api chi.Router) {
		api.Group(func(wr chi.Router) {
			wr.Use(limit)
			wr.Post("/route/risk", publicHandler.RouteRisk)
			wr.Post("/reports", publicHandler.SubmitReport)
		})

		api.Route("/hazards", func(hr chi.Router) {
			hr.Get("/live", publicHandler.LiveHazards)
			hr.Get("/static", publicHandler.StaticHazards)
			hr.Post("/near-route", publicHandler.NearRouteHazards)
		})

		api.Get("/weather", publicHandler.Weather)

		// SYSTEM
		api.Get("/health", systemHandler.SystemHealth)
		api.Get("/ready", systemHandler.SystemReady)
	})

	return r
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Run binds the configured port and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	addr := s.cfg.Http.Port
	if !strings.HasPrefix(addr, ":") {
		addr = ":" + addr
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve answers on ln until ctx is done, then drains in-flight requests
// for at most the configured shutdown timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadTimeout:       s.cfg.Http.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      s.cfg.Http.WriteTimeout,
		IdleTimeout:       30 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("HTTP server listening",
			slog.String("addr", ln.Addr().String()),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("HTTP server draining", slog.Duration("timeout", s.cfg.Http.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.Http.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil
	})
	return g.Wait()
}
