package system

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"time"

	"log/slog"
)

// Check reports whether a dependency is reachable.
type Check func(ctx context.Context) error

type Handler struct {
	logger  *slog.Logger
	checks  map[string]Check
	timeout time.Duration
}

func NewHandler(logger *slog.Logger, checks map[string]Check) *Handler {
	return &Handler{logger: logger, checks: checks, timeout: 2 * time.Second}
}

func (h *Handler) SystemHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

type readiness struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// SystemReady pings every registered dependency and answers 503 if any fails.
func (h *Handler) SystemReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	resp := readiness{Status: "ok", Checks: make(map[string]string, len(names))}
	code := http.StatusOK
	for _, name := range names {
		if err := h.checks[name](ctx); err != nil {
			h.logger.Warn("readiness check failed", slog.String("check", name), slog.Any("error", err))
			resp.Checks[name] = "down"
			resp.Status = "degraded"
			code = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = "up"
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(resp)
}
