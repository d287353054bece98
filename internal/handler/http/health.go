// Package http holds the middleware and operational endpoints shared by the
// API handlers.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"newatalk/internal/handler/http/respond"

	"github.com/sony/gobreaker"
)

// HealthResponse is the JSON body of /health.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy", "degraded" or "unhealthy"
	Timestamp string                 `json:"timestamp"` // RFC 3339, UTC
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus is the outcome of a single check.
type CheckStatus struct {
	Status  string         `json:"status"`
	Message string         `json:"message,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// FeedCounter reports how many feeds can be queried.
type FeedCounter interface {
	FeedCount() int
}

// Breaker exposes a named circuit breaker's state.
type Breaker interface {
	Name() string
	State() gobreaker.State
}

// ClientCounter reports how many clients the rate limiter is tracking.
type ClientCounter interface {
	ActiveClients() int
}

// HealthHandler reports the feed registry, the collaborator circuit breakers
// and the rate limiter. An empty registry is unhealthy (503). An open breaker
// only degrades a collaborator, so the overall status becomes "degraded" with 200.
type HealthHandler struct {
	Registry FeedCounter
	Breakers []Breaker
	Limiter  ClientCounter
	Version  string
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]CheckStatus, 3)
	status := "healthy"
	code := http.StatusOK

	feeds := h.checkRegistry()
	checks["feeds"] = feeds
	if feeds.Status != "healthy" {
		status = "unhealthy"
		code = http.StatusServiceUnavailable
	}

	if len(h.Breakers) > 0 {
		cb := h.checkBreakers()
		checks["circuit_breakers"] = cb
		if cb.Status == "degraded" && status == "healthy" {
			status = "degraded"
		}
	}

	if h.Limiter != nil {
		checks["rate_limiter"] = CheckStatus{
			Status:  "healthy",
			Details: map[string]any{"active_clients": h.Limiter.ActiveClients()},
		}
	}

	writeJSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	})
}

func (h *HealthHandler) checkRegistry() CheckStatus {
	if h.Registry == nil {
		return CheckStatus{Status: "unhealthy", Message: "not configured"}
	}
	n := h.Registry.FeedCount()
	if n == 0 {
		return CheckStatus{Status: "unhealthy", Message: "no feeds configured"}
	}
	return CheckStatus{Status: "healthy", Details: map[string]any{"feed_count": n}}
}

func (h *HealthHandler) checkBreakers() CheckStatus {
	details := make(map[string]any, len(h.Breakers))
	status := "healthy"
	for _, b := range h.Breakers {
		state := b.State()
		details[b.Name()] = state.String()
		if state != gobreaker.StateClosed {
			status = "degraded"
		}
	}
	return CheckStatus{Status: status, Details: details}
}

// ReadyHandler answers 200 once at least one feed is configured.
type ReadyHandler struct {
	Registry FeedCounter
}

func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.Registry == nil || h.Registry.FeedCount() == 0 {
		writeText(w, http.StatusServiceUnavailable, "no feeds configured")
		return
	}
	writeText(w, http.StatusOK, "ready")
}

// LiveHandler always answers 200 while the process is serving.
type LiveHandler struct{}

func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	writeText(w, http.StatusOK, "alive")
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, code, v)
}

func writeText(w http.ResponseWriter, code int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(code)
	if _, err := w.Write([]byte(body)); err != nil {
		slog.Default().Debug("health: write response failed", slog.Any("error", err))
	}
}
